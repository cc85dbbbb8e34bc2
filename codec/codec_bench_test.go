package codec

import (
	"testing"

	"github.com/hupe1980/secretmanager/model"
)

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func benchSecretList() *model.ListSecretsResponse {
	secret := testSecret()
	secret.Topics = []model.Topic{{Name: "projects/p/topics/a"}, {Name: "projects/p/topics/b"}}
	secret.Annotations = map[string]string{"owner": "hupe1980", "repo": "secretmanager", "lang": "go"}

	resp := &model.ListSecretsResponse{NextPageToken: "next", TotalSize: 16}
	for range 16 {
		resp.Secrets = append(resp.Secrets, *secret)
	}
	return resp
}

func BenchmarkCodec_Marshal_Secret(b *testing.B) {
	secret := testSecret()

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, secret) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, secret) })
}

func BenchmarkCodec_Unmarshal_Secret(b *testing.B) {
	jsonData := MustMarshal(JSON{}, testSecret())

	b.Run("stdlib", func(b *testing.B) {
		var sink model.Secret
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink model.Secret
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
}

func BenchmarkCodec_Unmarshal_ListSecrets(b *testing.B) {
	jsonData := MustMarshal(JSON{}, benchSecretList())

	b.Run("stdlib", func(b *testing.B) {
		var sink model.ListSecretsResponse
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink model.ListSecretsResponse
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
}

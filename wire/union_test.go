package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/secretmanager/apierror"
)

type shape interface{ isShape() }

type circle struct{ Radius int32 }

func (*circle) isShape() {}

func (m *circle) WireFields() []Field { return []Field{Int32("radius", &m.Radius)} }

type square struct{ Side int32 }

func (*square) isShape() {}

func (m *square) WireFields() []Field { return []Field{Int32("side", &m.Side)} }

type shapeName string

func (shapeName) isShape() {}

// triangle implements shape but is not declared as an alternative.
type triangle struct{}

func (*triangle) isShape() {}

var shapeVariants = []Alternative[shape]{
	MessageVariant[shape, circle]("circle"),
	MessageVariant[shape, square]("square"),
	StringVariant("name",
		func(s string) shape { return shapeName(s) },
		func(u shape) (string, bool) {
			n, ok := u.(shapeName)
			return string(n), ok
		},
	),
}

type alpha struct{ Value string }

func (*alpha) isToken() {}

func (m *alpha) WireFields() []Field { return []Field{String("value", &m.Value)} }

type beta struct{ Value string }

func (*beta) isToken() {}

func (m *beta) WireFields() []Field { return []Field{String("value", &m.Value)} }

type token interface{ isToken() }

type holder struct{ Token token }

func (m *holder) WireFields() []Field {
	return []Field{
		Union("token", &m.Token,
			MessageVariant[token, alpha]("alpha"),
			MessageVariant[token, beta]("beta"),
		),
	}
}

func TestUnionEncode(t *testing.T) {
	tests := []struct {
		name  string
		shape shape
		want  string
	}{
		{"Absent", nil, `{}`},
		{"Circle", &circle{Radius: 3}, `{"shape":{"radius":3}}`},
		{"Square", &square{Side: 4}, `{"shape":{"side":4}}`},
		{"DefaultRecord", &circle{}, `{"shape":{"radius":0}}`},
		{"Name", shapeName("blob"), `{"shape":"blob"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Marshal(&onlyShape{Shape: tt.shape})
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}

	t.Run("NilAlternative", func(t *testing.T) {
		_, err := Marshal(&onlyShape{Shape: (*circle)(nil)})
		assert.ErrorIs(t, err, ErrNilValue)
		assert.True(t, apierror.IsKind(err, apierror.KindSerialization))
	})

	t.Run("UndeclaredAlternative", func(t *testing.T) {
		_, err := Marshal(&onlyShape{Shape: &triangle{}})
		assert.ErrorIs(t, err, ErrNoAlternative)

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "shape", fe.Path)
	})
}

type onlyShape struct{ Shape shape }

func (m *onlyShape) WireFields() []Field {
	return []Field{Union("shape", &m.Shape, shapeVariants...)}
}

func TestUnionDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  shape
	}{
		{"Circle", `{"shape":{"radius":3}}`, &circle{Radius: 3}},
		{"Square", `{"shape":{"side":4}}`, &square{Side: 4}},
		{"Name", `{"shape":"blob"}`, shapeName("blob")},
		{"EmptyObjectIsFirstDeclared", `{"shape":{}}`, &circle{}},
		{"Null", `{"shape":null}`, nil},
		{"Absent", `{}`, nil},
		{"UnknownKeyPicksBestOverlap", `{"shape":{"side":4,"color":"red"}}`, &square{Side: 4}},
		{"OnlyUnknownKeysIsFirstDeclared", `{"shape":{"color":"red"}}`, &circle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := &onlyShape{}
			require.NoError(t, Unmarshal([]byte(tt.input), got))
			assert.Equal(t, tt.want, got.Shape)
		})
	}
}

func TestUnionAmbiguity(t *testing.T) {
	for i := 0; i < 10; i++ {
		got := &holder{}
		require.NoError(t, Unmarshal([]byte(`{"token":{"value":"x"}}`), got))
		assert.Equal(t, &alpha{Value: "x"}, got.Token)
	}

	// beta encodes to the same shape as alpha and therefore decodes as alpha.
	b, err := Marshal(&holder{Token: &beta{Value: "x"}})
	require.NoError(t, err)
	assert.Equal(t, `{"token":{"value":"x"}}`, string(b))

	got := &holder{}
	require.NoError(t, Unmarshal(b, got))
	assert.IsType(t, &alpha{}, got.Token)
}

func TestUnionNoAlternative(t *testing.T) {
	tests := []struct {
		name  string
		input string
		also  error
		path  string
	}{
		{"Number", `{"shape":5}`, nil, "shape"},
		{"Array", `{"shape":[{"radius":1}]}`, nil, "shape"},
		{"ClaimedButMalformed", `{"shape":{"radius":"big"}}`, ErrShape, "shape.radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unmarshal([]byte(tt.input), &onlyShape{})
			require.Error(t, err)
			assert.True(t, apierror.IsKind(err, apierror.KindSerialization))
			assert.ErrorIs(t, err, ErrNoAlternative)
			if tt.also != nil {
				assert.ErrorIs(t, err, tt.also)
			}

			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.path, fe.Path)
		})
	}
}

func TestMessageVariantPanicsOnForeignType(t *testing.T) {
	assert.Panics(t, func() {
		_ = MessageVariant[shape, child]("child")
	})
}

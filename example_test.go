package secretmanager_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/secretmanager"
	"github.com/hupe1980/secretmanager/apierror"
	"github.com/hupe1980/secretmanager/model"
	"github.com/hupe1980/secretmanager/wire"
	"github.com/hupe1980/secretmanager/wkt"
)

// fakeService answers every call with body and status.
func fakeService(status int, body string) secretmanager.Transport {
	return secretmanager.TransportFunc(func(_ context.Context, req *secretmanager.Request) (*secretmanager.Response, error) {
		return &secretmanager.Response{StatusCode: status, Body: []byte(body)}, nil
	})
}

// Example_accessSecretVersion reads the latest version of a secret.
func Example_accessSecretVersion() {
	client, err := secretmanager.New(
		fakeService(200, `{"name":"projects/p/secrets/db/versions/3","payload":{"data":"aHVudGVyMg=="}}`),
		secretmanager.WithTokenProvider(secretmanager.StaticToken("token")),
	)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := client.AccessSecretVersion(context.Background(), &model.AccessSecretVersionRequest{
		Name: "projects/p/secrets/db/versions/latest",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(resp.Name, string(resp.Payload.Data))
	// Output: projects/p/secrets/db/versions/3 hunter2
}

// Example_notFound recovers the HTTP status of a failed call.
func Example_notFound() {
	client, err := secretmanager.New(
		fakeService(404, `{"error":{"code":404,"message":"Secret [db] not found.","status":"NOT_FOUND"}}`),
	)
	if err != nil {
		log.Fatal(err)
	}

	_, err = client.GetSecret(context.Background(), &model.GetSecretRequest{Name: "projects/p/secrets/db"})

	var e *apierror.Error
	if errors.As(err, &e) {
		if httpErr, ok := apierror.AsInner[*apierror.HTTPError](e); ok {
			st, _ := httpErr.Status()
			fmt.Println(e.Kind().Name(), httpErr.StatusCode, st.Status)
		}
	}
	// Output: remote_protocol 404 NOT_FOUND
}

// Example_wireFormat shows the wire form of a secret.
func Example_wireFormat() {
	secret := &model.Secret{
		Name:           "projects/p/secrets/db",
		Replication:    &model.Replication{Replication: &model.AutomaticReplication{}},
		Labels:         map[string]string{},
		VersionAliases: map[string]int64{"stable": 9223372036854775807},
		Expiration:     model.TTL(wkt.NewDuration(36 * time.Hour)),
	}

	b, err := wire.Marshal(secret)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(b))
	// Output: {"name":"projects/p/secrets/db","replication":{"replication":{}},"etag":"","versionAliases":{"stable":"9223372036854775807"},"expiration":"129600s"}
}

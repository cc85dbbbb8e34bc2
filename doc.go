// Package secretmanager is a client core for the Secret Manager v1 REST API.
//
// The hard parts live in subpackages:
//
//   - wire: the record codec, with string-encoded 64-bit integers, base64 bytes,
//     omitted empty maps and untagged unions resolved by shape
//   - wkt: canonical timestamp, duration and field mask text forms
//   - apierror: the error envelope every failure is reported in
//   - model: the Secret Manager resource, request and response records
//
// This package maps each REST method onto one request sent through a
// Transport, with credentials from a TokenProvider.
//
// # Quick Start
//
//	client, _ := secretmanager.New(
//	    secretmanager.NewHTTPTransport(nil),
//	    secretmanager.WithTokenProvider(secretmanager.StaticToken(token)),
//	)
//
//	resp, err := client.AccessSecretVersion(ctx, &model.AccessSecretVersionRequest{
//	    Name: "projects/my-project/secrets/db-password/versions/latest",
//	})
//
// # Errors
//
// Every error is an *apierror.Error. Branch on its category, or recover the
// HTTP status from anywhere in the chain:
//
//	var e *apierror.Error
//	if errors.As(err, &e) {
//	    if httpErr, ok := apierror.AsInner[*apierror.HTTPError](e); ok && httpErr.StatusCode == 404 {
//	        // not found
//	    }
//	}
//
// The client performs no retries and no pagination loops; list methods return
// one page and the caller passes NextPageToken back.
package secretmanager

package secretmanager

import (
	"errors"
	"fmt"

	"github.com/hupe1980/secretmanager/apierror"
)

var (
	// ErrNilTransport is returned by New without a Transport.
	ErrNilTransport = errors.New("secretmanager: transport must not be nil")

	// ErrNilRequest is returned when a method is called with a nil request.
	ErrNilRequest = errors.New("secretmanager: request must not be nil")

	// ErrUnknownCodec is returned by New when WithCodecName names no
	// built-in codec.
	ErrUnknownCodec = errors.New("secretmanager: unknown codec")
)

// ErrMissingField indicates a request without a field the REST path is
// built from.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("secretmanager: missing required field %q", e.Field)
}

// translateError classifies a failure of the Transport collaborator.
//
// Errors that already carry a category keep it and a transport reporting an
// *apierror.HTTPError is a remote failure. Everything else, context
// cancellation and deadlines included, failed before a response arrived and
// becomes apierror.KindTransport.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var e *apierror.Error
	if errors.As(err, &e) {
		return apierror.Classify(apierror.KindTransport, err)
	}

	var he *apierror.HTTPError
	if errors.As(err, &he) {
		return apierror.RemoteProtocol(err)
	}

	return apierror.Transport(err)
}

// translateTokenError classifies a failure of the TokenProvider collaborator
// as apierror.KindAuthentication unless it already carries a category.
func translateTokenError(err error) error {
	return apierror.Classify(apierror.KindAuthentication, err)
}

func requireField(field, value string) error {
	if value == "" {
		return apierror.Other(&ErrMissingField{Field: field})
	}
	return nil
}

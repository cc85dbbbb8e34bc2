// Package apierror defines the single error envelope returned by every layer of
// the client stack.
//
// An *Error carries a coarse Kind and an opaque cause. The cause may itself be
// another *Error, a transport-level *HTTPError, a wire.FieldError or any other
// error value; the chain can be arbitrarily deep.
//
//	err := apierror.FromHTTP(apierror.NewHTTPError(404, nil, nil))
//	wrapped := apierror.Other(apierror.Other(err))
//
//	if httpErr, ok := apierror.AsInner[*apierror.HTTPError](wrapped); ok {
//	    fmt.Println(httpErr.StatusCode) // 404
//	}
//
// Callers branch on the top-level category with Kind (or KindOf / IsKind for
// plain error values) and use AsInner or errors.As to recover a specific cause.
// Formatting with %+v renders the whole chain, one link per line.
package apierror

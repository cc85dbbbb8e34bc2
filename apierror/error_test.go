package apierror

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leafError struct{ msg string }

func (e *leafError) Error() string { return e.msg }

type wrapError struct {
	msg   string
	cause error
}

func (e *wrapError) Error() string { return e.msg + ": " + e.cause.Error() }
func (e *wrapError) Unwrap() error { return e.cause }

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want Kind
		desc string
	}{
		{"Serialization", Serialization(io.EOF), KindSerialization, "a problem occurred during serialization or deserialization"},
		{"Authentication", Authentication(io.EOF), KindAuthentication, "a problem occurred during authentication"},
		{"Transport", Transport(io.EOF), KindTransport, "a problem occurred during I/O"},
		{"RemoteProtocol", RemoteProtocol(io.EOF), KindRemoteProtocol, "a problem occurred while making a RPC"},
		{"Other", Other(io.EOF), KindOther, "a problem occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Kind())
			assert.Equal(t, tt.desc+": EOF", tt.err.Error())
		})
	}

	t.Run("ZeroValueIsOther", func(t *testing.T) {
		var k Kind
		assert.Equal(t, KindOther, k)
		assert.Equal(t, "other", k.Name())
	})
}

func TestKindIsTopLevel(t *testing.T) {
	inner := Serialization(io.EOF)
	outer := Transport(inner)

	assert.Equal(t, KindTransport, outer.Kind())
	assert.Equal(t, "a problem occurred during I/O: a problem occurred during serialization or deserialization: EOF", outer.Error())
}

func TestAsInner(t *testing.T) {
	t.Run("RemoteProtocolBehindTwoWrappers", func(t *testing.T) {
		httpErr := NewHTTPError(404, http.Header{"X-Request-Id": {"abc"}}, nil)
		err := Other(Other(FromHTTP(httpErr)))

		got, ok := AsInner[*HTTPError](err)
		require.True(t, ok)
		assert.Same(t, httpErr, got)
		assert.Equal(t, 404, got.StatusCode)
		assert.Equal(t, "abc", got.Header.Get("X-Request-Id"))
	})

	t.Run("ThroughForeignWrappers", func(t *testing.T) {
		leaf := &leafError{msg: "boom"}
		err := Other(&wrapError{msg: "outer", cause: fmt.Errorf("middle: %w", leaf)})

		got, ok := AsInner[*leafError](err)
		require.True(t, ok)
		assert.Same(t, leaf, got)
	})

	t.Run("ClosestToTopWins", func(t *testing.T) {
		deep := &leafError{msg: "deep"}
		shallow := &wrapError{msg: "shallow", cause: &wrapError{msg: "mid", cause: deep}}
		err := Other(shallow)

		got, ok := AsInner[*wrapError](err)
		require.True(t, ok)
		assert.Same(t, shallow, got)
	})

	t.Run("NestedEnvelopeIsALink", func(t *testing.T) {
		inner := RemoteProtocol(io.EOF)
		err := Other(inner)

		got, ok := AsInner[*Error](err)
		require.True(t, ok)
		assert.Same(t, inner, got)
	})

	t.Run("JoinedCauses", func(t *testing.T) {
		leaf := &leafError{msg: "second"}
		err := Other(errors.Join(io.EOF, leaf))

		got, ok := AsInner[*leafError](err)
		require.True(t, ok)
		assert.Same(t, leaf, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, ok := AsInner[*HTTPError](Other(io.EOF))
		assert.False(t, ok)

		_, ok = AsInner[*HTTPError](nil)
		assert.False(t, ok)
	})
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("call failed: %w", Authentication(io.EOF))

	k, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindAuthentication, k)
	assert.True(t, IsKind(err, KindAuthentication))
	assert.False(t, IsKind(err, KindTransport))

	_, ok = KindOf(io.EOF)
	assert.False(t, ok)
	assert.False(t, IsKind(io.EOF, KindOther))
}

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify(KindTransport, nil))

	wrapped := Classify(KindTransport, io.EOF)
	assert.True(t, IsKind(wrapped, KindTransport))
	assert.ErrorIs(t, wrapped, io.EOF)

	already := Serialization(io.EOF)
	assert.Same(t, already, Classify(KindTransport, already))

	foreign := fmt.Errorf("json: error calling MarshalJSON: %w", already)
	got := Classify(KindTransport, foreign)
	require.IsType(t, &Error{}, got)
	assert.True(t, IsKind(got, KindSerialization))
	assert.ErrorIs(t, got, io.EOF)
	assert.Equal(t, foreign, errors.Unwrap(got))
	assert.True(t, strings.HasPrefix(got.Error(), KindSerialization.String()+": json: error calling MarshalJSON"))
}

func TestFormat(t *testing.T) {
	err := Other(FromHTTP(NewHTTPError(503, nil, nil)))

	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
	assert.Equal(t,
		"kind=other\ncause: kind=remote_protocol\ncause: the HTTP transport reports a [503] error",
		fmt.Sprintf("%+v", err),
	)
}

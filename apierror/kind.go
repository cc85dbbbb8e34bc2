package apierror

// Kind is the coarse classification of an Error.
//
// The zero value is KindOther.
type Kind uint8

const (
	// KindOther is an uncategorized failure.
	KindOther Kind = iota
	// KindSerialization is malformed or schema-violating wire data.
	KindSerialization
	// KindAuthentication is a credential acquisition or validation failure.
	KindAuthentication
	// KindTransport is an I/O failure reaching the remote endpoint.
	KindTransport
	// KindRemoteProtocol is a well-formed response reporting a remote failure.
	KindRemoteProtocol
)

// String returns the human readable description used as the Error prefix.
func (k Kind) String() string {
	switch k {
	case KindSerialization:
		return "a problem occurred during serialization or deserialization"
	case KindAuthentication:
		return "a problem occurred during authentication"
	case KindTransport:
		return "a problem occurred during I/O"
	case KindRemoteProtocol:
		return "a problem occurred while making a RPC"
	default:
		return "a problem occurred"
	}
}

// Name returns a short, stable identifier suitable for logs and metrics.
func (k Kind) Name() string {
	switch k {
	case KindSerialization:
		return "serialization"
	case KindAuthentication:
		return "authentication"
	case KindTransport:
		return "transport"
	case KindRemoteProtocol:
		return "remote_protocol"
	default:
		return "other"
	}
}

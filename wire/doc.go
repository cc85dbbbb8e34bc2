// Package wire implements the JSON wire contract shared by every resource
// record: the scalar codec, the record codec and the untagged union resolver.
//
// A record describes itself by returning its fields, in schema order, from
// WireFields. Each Field is bound to the storage of one struct member and
// knows its wire kind:
//
//	func (s *Secret) WireFields() []wire.Field {
//	    return []wire.Field{
//	        wire.String("name", &s.Name),
//	        wire.Nested("replication", &s.Replication),
//	        wire.StringMap("labels", &s.Labels),
//	        wire.Repeated("topics", &s.Topics),
//	        wire.Union("expiration", &s.Expiration, expirationVariants...),
//	    }
//	}
//
// # Wire rules
//
//   - Field names are the schema's snake_case names converted to lowerCamelCase.
//   - Scalars are always written. Optional values (pointers, unions) are
//     omitted when absent and written when present, even if zero.
//   - Sequences are omitted when nil; an empty non-nil sequence is written as [].
//   - Maps are omitted when empty.
//   - 64-bit integers are decimal strings; bare JSON numbers are rejected.
//   - Bytes are standard, padded base64.
//   - Unknown keys are ignored on decode; JSON null is treated as absent.
//
// # Unions
//
// A union is written as the active alternative's own JSON value, with no tag.
// Decoding picks the alternative from the shape of the value; alternatives are
// tried in declaration order, so when two alternatives accept the same value
// the first declared wins. See Union for the full resolution rules.
//
// All failures returned by Marshal and Unmarshal are *apierror.Error values of
// kind KindSerialization whose cause is a *FieldError naming the field path.
package wire

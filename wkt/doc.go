// Package wkt implements the well-known types that travel as canonical text
// on the wire: Timestamp, Duration and FieldMask.
//
//	Timestamp  "2024-05-01T12:30:00.250Z"   RFC 3339, UTC, 0/3/6/9 fractional digits
//	Duration   "-3.500s"                    signed seconds, 0/3/6/9 fractional digits, "s" suffix
//	FieldMask  "labels,versionAliases"      comma-joined lowerCamelCase paths
//
// Parsing accepts exactly these forms (timestamps may also carry a numeric UTC
// offset) and rejects anything else.
package wkt

package wkt

import "errors"

var (
	// ErrInvalidTimestamp is returned for malformed or out-of-range timestamps.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrInvalidDuration is returned for malformed or out-of-range durations.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidFieldMask is returned for malformed field masks.
	ErrInvalidFieldMask = errors.New("invalid field mask")
)

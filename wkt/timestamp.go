package wkt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// minTimestampSeconds is 0001-01-01T00:00:00Z.
	minTimestampSeconds = -62135596800
	// maxTimestampSeconds is 9999-12-31T23:59:59Z.
	maxTimestampSeconds = 253402300799

	nanosPerSecond = 1_000_000_000
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?(Z|[+-]\d{2}:\d{2})$`)

// Timestamp is a point in time independent of any time zone, with nanosecond
// precision.
type Timestamp struct {
	// Seconds since the Unix epoch.
	Seconds int64
	// Nanos is the non-negative fraction of a second, in [0, 999999999].
	Nanos int32
}

// NewTimestamp converts t to a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// AsTime returns the timestamp as a UTC time.Time.
func (ts Timestamp) AsTime() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

// Validate reports whether ts is within the representable range.
func (ts Timestamp) Validate() error {
	if ts.Seconds < minTimestampSeconds || ts.Seconds > maxTimestampSeconds {
		return fmt.Errorf("%w: seconds %d out of range", ErrInvalidTimestamp, ts.Seconds)
	}
	if ts.Nanos < 0 || ts.Nanos >= nanosPerSecond {
		return fmt.Errorf("%w: nanos %d out of range", ErrInvalidTimestamp, ts.Nanos)
	}
	return nil
}

// Format returns the canonical text form. It fails for out-of-range values.
func (ts Timestamp) Format() (string, error) {
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts.AsTime().Format("2006-01-02T15:04:05") + fraction(ts.Nanos) + "Z", nil
}

// String returns the canonical text form, or a diagnostic for invalid values.
func (ts Timestamp) String() string {
	s, err := ts.Format()
	if err != nil {
		return fmt.Sprintf("Timestamp(%d, %d)", ts.Seconds, ts.Nanos)
	}
	return s
}

// ParseTimestamp parses the canonical text form.
func ParseTimestamp(s string) (Timestamp, error) {
	if !timestampPattern.MatchString(s) {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	ts := NewTimestamp(t)
	if err := ts.Validate(); err != nil {
		return Timestamp{}, err
	}
	return ts, nil
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	s, err := ts.Format()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// fraction renders nanos as "", ".sss", ".ssssss" or ".sssssssss", choosing the
// shortest form that loses no precision. nanos must be non-negative.
func fraction(nanos int32) string {
	switch {
	case nanos == 0:
		return ""
	case nanos%1_000_000 == 0:
		return fmt.Sprintf(".%03d", nanos/1_000_000)
	case nanos%1_000 == 0:
		return fmt.Sprintf(".%06d", nanos/1_000)
	default:
		return fmt.Sprintf(".%09d", nanos)
	}
}

// parseFraction converts 1 to 9 fractional digits to nanoseconds.
func parseFraction(digits string) (int32, error) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	for i := len(digits); i < 9; i++ {
		n *= 10
	}
	return int32(n), nil
}

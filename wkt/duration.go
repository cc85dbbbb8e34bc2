package wkt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// maxDurationSeconds is roughly 10,000 years.
const maxDurationSeconds = 315_576_000_000

var durationPattern = regexp.MustCompile(`^(-)?(\d+)(?:\.(\d{1,9}))?s$`)

// Duration is a signed span of time with nanosecond precision.
//
// Seconds and Nanos must carry the same sign when both are non-zero.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// NewDuration converts d to a Duration.
func NewDuration(d time.Duration) Duration {
	return Duration{
		Seconds: int64(d / time.Second),
		Nanos:   int32(d % time.Second),
	}
}

// AsDuration converts to a time.Duration, saturating on overflow.
func (d Duration) AsDuration() time.Duration {
	const maxSeconds = int64(1<<63-1) / int64(time.Second)
	switch {
	case d.Seconds > maxSeconds:
		return time.Duration(1<<63 - 1)
	case d.Seconds < -maxSeconds:
		return time.Duration(-1 << 63)
	}
	return time.Duration(d.Seconds)*time.Second + time.Duration(d.Nanos)
}

// Validate reports whether d is within range and sign-consistent.
func (d Duration) Validate() error {
	if d.Seconds < -maxDurationSeconds || d.Seconds > maxDurationSeconds {
		return fmt.Errorf("%w: seconds %d out of range", ErrInvalidDuration, d.Seconds)
	}
	if d.Nanos <= -nanosPerSecond || d.Nanos >= nanosPerSecond {
		return fmt.Errorf("%w: nanos %d out of range", ErrInvalidDuration, d.Nanos)
	}
	if (d.Seconds > 0 && d.Nanos < 0) || (d.Seconds < 0 && d.Nanos > 0) {
		return fmt.Errorf("%w: seconds and nanos have different signs", ErrInvalidDuration)
	}
	return nil
}

// Format returns the canonical text form. It fails for invalid values.
func (d Duration) Format() (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	sign := ""
	secs, nanos := d.Seconds, d.Nanos
	if secs < 0 || nanos < 0 {
		sign = "-"
		secs, nanos = -secs, -nanos
	}
	return sign + strconv.FormatInt(secs, 10) + fraction(nanos) + "s", nil
}

// String returns the canonical text form, or a diagnostic for invalid values.
func (d Duration) String() string {
	s, err := d.Format()
	if err != nil {
		return fmt.Sprintf("Duration(%d, %d)", d.Seconds, d.Nanos)
	}
	return s
}

// ParseDuration parses the canonical text form.
func ParseDuration(s string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	secs, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	var nanos int32
	if m[3] != "" {
		if nanos, err = parseFraction(m[3]); err != nil {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
	}
	if m[1] == "-" {
		secs, nanos = -secs, -nanos
	}
	d := Duration{Seconds: secs, Nanos: nanos}
	if err := d.Validate(); err != nil {
		return Duration{}, err
	}
	return d, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	s, err := d.Format()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Package types contains small shared value types.
package types

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout is the ISO calendar date layout (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// ErrInvalidDateString is returned for strings that are not YYYY-MM-DD dates.
var ErrInvalidDateString = errors.New("types: invalid date string format")

// DateString is a calendar date in ISO YYYY-MM-DD form.
// The zero value ("") means "no date".
type DateString string

// NewDateString builds a DateString from a time.Time, dropping the time part.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses and normalizes an ISO date string.
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return NewDateString(t), nil
}

// IsZero reports whether the date is unset.
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks that the value is a well-formed ISO date.
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Time converts the date to a time.Time at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// Before reports whether d is strictly before other.
// Invalid values compare lexicographically, which for well-formed ISO dates
// matches chronological order.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After reports whether d is strictly after other.
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

func (d DateString) String() string {
	return string(d)
}

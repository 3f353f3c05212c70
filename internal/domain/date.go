package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedDate is returned when a DD/MM/YYYY value cannot be parsed into a calendar date.
var ErrMalformedDate = errors.New("malformed date")

// Date is a calendar date encoded as year*10000 + month*100 + day.
// The encoding totally orders dates with plain integer comparison.
type Date int

// NewDate builds a Date from its parts without validation.
func NewDate(year int, month time.Month, day int) Date {
	return Date(year*10000 + int(month)*100 + day)
}

// ParseDate parses a DD/MM/YYYY string. Single digit days and months are accepted.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]

	// time.Date normalises out-of-range values, so a round trip detects 31/02 and friends.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if year < 1 || t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return NewDate(year, time.Month(month), day), nil
}

// MustParseDate is like ParseDate but panics on error. Intended for tests and constants.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int         { return int(d) / 10000 }
func (d Date) Month() time.Month { return time.Month(int(d) / 100 % 100) }
func (d Date) Day() int          { return int(d) % 100 }

// String formats the date back to DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), int(d.Month()), d.Year())
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

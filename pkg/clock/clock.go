package clock

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DefaultPattern renders 24-hour wall-clock time, e.g. 09:05:03
const DefaultPattern = "%H:%M:%S"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Formatter renders times with a strftime pattern
type Formatter struct {
	pattern *strftime.Strftime
}

// NewFormatter compiles pattern. An empty pattern selects DefaultPattern.
func NewFormatter(pattern string) (*Formatter, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	p, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid time pattern %q: %w", pattern, err)
	}
	return &Formatter{pattern: p}, nil
}

func (f *Formatter) Format(t time.Time) string {
	return f.pattern.FormatString(t)
}

func (f *Formatter) Pattern() string {
	return f.pattern.Pattern()
}

var defaultFormatter = mustFormatter(DefaultPattern)

func mustFormatter(pattern string) *Formatter {
	f, err := NewFormatter(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders t as H:M:S in 24-hour form
func Format(t time.Time) string {
	return defaultFormatter.Format(t)
}

// Status is the status-bar rendering of c's current time
func Status(c Clock) string {
	return Format(c.Now())
}

package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Interval is a backup cadence step. It is either a fixed duration
// (hours, days, weeks) or a calendar step (months, years) that follows
// month boundaries the way AddDate does.
type Interval struct {
	Fixed  time.Duration
	Months int
	Years  int
}

var spanRe = regexp.MustCompile(`^(\d+)(h|d|w|mo|y)$`)

// ParseInterval parses cadence strings like "4h", "1d", "1w", "1mo", "1y".
func ParseInterval(s string) (Interval, error) {
	m := spanRe.FindStringSubmatch(s)
	if m == nil {
		return Interval{}, fmt.Errorf("invalid interval %q: expected forms like 4h, 1d, 1w, 1mo, 1y", s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return Interval{}, fmt.Errorf("invalid interval %q: count must be positive", s)
	}
	switch m[2] {
	case "h":
		return Interval{Fixed: time.Duration(n) * time.Hour}, nil
	case "d":
		return Interval{Fixed: time.Duration(n) * 24 * time.Hour}, nil
	case "w":
		return Interval{Fixed: time.Duration(n) * 7 * 24 * time.Hour}, nil
	case "mo":
		return Interval{Months: n}, nil
	case "y":
		return Interval{Years: n}, nil
	}
	return Interval{}, fmt.Errorf("invalid interval %q", s)
}

// ParseSpan parses fixed-duration strings like "5d", "30d", "1w", "12h".
// Calendar units are not allowed here; retention and cold-after offsets
// are fixed lengths of time.
func ParseSpan(s string) (time.Duration, error) {
	m := spanRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q: expected forms like 12h, 5d, 1w", s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid duration %q: count must be positive", s)
	}
	switch m[2] {
	case "h":
		return time.Duration(n) * time.Hour, nil
	case "d":
		return time.Duration(n) * 24 * time.Hour, nil
	case "w":
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	}
	return 0, fmt.Errorf("invalid duration %q: calendar units are not allowed here", s)
}

func (iv Interval) IsZero() bool {
	return iv.Fixed == 0 && iv.Months == 0 && iv.Years == 0
}

// Next returns the instant one cadence step after t.
func (iv Interval) Next(t time.Time) time.Time {
	if iv.Fixed > 0 {
		return t.Add(iv.Fixed)
	}
	return AddMonths(t, iv.Years*12+iv.Months)
}

// DividesDay reports whether recovery points land on every midnight when
// stepping from a midnight anchor, i.e. the fixed step evenly divides 24h.
func (iv Interval) DividesDay() bool {
	return iv.Fixed > 0 && (24*time.Hour)%iv.Fixed == 0
}

func (iv Interval) String() string {
	switch {
	case iv.Years > 0:
		return fmt.Sprintf("%dy", iv.Years)
	case iv.Months > 0:
		return fmt.Sprintf("%dmo", iv.Months)
	case iv.Fixed%(7*24*time.Hour) == 0:
		return fmt.Sprintf("%dw", iv.Fixed/(7*24*time.Hour))
	case iv.Fixed%(24*time.Hour) == 0:
		return fmt.Sprintf("%dd", iv.Fixed/(24*time.Hour))
	default:
		return fmt.Sprintf("%dh", iv.Fixed/time.Hour)
	}
}

// Schedule is one entry of the backup schedule catalog. A recovery point
// is taken every Interval, kept for Retention and, when ColdAfter is
// non-zero, moved to the cold tier ColdAfter after creation.
type Schedule struct {
	Name      string
	Interval  Interval
	Retention time.Duration
	ColdAfter time.Duration // 0 means the schedule never leaves the warm tier
}

func (s Schedule) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schedule name must not be empty")
	}
	if s.Interval.IsZero() {
		return fmt.Errorf("schedule %q: interval must be positive", s.Name)
	}
	if s.Interval.Fixed < 0 || s.Interval.Months < 0 || s.Interval.Years < 0 {
		return fmt.Errorf("schedule %q: interval must be positive", s.Name)
	}
	if s.Retention <= 0 {
		return fmt.Errorf("schedule %q: retention must be positive", s.Name)
	}
	if s.ColdAfter < 0 {
		return fmt.Errorf("schedule %q: cold_after must not be negative", s.Name)
	}
	if s.ColdAfter > 0 && s.ColdAfter >= s.Retention {
		return fmt.Errorf("schedule %q: cold_after must be shorter than retention", s.Name)
	}
	return nil
}

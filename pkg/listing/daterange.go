package listing

import (
	"errors"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used by every dated record.
const DateLayout = "2006-01-02"

var ErrInvalidRange = errors.New("start date is after end date")

// DateRange is an inclusive range of calendar days. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses optional YYYY-MM-DD bounds.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		t, err := time.Parse(DateLayout, from)
		if err != nil {
			return DateRange{}, err
		}
		r.From = t
	}
	if to != "" {
		t, err := time.Parse(DateLayout, to)
		if err != nil {
			return DateRange{}, err
		}
		r.To = t
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return DateRange{}, ErrInvalidRange
	}
	return r, nil
}

// Contains reports whether the YYYY-MM-DD date falls inside the range.
// Unparseable dates are outside any bounded range.
func (r DateRange) Contains(date string) bool {
	if r.From.IsZero() && r.To.IsZero() {
		return true
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// InRange keeps records whose date lies within r.
func InRange[T any](items []T, r DateRange, date Field[T]) []T {
	return Where(items, func(it T) bool { return r.Contains(date(it)) })
}

package daterange

import (
	"time"

	"cloud.google.com/go/civil"
)

// Range is an immutable pair of dates. Either endpoint may be the zero
// civil.Date, which means "unspecified": an absent begin reaches back to
// MinDate and an absent end reaches forward to MaxDate.
type Range struct {
	begin civil.Date
	end   civil.Date
}

// Between builds a Range. No ordering is enforced.
func Between(begin, end civil.Date) Range {
	return Range{begin: begin, end: end}
}

func (r Range) Begin() civil.Date { return r.begin }

func (r Range) End() civil.Date { return r.end }

// IsEmpty reports whether both endpoints are absent.
func (r Range) IsEmpty() bool {
	return r.begin.IsZero() && r.end.IsZero()
}

// Equal reports whether both endpoints match, absent ones included.
func (r Range) Equal(o Range) bool {
	return r == o
}

// EffectiveBegin returns the begin date, or MinDate when absent.
func (r Range) EffectiveBegin() civil.Date {
	if r.begin.IsZero() {
		return MinDate
	}
	return r.begin
}

// EffectiveEnd returns the end date, or MaxDate when absent.
func (r Range) EffectiveEnd() civil.Date {
	if r.end.IsZero() {
		return MaxDate
	}
	return r.end
}

// Period returns the calendar difference between the effective bounds. A
// completely empty range therefore spans MinDate to MaxDate, not zero.
func (r Range) Period() Period {
	return PeriodBetween(r.EffectiveBegin(), r.EffectiveEnd())
}

// Contains reports whether d falls inside the effective bounds, both ends
// inclusive.
func (r Range) Contains(d civil.Date) bool {
	return !d.Before(r.EffectiveBegin()) && !d.After(r.EffectiveEnd())
}

func (r Range) Get(u Unit) (int64, bool) { return r.Period().Get(u) }

func (r Range) Units() []Unit { return r.Period().Units() }

func (r Range) AddTo(d civil.Date) civil.Date { return r.Period().AddTo(d) }

func (r Range) SubtractFrom(d civil.Date) civil.Date { return r.Period().SubtractFrom(d) }

// Format renders "begin .. end" with layout, leaving absent endpoints blank.
func (r Range) Format(layout string) string {
	return formatDate(r.begin, layout) + " .. " + formatDate(r.end, layout)
}

// String renders the period, e.g. P9D.
func (r Range) String() string {
	return r.Period().String()
}

func formatDate(d civil.Date, layout string) string {
	if d.IsZero() {
		return ""
	}
	if layout == "" {
		return d.String()
	}
	return d.In(time.UTC).Format(layout)
}

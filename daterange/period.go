package daterange

import (
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// Unit names a calendar component of a Period.
type Unit int

const (
	Days Unit = iota
	Months
	Years
)

func (u Unit) String() string {
	switch u {
	case Days:
		return "Days"
	case Months:
		return "Months"
	case Years:
		return "Years"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Period is a calendar amount of years, months and days. It is not an
// elapsed duration: one month from Jan 31 lands on the last day of February.
type Period struct {
	Years  int
	Months int
	Days   int
}

// PeriodBetween returns the calendar difference from start to end. The
// result is negative when end precedes start.
func PeriodBetween(start, end civil.Date) Period {
	totalMonths := monthIndex(end) - monthIndex(start)
	days := int64(end.Day - start.Day)
	switch {
	case totalMonths > 0 && days < 0:
		totalMonths--
		calc := addMonths(start, totalMonths)
		days = epochDay(end) - epochDay(calc)
	case totalMonths < 0 && days > 0:
		totalMonths++
		days -= int64(daysInMonth(end.Year, end.Month))
	}
	return Period{
		Years:  int(totalMonths / 12),
		Months: int(totalMonths % 12),
		Days:   int(days),
	}
}

// IsZero reports whether all three components are zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// TotalMonths folds years into months.
func (p Period) TotalMonths() int64 {
	return int64(p.Years)*12 + int64(p.Months)
}

// Negated flips the sign of every component.
func (p Period) Negated() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

// Get returns the value of one component. ok is false for units a Period
// does not carry.
func (p Period) Get(u Unit) (v int64, ok bool) {
	switch u {
	case Years:
		return int64(p.Years), true
	case Months:
		return int64(p.Months), true
	case Days:
		return int64(p.Days), true
	}
	return 0, false
}

// Units lists the components a Period carries, largest first.
func (p Period) Units() []Unit {
	return []Unit{Years, Months, Days}
}

// AddTo moves d forward by p: months first (clamped to month end), then days.
func (p Period) AddTo(d civil.Date) civil.Date {
	d = addMonths(d, p.TotalMonths())
	if p.Days != 0 {
		d = d.AddDays(p.Days)
	}
	return d
}

// SubtractFrom moves d backward by p.
func (p Period) SubtractFrom(d civil.Date) civil.Date {
	return p.Negated().AddTo(d)
}

// String renders p as an ISO-8601 period such as P1Y2M3D, or P0D.
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.Years != 0 {
		b.WriteString(strconv.Itoa(p.Years))
		b.WriteByte('Y')
	}
	if p.Months != 0 {
		b.WriteString(strconv.Itoa(p.Months))
		b.WriteByte('M')
	}
	if p.Days != 0 {
		b.WriteString(strconv.Itoa(p.Days))
		b.WriteByte('D')
	}
	return b.String()
}

package daterange

import (
	"time"

	"cloud.google.com/go/civil"
)

// MinDate and MaxDate stand in for an absent begin or end when a period is
// computed.
var (
	MinDate = civil.Date{Year: -999999999, Month: time.January, Day: 1}
	MaxDate = civil.Date{Year: 999999999, Month: time.December, Day: 31}
)

// Today returns the current date in loc (time.Local when nil).
func Today(loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.Local
	}
	return civil.DateOf(time.Now().In(loc))
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func monthIndex(d civil.Date) int64 {
	return int64(d.Year)*12 + int64(d.Month-1)
}

func epochDay(d civil.Date) int64 {
	return d.In(time.UTC).Unix() / 86400
}

// addMonths moves d by n months, clamping the day to the end of the target
// month.
func addMonths(d civil.Date, n int64) civil.Date {
	if n == 0 {
		return d
	}
	idx := monthIndex(d) + n
	year := floorDiv(idx, 12)
	month := time.Month(idx-year*12) + 1
	day := d.Day
	if last := daysInMonth(int(year), month); day > last {
		day = last
	}
	return civil.Date{Year: int(year), Month: month, Day: day}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

package presets

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/jask/daterangefield/daterange"
)

// Today is the single-day range [now, now].
func Today(now civil.Date) daterange.Range {
	return daterange.Between(now, now)
}

// PlusOneYear runs from now to the same day next year.
func PlusOneYear(now civil.Date) daterange.Range {
	return daterange.Between(now, daterange.Period{Years: 1}.AddTo(now))
}

// ThisWeek is Monday through Sunday of the week containing now.
func ThisWeek(now civil.Date) daterange.Range {
	monday := mondayOf(now)
	return daterange.Between(monday, monday.AddDays(6))
}

// NextWeek is ThisWeek shifted by seven days.
func NextWeek(now civil.Date) daterange.Range {
	monday := mondayOf(now).AddDays(7)
	return daterange.Between(monday, monday.AddDays(6))
}

// ThisMonth is the calendar month containing now.
func ThisMonth(now civil.Date) daterange.Range {
	start := civil.Date{Year: now.Year, Month: now.Month, Day: 1}
	return daterange.Between(start, lastOfMonth(start))
}

// LastMonth is the calendar month before the one containing now.
func LastMonth(now civil.Date) daterange.Range {
	start := daterange.Period{Months: 1}.SubtractFrom(civil.Date{Year: now.Year, Month: now.Month, Day: 1})
	return daterange.Between(start, lastOfMonth(start))
}

// YearToDate runs from January 1st through now.
func YearToDate(now civil.Date) daterange.Range {
	return daterange.Between(civil.Date{Year: now.Year, Month: time.January, Day: 1}, now)
}

// LastYear is the rolling twelve months ending on now.
func LastYear(now civil.Date) daterange.Range {
	start := daterange.Period{Years: 1}.SubtractFrom(now).AddDays(1)
	return daterange.Between(start, now)
}

func mondayOf(d civil.Date) civil.Date {
	wd := d.In(time.UTC).Weekday()
	return d.AddDays(-((int(wd) + 6) % 7))
}

func lastOfMonth(first civil.Date) civil.Date {
	return daterange.Period{Months: 1}.AddTo(first).AddDays(-1)
}

// Register installs the demo shortcut menu on f, computing every range
// from now.
func Register(f *daterange.Field, now civil.Date) {
	apply := func(fn func(civil.Date) daterange.Range) func(*daterange.Field) {
		return func(f *daterange.Field) { f.SetValue(fn(now)) }
	}
	f.AddShortcut("Today", apply(Today)).
		AddShortcut("plus one year", apply(PlusOneYear))
	f.AddShortcut("This week", apply(ThisWeek))
	f.AddShortcut("Next week", apply(NextWeek))
	f.AddShortcut("This month", apply(ThisMonth))
	f.AddShortcut("Last month", apply(LastMonth))
	f.AddShortcut("Year to date", apply(YearToDate))
	f.AddShortcut("Last 12 months", apply(LastYear))
	f.AddShortcutSeparator()
	f.AddShortcut("Clear", (*daterange.Field).Clear)
}

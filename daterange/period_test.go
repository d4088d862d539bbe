package daterange

import (
	"math/rand/v2"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestPeriodBetween(t *testing.T) {
	tab := []struct {
		name       string
		start, end civil.Date
		want       Period
		str        string
	}{
		{"same day", date(2020, 6, 1), date(2020, 6, 1), Period{}, "P0D"},
		{"days only", date(2020, 1, 1), date(2020, 1, 10), Period{Days: 9}, "P9D"},
		{"borrow month across leap february", date(2020, 1, 31), date(2020, 3, 1), Period{Months: 1, Days: 1}, "P1M1D"},
		{"short month end", date(2021, 1, 31), date(2021, 2, 28), Period{Days: 28}, "P28D"},
		{"years months days", date(2019, 6, 15), date(2021, 8, 20), Period{Years: 2, Months: 2, Days: 5}, "P2Y2M5D"},
		{"whole year", date(2020, 2, 29), date(2021, 2, 28), Period{Months: 11, Days: 30}, "P11M30D"},
		{"negative", date(2020, 3, 10), date(2020, 1, 15), Period{Months: -1, Days: -26}, "P-1M-26D"},
		{"bounds", MinDate, MaxDate, Period{Years: 1999999998, Months: 11, Days: 30}, "P1999999998Y11M30D"},
	}
	for _, c := range tab {
		t.Run(c.name, func(t *testing.T) {
			got := PeriodBetween(c.start, c.end)
			require.Equal(t, c.want, got)
			require.Equal(t, c.str, got.String())
		})
	}
}

func TestPeriodBetweenRoundTripsThroughAddTo(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	base := date(1996, 1, 1)
	for i := 0; i < 2000; i++ {
		begin := base.AddDays(rng.IntN(365 * 30))
		end := begin.AddDays(rng.IntN(365 * 5))
		p := PeriodBetween(begin, end)
		require.GreaterOrEqual(t, p.Years, 0)
		require.True(t, p.Months >= 0 && p.Months < 12, "months out of range: %v", p)
		require.GreaterOrEqual(t, p.Days, 0)
		require.Equal(t, end, p.AddTo(begin), "begin=%s end=%s period=%s", begin, end, p)
	}
}

func TestPeriodAddToClampsToMonthEnd(t *testing.T) {
	require.Equal(t, date(2021, 2, 28), Period{Months: 1}.AddTo(date(2021, 1, 31)))
	require.Equal(t, date(2021, 2, 28), Period{Years: 1}.AddTo(date(2020, 2, 29)))
	require.Equal(t, date(2020, 3, 1), Period{Months: 1, Days: 1}.AddTo(date(2020, 1, 31)))
	require.Equal(t, date(2020, 2, 29), Period{Months: 1}.SubtractFrom(date(2020, 3, 31)))
	require.Equal(t, date(2019, 12, 31), Period{Years: 1, Months: 2, Days: 1}.SubtractFrom(date(2021, 3, 1)))
}

func TestPeriodGetAndUnits(t *testing.T) {
	p := Period{Years: 1, Months: 2, Days: 3}
	require.Equal(t, []Unit{Years, Months, Days}, p.Units())
	for unit, want := range map[Unit]int64{Years: 1, Months: 2, Days: 3} {
		got, ok := p.Get(unit)
		require.True(t, ok)
		require.Equal(t, want, got, unit.String())
	}
	_, ok := p.Get(Unit(42))
	require.False(t, ok)
	require.Equal(t, int64(14), p.TotalMonths())
	require.Equal(t, "P-1Y-2M-3D", p.Negated().String())
}

package daterange

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"
)

func TestRangePeriodUsesEffectiveBounds(t *testing.T) {
	tab := []struct {
		name string
		r    Range
		want string
	}{
		{"complete", Between(date(2020, 6, 1), date(2020, 6, 10)), "P9D"},
		{"empty spans every representable date", Between(civil.Date{}, civil.Date{}), "P1999999998Y11M30D"},
		{"open end", Between(date(2020, 1, 1), civil.Date{}), "P999997979Y11M30D"},
		{"open begin", Between(civil.Date{}, date(2020, 6, 10)), "P1000002019Y5M9D"},
	}
	for _, c := range tab {
		require.Equal(t, c.want, c.r.Period().String(), c.name)
		require.Equal(t, c.want, c.r.String(), c.name)
	}
}

func TestRangeEquality(t *testing.T) {
	a := Between(date(2020, 6, 1), date(2020, 6, 10))
	require.True(t, a.Equal(Between(date(2020, 6, 1), date(2020, 6, 10))))
	require.False(t, a.Equal(Between(date(2020, 6, 1), civil.Date{})))
	require.True(t, Between(civil.Date{}, civil.Date{}).Equal(Range{}))
	require.True(t, Range{}.IsEmpty())
	require.False(t, a.IsEmpty())
}

func TestRangeContains(t *testing.T) {
	r := Between(date(2020, 6, 1), date(2020, 6, 10))
	require.True(t, r.Contains(date(2020, 6, 1)))
	require.True(t, r.Contains(date(2020, 6, 10)))
	require.False(t, r.Contains(date(2020, 6, 11)))
	require.True(t, Between(civil.Date{}, date(2020, 6, 10)).Contains(date(1, 1, 1)))
	require.True(t, Between(date(2020, 6, 1), civil.Date{}).Contains(date(9999, 12, 31)))
}

func TestRangeTemporalAmount(t *testing.T) {
	r := Between(date(2020, 1, 31), date(2020, 3, 1))
	require.Equal(t, date(2021, 3, 1), r.AddTo(date(2021, 1, 31)))
	require.Equal(t, date(2020, 1, 31), r.SubtractFrom(date(2020, 3, 1)))
	months, ok := r.Get(Months)
	require.True(t, ok)
	require.Equal(t, int64(1), months)
	require.Equal(t, []Unit{Years, Months, Days}, r.Units())
}

func TestRangeFormat(t *testing.T) {
	r := Between(date(2020, 6, 1), civil.Date{})
	require.Equal(t, "2020-06-01 .. ", r.Format(""))
	require.Equal(t, "01/06/2020 .. ", r.Format("02/01/2006"))
}

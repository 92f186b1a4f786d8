package rational

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatMixed(t *testing.T) {
	for idx, tc := range []struct {
		a   Rat
		out Mixed
	}{
		{rat(7, 3), Mixed{Whole: 2, Num: 1, Den: 3}},
		{rat(-7, 3), Mixed{Whole: -2, Num: -1, Den: 3}},
		{rat(1, 2), Mixed{Whole: 0, Num: 1, Den: 2}},
		{rat(-1, 2), Mixed{Whole: 0, Num: -1, Den: 2}},
		{rat(6, 3), Mixed{Whole: 2, Num: 0, Den: 1}},
		{rat(-6, 3), Mixed{Whole: -2, Num: 0, Den: 1}},
		{Zero, Mixed{Whole: 0, Num: 0, Den: 1}},
		{rat(22, 7), Mixed{Whole: 3, Num: 1, Den: 7}},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			m := tc.a.Mixed()
			require.Equal(t, tc.out, m)

			// The decomposition is exact.
			require.Equal(t, tc.a.Num(), m.Whole*m.Den+m.Num)
			require.Less(t, abs(m.Num), m.Den)
		})
	}
}

func TestFromMixed(t *testing.T) {
	for idx, tc := range []struct {
		whole, num, den int64
		out             Rat
	}{
		{2, 1, 3, rat(7, 3)},
		{-2, 1, 3, rat(-7, 3)},
		{-2, -1, 3, rat(-7, 3)},
		{0, 3, 4, rat(3, 4)},
		{0, -3, 4, rat(-3, 4)},
		{5, 0, 1, rat(5, 1)},
		{-5, 0, 9, rat(-5, 1)},
		{0, 0, 2, Zero},
		{1, 2, 4, rat(3, 2)},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d,%d=%s", idx, tc.whole, tc.num, tc.den, tc.out), func(t *testing.T) {
			x, err := FromMixed(tc.whole, tc.num, tc.den)
			require.NoError(t, err)
			require.Equal(t, tc.out, x)
		})
	}

	_, err := FromMixed(2, 1, 0)
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestMixedRoundTrip(t *testing.T) {
	for _, a := range []Rat{
		Zero, One, rat(-1, 1), rat(1, 2), rat(-1, 2), rat(7, 3), rat(-7, 3),
		rat(22, 7), rat(-22, 7), rat(100, 9), rat(-100, 9), rat(6, 3),
	} {
		t.Run(a.String(), func(t *testing.T) {
			back, err := a.Mixed().Rat()
			require.NoError(t, err)
			require.Equal(t, a, back)
		})
	}
}

func TestMixedString(t *testing.T) {
	for _, tc := range []struct {
		a   Rat
		out string
	}{
		{rat(7, 3), "2 1/3"},
		{rat(-7, 3), "-2 1/3"},
		{rat(1, 2), "1/2"},
		{rat(-1, 2), "-1/2"},
		{rat(6, 3), "2"},
		{rat(-6, 3), "-2"},
		{Zero, "0"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			require.Equal(t, tc.out, tc.a.Mixed().String())
		})
	}
}

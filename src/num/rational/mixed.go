package rational

import "fmt"

// Mixed is the mixed-number view of a rational: a whole part plus a proper
// remainder over the same denominator. The decomposition is exact,
// Whole*Den + Num == numerator, and a nonzero Num carries the source's sign.
type Mixed struct {
	Whole int64
	Num   int64
	Den   int64
}

// Mixed decomposes x exactly. The whole part truncates toward zero, so
// negative values decompose symmetrically to positive ones: 7/3 gives
// {2, 1, 3} and -7/3 gives {-2, -1, 3}.
func (x Rat) Mixed() Mixed {
	den := x.Den()
	whole := x.num / den
	return Mixed{Whole: whole, Num: x.num - whole*den, Den: den}
}

// FromMixed composes a rational from a whole part and a fraction. A nonzero
// whole's sign applies to the entire value and num counts as a magnitude:
// FromMixed(2, 1, 3) is 7/3, FromMixed(-2, 1, 3) is -7/3. With a zero whole
// the fraction speaks for itself: FromMixed(0, -3, 4) is -3/4. A zero den
// returns ErrZeroDenominator.
func FromMixed(whole, num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrZeroDenominator
	}
	if whole == 0 {
		return New(num, den)
	}
	return New(whole*den+int64(sgn(whole))*abs(num), den)
}

// Rat recomposes the mixed number under FromMixed's sign rule, so for every
// value x, x.Mixed().Rat() gives back x.
func (m Mixed) Rat() (Rat, error) {
	return FromMixed(m.Whole, m.Num, m.Den)
}

// String renders the human form: "2 1/3" and "-2 1/3" with the sign up
// front and the fraction as a magnitude, a bare "6" for whole values, and
// "3/4" when the whole part is zero.
func (m Mixed) String() string {
	if m.Num == 0 {
		return fmt.Sprintf("%d", m.Whole)
	}
	if m.Whole == 0 {
		return fmt.Sprintf("%d/%d", m.Num, m.Den)
	}
	return fmt.Sprintf("%d %d/%d", m.Whole, abs(m.Num), m.Den)
}

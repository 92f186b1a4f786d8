package rational

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultMaxDenominator is the denominator bound FromFloat64 falls
	// back to when the caller passes a non-positive limit.
	DefaultMaxDenominator int64 = 10000

	maxInt64 = 1<<63 - 1

	// float64(maxInt64) rounds up to exactly 1<<63, so accepting only
	// f < maxInt64Float keeps every integer part convertible.
	maxInt64Float = float64(maxInt64)

	// The convergent denominators grow at least as fast as the Fibonacci
	// numbers, so any int64 bound stops the walk well before this.
	maxTerms = 128
)

// Parse reads a rational from its string form. Accepted shapes, after
// trimming spaces: "a/b" with optionally signed integer components, a bare
// integer "n", and a decimal numeral such as "2.5" or "1e3" (routed through
// ParseDecimal). The error is ErrInvalidFormat, ErrOutOfRange or
// ErrZeroDenominator.
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rat{}, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}
	if numStr, denStr, ok := strings.Cut(s, "/"); ok {
		num, err := parseComponent(numStr)
		if err != nil {
			return Rat{}, err
		}
		den, err := parseComponent(denStr)
		if err != nil {
			return Rat{}, err
		}
		return New(num, den)
	}
	if strings.ContainsAny(s, ".eE") {
		return ParseDecimal(s)
	}
	v, err := parseComponent(s)
	if err != nil {
		return Rat{}, err
	}
	return FromInt64(v), nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(s string) Rat {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

func parseComponent(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return v, nil
}

// ParseDecimal converts a decimal numeral to its exact rational value:
// "3.25" is 13/4 and "0.1" is exactly 1/10, unlike the float path. Values
// whose exact form does not fit the int64 components return ErrOutOfRange.
func ParseDecimal(s string) (Rat, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Rat{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	r := d.Rat()
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Rat{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return New(r.Num().Int64(), r.Denom().Int64())
}

// FromFloat64 returns the closest rational to f with denominator at most
// maxDen, walking the continued fraction of f and then weighing the final
// semiconvergent against the last convergent. A non-positive maxDen selects
// DefaultMaxDenominator. Inputs exactly representable within the bound come
// back exact: 0.75 gives 3/4. The result is deterministic in (f, maxDen).
// NaN and the infinities return ErrNonFinite; values whose numerator would
// not fit int64 return ErrOutOfRange.
func FromFloat64(f float64, maxDen int64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, ErrNonFinite
	}
	if maxDen <= 0 {
		maxDen = DefaultMaxDenominator
	}
	neg := math.Signbit(f)
	if neg {
		f = -f
	}
	if f >= maxInt64Float {
		return Rat{}, ErrOutOfRange
	}

	// Convergents p/q of the continued fraction of f. After each step
	// p1/q1 is the newest convergent within the bound and p0/q0 the one
	// before it; the seeds make the recurrence p2 = a*p1 + p0 work from
	// the first term.
	var (
		p0, q0 = int64(0), int64(1)
		p1, q1 = int64(1), int64(0)
	)
	bounded := false
	x := f
	for i := 0; i < maxTerms; i++ {
		if x >= maxInt64Float {
			bounded = true
			break
		}
		a := int64(x)
		if q1 > 0 && a > (maxDen-q0)/q1 {
			bounded = true
			break
		}
		if p1 > 0 && a > (maxInt64-p0)/p1 {
			return Rat{}, fmt.Errorf("%w: %v/%d", ErrOutOfRange, f, maxDen)
		}
		p0, q0, p1, q1 = p1, q1, a*p1+p0, a*q1+q0
		frac := x - float64(a)
		if frac == 0 {
			break
		}
		x = 1 / frac
	}

	if bounded {
		// The best rational under the bound is either the last convergent
		// or the largest semiconvergent between it and the rejected one.
		k := (maxDen - q0) / q1
		if k > 0 && p1 <= (maxInt64-p0)/k {
			sp, sq := p0+k*p1, q0+k*q1
			if math.Abs(float64(sp)/float64(sq)-f) < math.Abs(float64(p1)/float64(q1)-f) {
				p1, q1 = sp, sq
			}
		}
	}

	if neg {
		p1 = -p1
	}
	return New(p1, q1)
}

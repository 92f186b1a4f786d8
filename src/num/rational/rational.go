// Package rational implements exact arithmetic on rational numbers backed
// by machine integers. Every Rat is kept in canonical form: the denominator
// is positive, numerator and denominator are coprime, and zero is always
// 0/1. Operations never go through floating point unless their name says so.
package rational

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// New returns the rational num/den in canonical form. The sign moves to the
// numerator, both components are divided by their gcd, and a zero numerator
// collapses to 0/1. A zero denominator is the one rejected input.
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrZeroDenominator
	}
	return norm(num, den), nil
}

// Must is New for call sites with known-good components; it panics with
// ErrZeroDenominator instead of returning an error.
func Must(num, den int64) Rat {
	x, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// FromInt64 returns v/1. Integer operands on the left of a mixed expression
// go through this conversion: FromInt64(2).Sub(x).
func FromInt64(v int64) Rat {
	return Rat{num: v}
}

// Rat is a rational number with int64 components. The zero value is the
// rational zero. Canonical form is unique, so == on Rat matches value
// equality and Rat works directly as a map key.
type Rat struct {
	num int64
	den int64 // denominator - 1, so the zero value reads as 0/1
}

var (
	// Zero is the canonical 0/1, also the zero value of Rat.
	Zero Rat

	// One is the rational 1/1.
	One = FromInt64(1)
)

// norm builds the canonical form. Arithmetic funnels through here, so the
// invariants hold for every reachable Rat.
func norm(num, den int64) Rat {
	if den == 0 {
		panic(ErrZeroDenominator)
	}
	if num == 0 {
		return Rat{}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := GCD(num, den)
	return Rat{num: num / g, den: den/g - 1}
}

// Num returns the canonical numerator; the sign of the value lives here.
func (x Rat) Num() int64 { return x.num }

// Den returns the canonical denominator, always positive.
func (x Rat) Den() int64 { return x.den + 1 }

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	return norm(x.num*y.Den()+y.num*x.Den(), x.Den()*y.Den())
}

func (x Rat) Add64(n int64) Rat { return x.Add(FromInt64(n)) }

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	return norm(x.num*y.Den()-y.num*x.Den(), x.Den()*y.Den())
}

func (x Rat) Sub64(n int64) Rat { return x.Sub(FromInt64(n)) }

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	return norm(x.num*y.num, x.Den()*y.Den())
}

func (x Rat) Mul64(n int64) Rat { return x.Mul(FromInt64(n)) }

// Quo returns x / y. It panics with ErrDivisionByZero if y is zero.
func (x Rat) Quo(y Rat) Rat {
	if y.num == 0 {
		panic(ErrDivisionByZero)
	}
	return norm(x.num*y.Den(), x.Den()*y.num)
}

func (x Rat) Quo64(n int64) Rat { return x.Quo(FromInt64(n)) }

// FloorDiv returns floor(x/y) as a plain integer, rounding toward negative
// infinity. It panics with ErrDivisionByZero if y is zero.
func (x Rat) FloorDiv(y Rat) int64 {
	if y.num == 0 {
		panic(ErrDivisionByZero)
	}
	n := x.num * y.Den()
	d := x.Den() * y.num
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}

func (x Rat) FloorDiv64(n int64) int64 { return x.FloorDiv(FromInt64(n)) }

// Mod returns x - y*floor(x/y). The result is exact and a nonzero result
// has the divisor's sign. It panics with ErrDivisionByZero if y is zero.
func (x Rat) Mod(y Rat) Rat {
	return x.Sub(y.Mul64(x.FloorDiv(y)))
}

func (x Rat) Mod64(n int64) Rat { return x.Mod(FromInt64(n)) }

// Pow returns x raised to the integer power n. Pow(0) is One for every x,
// zero included. A negative n inverts first, so a zero base panics with
// ErrDivisionByZero.
func (x Rat) Pow(n int64) Rat {
	if n == 0 {
		return One
	}
	m := uint64(n)
	if n < 0 {
		x = x.Inv()
		m = uint64(-(n+1)) + 1
	}
	num, den := int64(1), int64(1)
	bn, bd := x.num, x.Den()
	for ; m > 0; m >>= 1 {
		if m&1 == 1 {
			num *= bn
			den *= bd
		}
		bn *= bn
		bd *= bd
	}
	return norm(num, den)
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	return Rat{num: -x.num, den: x.den}
}

// Abs returns x with the sign stripped.
func (x Rat) Abs() Rat {
	return Rat{num: abs(x.num), den: x.den}
}

// Inv returns 1/x without re-reducing: the swapped components are already
// coprime. It panics with ErrDivisionByZero if x is zero.
func (x Rat) Inv() Rat {
	if x.num == 0 {
		panic(ErrDivisionByZero)
	}
	return Rat{num: int64(sgn(x.num)) * x.Den(), den: abs(x.num) - 1}
}

// Cmp compares x and y exactly, returning -1, 0 or +1. The comparison is an
// integer cross product, never a float.
func (x Rat) Cmp(y Rat) int {
	return sgn(x.num*y.Den() - y.num*x.Den())
}

func (x Rat) Cmp64(n int64) int { return x.Cmp(FromInt64(n)) }

// Equal reports whether x and y are the same rational. Canonical form is
// unique, so this is plain struct equality.
func (x Rat) Equal(y Rat) bool { return x == y }

func (x Rat) Equal64(n int64) bool { return x == FromInt64(n) }

func (x Rat) LessThan(y Rat) bool             { return x.Cmp(y) < 0 }
func (x Rat) LessThan64(n int64) bool         { return x.Cmp64(n) < 0 }
func (x Rat) LessOrEqualTo(y Rat) bool        { return x.Cmp(y) <= 0 }
func (x Rat) LessOrEqualTo64(n int64) bool    { return x.Cmp64(n) <= 0 }
func (x Rat) GreaterThan(y Rat) bool          { return x.Cmp(y) > 0 }
func (x Rat) GreaterThan64(n int64) bool      { return x.Cmp64(n) > 0 }
func (x Rat) GreaterOrEqualTo(y Rat) bool     { return x.Cmp(y) >= 0 }
func (x Rat) GreaterOrEqualTo64(n int64) bool { return x.Cmp64(n) >= 0 }

// Float64 returns the quotient as a float64.
func (x Rat) Float64() float64 {
	return float64(x.num) / float64(x.Den())
}

// Int64 returns the integer part, truncating toward zero: 7/2 becomes 3 and
// -7/2 becomes -3.
func (x Rat) Int64() int64 {
	return x.num / x.Den()
}

// String renders the canonical "num/den" form. The denominator is always
// present, "3/1" included, so the output round-trips through Parse.
func (x Rat) String() string {
	return fmt.Sprintf("%d/%d", x.num, x.Den())
}

// GoString renders a constructor expression for %#v, which reads better
// than the raw biased fields.
func (x Rat) GoString() string {
	return fmt.Sprintf("rational.Must(%d, %d)", x.num, x.Den())
}

// Hash returns a 64-bit content hash of the canonical pair. Equal values
// hash equal. Go maps do not need this (Rat is comparable); it exists for
// external hashed containers.
func (x Rat) Hash() uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], uint64(x.num))
	binary.LittleEndian.PutUint64(b[8:], uint64(x.Den()))
	return xxhash.Sum64(b[:])
}

// Sign returns -1, 0 or +1 by the sign of x.
func (x Rat) Sign() int { return sgn(x.num) }

// IsZero reports whether x is exactly zero.
func (x Rat) IsZero() bool { return x.num == 0 }

// IsInt reports whether x is a whole number.
func (x Rat) IsInt() bool { return x.den == 0 }

// IsProper reports whether the magnitude of x is below one. Zero is proper.
func (x Rat) IsProper() bool { return abs(x.num) < x.Den() }

// IsImproper reports whether the magnitude of x is one or more.
func (x Rat) IsImproper() bool { return !x.IsProper() }

// Simplify returns x unchanged. Every Rat is already in lowest terms; the
// method exists for surface parity with fraction types that reduce lazily.
func (x Rat) Simplify() Rat { return x }

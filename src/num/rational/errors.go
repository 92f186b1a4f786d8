package rational

import "errors"

var (
	// ErrZeroDenominator is returned (or panicked, from Must) when a
	// construction site asks for a denominator of zero.
	ErrZeroDenominator = errors.New("rational: denominator cannot be zero")

	// ErrDivisionByZero is the panic value of Quo, FloorDiv, Mod, Inv and
	// negative Pow when the divisor or base is exactly zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNonFinite is returned by FromFloat64 for NaN and the infinities.
	ErrNonFinite = errors.New("rational: non-finite float")

	// ErrOutOfRange is returned when a parsed or converted value does not
	// fit the int64 numerator/denominator backing.
	ErrOutOfRange = errors.New("rational: value out of range")

	// ErrInvalidFormat is returned by Parse and ParseDecimal for input
	// that does not scan as a rational, integer or decimal numeral.
	ErrInvalidFormat = errors.New("rational: invalid format")
)

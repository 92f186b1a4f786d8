package rational

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b. The result is never
// negative, GCD(0, n) == |n| and GCD(0, 0) == 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sgn[T constraints.Signed](v T) int {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

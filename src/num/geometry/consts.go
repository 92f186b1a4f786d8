package geometry

import "math"

const (
	// Epsilon is the coincidence tolerance: point equality, containment
	// and perpendicularity checks resolve at this scale.
	Epsilon = 1e-9

	// DegenerateEpsilon is the structural tolerance for vertical,
	// horizontal and parallelism tests, which accumulate less drift.
	DegenerateEpsilon = 1e-12
)

// isClose is the symmetric closeness test: a and b differ by at most relTol
// of the larger magnitude, or by absTol near zero.
func isClose(a, b, relTol, absTol float64) bool {
	return math.Abs(a-b) <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
}

package geometry

import "quotient/src/num/rational"

// PointFromRat builds a point from exact rational coordinates. This is the
// one bridge between the exact layer and this one; precision is float64
// from here on.
func PointFromRat(x, y rational.Rat) Point {
	return Point{x.Float64(), y.Float64()}
}

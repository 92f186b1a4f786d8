package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Line is a line in implicit form: the points satisfying A*x + B*y + C = 0.
// The all-zero form is degenerate; constructors produce it only from
// coincident inputs, and each operation below states how it treats it.
type Line struct {
	A float64
	B float64
	C float64
}

// LineFromPoints returns the line through p and q. Coincident points give
// the degenerate all-zero line.
func LineFromPoints(p, q Point) Line {
	return Line{
		A: p.Y - q.Y,
		B: q.X - p.X,
		C: p.X*q.Y - q.X*p.Y,
	}
}

// IsDegenerate reports whether both direction coefficients are near zero,
// so the form does not describe a line.
func (ln Line) IsDegenerate() bool {
	return math.Abs(ln.A) < DegenerateEpsilon && math.Abs(ln.B) < DegenerateEpsilon
}

// Slope returns dy/dx and whether it exists; vertical and degenerate forms
// have none.
func (ln Line) Slope() (float64, bool) {
	if math.Abs(ln.B) < DegenerateEpsilon {
		return 0, false
	}
	return -ln.A / ln.B, true
}

func (ln Line) IsVertical() bool {
	return !ln.IsDegenerate() && math.Abs(ln.B) < DegenerateEpsilon
}

func (ln Line) IsHorizontal() bool {
	return !ln.IsDegenerate() && math.Abs(ln.A) < DegenerateEpsilon
}

// eval returns the signed form value A*x + B*y + C at p.
func (ln Line) eval(p Point) float64 {
	return ln.A*p.X + ln.B*p.Y + ln.C
}

// ContainsPoint reports whether p lies on the line, within Epsilon of the
// form value. The all-zero form contains every point.
func (ln Line) ContainsPoint(p Point) bool {
	return math.Abs(ln.eval(p)) <= Epsilon
}

// DistanceTo returns the perpendicular distance from p to the line, NaN
// for a degenerate form.
func (ln Line) DistanceTo(p Point) float64 {
	if ln.IsDegenerate() {
		return math.NaN()
	}
	return math.Abs(ln.eval(p)) / math.Hypot(ln.A, ln.B)
}

// IsParallelTo reports whether the directions agree: the normals' cross
// product A1*B2 - A2*B1 vanishes. Coincident lines count as parallel.
func (ln Line) IsParallelTo(m Line) bool {
	return isClose(ln.A*m.B, m.A*ln.B, Epsilon, DegenerateEpsilon)
}

// IsPerpendicularTo reports whether the normals are orthogonal.
func (ln Line) IsPerpendicularTo(m Line) bool {
	return math.Abs(ln.A*m.A+ln.B*m.B) <= Epsilon
}

// Intersection returns the crossing point of two lines. ok is false for
// parallel or degenerate forms, where no single crossing exists.
func (ln Line) Intersection(m Line) (Point, bool) {
	det := ln.A*m.B - m.A*ln.B
	if math.Abs(det) < DegenerateEpsilon {
		return Point{}, false
	}
	return Point{
		X: (ln.B*m.C - m.B*ln.C) / det,
		Y: (m.A*ln.C - ln.A*m.C) / det,
	}, true
}

// ProjectPoint returns the foot of the perpendicular from p, the nearest
// point of the line. Degenerate forms project to NaN coordinates.
func (ln Line) ProjectPoint(p Point) Point {
	if ln.IsDegenerate() {
		return Point{math.NaN(), math.NaN()}
	}
	t := ln.eval(p) / (ln.A*ln.A + ln.B*ln.B)
	return Point{p.X - ln.A*t, p.Y - ln.B*t}
}

// Angle returns the direction angle of the line in radians, measured from
// the positive x axis, in (-pi, pi].
func (ln Line) Angle() float64 {
	return math.Atan2(-ln.A, ln.B)
}

// UnitNormal returns the unit vector perpendicular to the line, pointing
// where the form value grows. Degenerate forms give NaN coordinates.
func (ln Line) UnitNormal() Point {
	if ln.IsDegenerate() {
		return Point{math.NaN(), math.NaN()}
	}
	n := math.Hypot(ln.A, ln.B)
	return Point{ln.A / n, ln.B / n}
}

// OffsetBy returns the parallel line at signed distance d along the unit
// normal.
func (ln Line) OffsetBy(d float64) Line {
	return Line{ln.A, ln.B, ln.C - d*math.Hypot(ln.A, ln.B)}
}

// ParallelThrough returns the line parallel to ln passing through p.
func (ln Line) ParallelThrough(p Point) Line {
	return Line{ln.A, ln.B, -(ln.A*p.X + ln.B*p.Y)}
}

// PerpendicularThrough returns the line perpendicular to ln through p.
func (ln Line) PerpendicularThrough(p Point) Line {
	return Line{ln.B, -ln.A, -(ln.B*p.X - ln.A*p.Y)}
}

// String renders the equation form: "2x + 6y + 6 = 0", "x - 6y + 12 = 0",
// "y = 0", and "0 = 0" for the all-zero line. Zero terms drop out and unit
// coefficients render bare.
func (ln Line) String() string {
	var b strings.Builder
	writeTerm(&b, ln.A, "x")
	writeTerm(&b, ln.B, "y")
	writeTerm(&b, ln.C, "")
	if b.Len() == 0 {
		return "0 = 0"
	}
	b.WriteString(" = 0")
	return b.String()
}

func writeTerm(b *strings.Builder, coeff float64, variable string) {
	if coeff == 0 {
		return
	}
	neg := coeff < 0
	switch {
	case b.Len() == 0 && neg:
		b.WriteString("-")
	case b.Len() > 0 && neg:
		b.WriteString(" - ")
	case b.Len() > 0:
		b.WriteString(" + ")
	}
	mag := math.Abs(coeff)
	if variable == "" || mag != 1 {
		b.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))
	}
	b.WriteString(variable)
}

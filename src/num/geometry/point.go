package geometry

import (
	"fmt"
	"math"
)

// Point is a position in the plane. It doubles as a 2D vector, so the
// vector operations live here too.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Mul scales both coordinates by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the 3D cross product, positive when q
// lies counterclockwise of p.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) LengthSq() float64 { return p.X*p.X + p.Y*p.Y }

// Normalize returns the unit vector in p's direction. The zero vector has
// no direction and comes back unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated a quarter turn counterclockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Angle returns the signed angle from p to q in radians, in (-pi, pi].
func (p Point) Angle(q Point) float64 {
	return math.Atan2(p.Cross(q), p.Dot(q))
}

// Rotate returns p rotated by angle radians about the origin,
// counterclockwise for positive angles.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// RotateAbout returns p rotated by angle radians about center.
func (p Point) RotateAbout(angle float64, center Point) Point {
	return p.Sub(center).Rotate(angle).Add(center)
}

// ApproxEqual reports whether p and q coincide within Epsilon, relative to
// their magnitudes or absolutely near zero.
func (p Point) ApproxEqual(q Point) bool {
	return isClose(p.X, q.X, Epsilon, Epsilon) && isClose(p.Y, q.Y, Epsilon, Epsilon)
}

func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

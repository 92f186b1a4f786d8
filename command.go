package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli/v2"

	"quotient/src/num/geometry"
	"quotient/src/num/rational"
)

func calcCmd(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: calc LHS OP RHS", 1)
	}
	lhs, err := rational.Parse(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	rhs, err := rational.Parse(c.Args().Get(2))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	op := c.Args().Get(1)
	if rhs.IsZero() {
		switch op {
		case "/", "//", "%":
			return cli.Exit(rational.ErrDivisionByZero.Error(), 1)
		}
	}
	switch op {
	case "+":
		fmt.Println(lhs.Add(rhs))
	case "-":
		fmt.Println(lhs.Sub(rhs))
	case "x", "*":
		fmt.Println(lhs.Mul(rhs))
	case "/":
		fmt.Println(lhs.Quo(rhs))
	case "//":
		fmt.Println(lhs.FloorDiv(rhs))
	case "%":
		fmt.Println(lhs.Mod(rhs))
	case "cmp":
		fmt.Println(lhs.Cmp(rhs))
	default:
		return cli.Exit(fmt.Sprintf("unknown operator %q", op), 1)
	}
	return nil
}

func approxCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: approx VALUE", 1)
	}
	v, err := strconv.ParseFloat(c.Args().Get(0), 64)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	x, err := rational.FromFloat64(v, c.Int64("max-den"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Printf("rational:\t%s\n", x)
	fmt.Printf("value:\t%v\n", x.Float64())
	fmt.Printf("error:\t%g\n", math.Abs(x.Float64()-v))
	return nil
}

func mixedCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: mixed RAT", 1)
	}
	x, err := rational.Parse(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	m := x.Mixed()
	fmt.Printf("rational:\t%s\n", x)
	fmt.Printf("mixed:\t%s\n", m)
	fmt.Printf("whole:\t%d\n", m.Whole)
	fmt.Printf("remainder:\t%d/%d\n", m.Num, m.Den)
	return nil
}

func demoCmd(c *cli.Context) error {
	section("construction")
	a := rational.Must(6, 8)
	b := rational.Must(-9, 6)
	fmt.Printf("6/8 normalizes to %s\n", a)
	fmt.Printf("-9/6 normalizes to %s\n", b)
	fmt.Printf("2/-4 normalizes to %s\n", rational.Must(2, -4))
	fmt.Printf("0/7 normalizes to %s\n", rational.Must(0, 7))

	section("arithmetic")
	fmt.Printf("%s + %s = %s\n", a, b, a.Add(b))
	fmt.Printf("%s - %s = %s\n", a, b, a.Sub(b))
	fmt.Printf("%s x %s = %s\n", a, b, a.Mul(b))
	fmt.Printf("%s / %s = %s\n", a, b, a.Quo(b))
	fmt.Printf("%s // %s = %d\n", a, b, a.FloorDiv(b))
	fmt.Printf("%s %% %s = %s\n", a, b, a.Mod(b))
	fmt.Printf("%s ^ 3 = %s\n", a, a.Pow(3))
	fmt.Printf("%s ^ -2 = %s\n", a, a.Pow(-2))

	section("comparison")
	fmt.Printf("%s < %s: %t\n", b, a, b.LessThan(a))
	fmt.Printf("cmp(%s, %s) = %d\n", a, b, a.Cmp(b))
	fmt.Printf("1/2 == 2/4: %t\n", rational.Must(1, 2).Equal(rational.Must(2, 4)))

	section("conversion")
	fmt.Printf("float(%s) = %v\n", a, a.Float64())
	fmt.Printf("int(-7/2) = %d\n", rational.Must(-7, 2).Int64())
	fmt.Printf("%s is proper: %t\n", a, a.IsProper())
	fmt.Printf("hash(%s) = %#x\n", a, a.Hash())

	section("mixed numbers")
	x := rational.Must(7, 3)
	fmt.Printf("%s as mixed: %s\n", x, x.Mixed())
	fmt.Printf("%s as mixed: %s\n", x.Neg(), x.Neg().Mixed())
	back, _ := rational.FromMixed(-2, 1, 3)
	fmt.Printf("-2 and 1/3 recomposes to %s\n", back)

	section("decimal and float")
	d, _ := rational.ParseDecimal("3.25")
	fmt.Printf("3.25 is exactly %s\n", d)
	pi, _ := rational.FromFloat64(math.Pi, 1000)
	fmt.Printf("pi within 1/1000: %s = %v\n", pi, pi.Float64())

	section("geometry")
	p := geometry.Point{X: 0, Y: 0}
	q := geometry.Point{X: 4, Y: 0}
	r := geometry.Point{X: 0, Y: 6}
	m1 := geometry.LineFromPoints(p, q.Midpoint(r))
	m2 := geometry.LineFromPoints(q, p.Midpoint(r))
	if centroid, ok := m1.Intersection(m2); ok {
		fmt.Printf("triangle %v %v %v has centroid %v\n", p, q, r, centroid)
		exact := geometry.PointFromRat(rational.Must(4, 3), rational.Must(2, 1))
		fmt.Printf("matches the exact centroid %v: %t\n", exact, centroid.ApproxEqual(exact))
	}
	edge := geometry.LineFromPoints(q, r)
	fmt.Printf("edge through %v and %v: %s\n", q, r, edge)
	fmt.Printf("distance from %v to it: %g\n", p, edge.DistanceTo(p))
	return nil
}

func section(name string) {
	fmt.Printf("\n== %s ==\n", name)
}

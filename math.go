package aoc

import "golang.org/x/exp/constraints"

// DigitsIn returns the decimal digits found in line, skipping every other
// rune.
func DigitsIn(line string) []int {
	var in []int
	for _, c := range line {
		if '0' <= c && c <= '9' {
			in = append(in, int(c-'0'))
		}
	}
	return in
}

// Undigits returns the base-10 number whose digits are ds.
func Undigits(ds []int) int {
	n := 0
	for _, d := range ds {
		n = n*10 + d
	}
	return n
}

// NumDigits returns the number of decimal digits in n, ignoring its sign.
func NumDigits[T constraints.Integer](n T) int {
	if n < 0 {
		n = -n
	}
	c := 1
	for n >= 10 {
		n /= 10
		c++
	}
	return c
}

// Pow10 returns 10**n.
func Pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// GCD returns the greatest common divisor of a and b. The result is never
// negative.
func GCD(a, b int) int {
	a, b = AbsDiff(a, 0), AbsDiff(b, 0)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	var p T = 1
	for _, v := range nums {
		p *= v
	}
	return p
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// PointInPolygon reports whether p lies strictly inside the polygon pts
// (implicitly closed), by ray casting towards +x. Points on the boundary
// may go either way.
func PointInPolygon(p Pt, pts []Pt) bool {
	inside := false
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Cross reports whether the segments properly cross: each one's endpoints
// lie strictly on opposite sides of the other. Segments sharing an endpoint
// never cross.
func (s Segment) Cross(o Segment) bool {
	if s.A == o.A || s.A == o.B || s.B == o.A || s.B == o.B {
		return false
	}
	ccw := func(a, b, c Pt) int {
		return (c.Y-a.Y)*(b.X-a.X) - (b.Y-a.Y)*(c.X-a.X)
	}
	d1 := ccw(o.A, o.B, s.A)
	d2 := ccw(o.A, o.B, s.B)
	d3 := ccw(s.A, s.B, o.A)
	d4 := ccw(s.A, s.B, o.B)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

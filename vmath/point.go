package vmath

import "math"

// Epsilon is the tolerance used by orientation and containment tests
const Epsilon = 1e-9

// Point is a 2D coordinate in arena pixels
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// --- Arithmetic ---

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Perp returns p rotated by +90°
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Translate returns p moved by (dx, dy)
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rotated returns p rotated about the origin by deg degrees
// x' = x·cosθ − y·sinθ, y' = x·sinθ + y·cosθ
func (p Point) Rotated(deg float64) Point {
	sin, cos := math.Sincos(Radians(deg))
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// ApproxEqual reports whether both coordinates differ by at most eps
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// --- Angles ---

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Heading returns the unit vector (cos θ, sin θ) for an angle in degrees
func Heading(deg float64) Point {
	sin, cos := math.Sincos(Radians(deg))
	return Point{X: cos, Y: sin}
}

// ClampF restricts val to [lo, hi]
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

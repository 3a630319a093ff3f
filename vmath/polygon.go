package vmath

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices is returned when a shape has fewer than 3 vertices
var ErrTooFewVertices = errors.New("polygon requires at least 3 vertices")

// Polygon is a fixed local-frame shape with a mutable pose
// Vertex count is fixed at construction; only position and rotation change
type Polygon struct {
	local    []Point
	position Point
	rotation float64 // Degrees, unbounded
	convex   bool    // Cached from local vertices, pose-invariant
}

// NewPolygon copies local and returns a polygon placed at position with rotation in degrees
func NewPolygon(local []Point, position Point, rotation float64) (*Polygon, error) {
	if len(local) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(local))
	}

	pts := make([]Point, len(local))
	copy(pts, local)

	return &Polygon{
		local:    pts,
		position: position,
		rotation: rotation,
		convex:   IsConvex(pts),
	}, nil
}

// MustPolygon is NewPolygon for compile-time constant shapes, panics on invalid input
func MustPolygon(local []Point, position Point, rotation float64) *Polygon {
	p, err := NewPolygon(local, position, rotation)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the vertex count
func (p *Polygon) Len() int {
	return len(p.local)
}

// Local returns a copy of the local-frame vertices
func (p *Polygon) Local() []Point {
	out := make([]Point, len(p.local))
	copy(out, p.local)
	return out
}

// Convex reports whether the shape is convex
func (p *Polygon) Convex() bool {
	return p.convex
}

func (p *Polygon) Position() Point {
	return p.position
}

func (p *Polygon) SetPosition(pos Point) {
	p.position = pos
}

func (p *Polygon) Rotation() float64 {
	return p.rotation
}

func (p *Polygon) SetRotation(deg float64) {
	p.rotation = deg
}

// Move translates the position by (dx, dy)
func (p *Polygon) Move(dx, dy float64) {
	p.position = p.position.Translate(dx, dy)
}

// Rotate adds deg to the rotation
func (p *Polygon) Rotate(deg float64) {
	p.rotation += deg
}

// WorldVertices returns local vertices rotated by the current rotation then translated by position
// Computed on every call so pose changes are always reflected
func (p *Polygon) WorldVertices() []Point {
	out := make([]Point, len(p.local))
	for i, v := range p.local {
		out[i] = v.Rotated(p.rotation).Add(p.position)
	}
	return out
}

// Centroid returns the vertex average in world space
func (p *Polygon) Centroid() Point {
	return Centroid(p.WorldVertices())
}

// Centroid returns the vertex average of pts, zero for an empty slice
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, v := range pts {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// Bounds returns the world-space bounding box
func (p *Polygon) Bounds() AABB {
	return BoundsOf(p.WorldVertices())
}

// Contains reports whether pt lies inside the polygon in world space
func (p *Polygon) Contains(pt Point) bool {
	return ContainsPoint(p.WorldVertices(), pt)
}

// Intersects reports whether the two polygons overlap or touch in world space, or one contains the other
// Symmetric: a.Intersects(b) == b.Intersects(a)
func (p *Polygon) Intersects(other *Polygon) bool {
	return PolygonsIntersect(p.WorldVertices(), other.WorldVertices(), p.convex && other.convex)
}

// IsConvex reports whether the vertex ring turns in one direction only
// Collinear runs are ignored
func IsConvex(pts []Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}

	sign := 0
	for i := 0; i < n; i++ {
		a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cross > Epsilon:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < -Epsilon:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return sign != 0
}

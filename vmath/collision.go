package vmath

// AABB is an axis-aligned bounding box, edges inclusive
type AABB struct {
	Min, Max Point
}

// BoundsOf returns the bounding box of pts, zero box for empty input
func BoundsOf(pts []Point) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	box := AABB{Min: pts[0], Max: pts[0]}
	for _, v := range pts[1:] {
		if v.X < box.Min.X {
			box.Min.X = v.X
		}
		if v.Y < box.Min.Y {
			box.Min.Y = v.Y
		}
		if v.X > box.Max.X {
			box.Max.X = v.X
		}
		if v.Y > box.Max.Y {
			box.Max.Y = v.Y
		}
	}
	return box
}

// Overlaps reports whether the boxes share any point
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X+Epsilon && b.Min.X <= a.Max.X+Epsilon &&
		a.Min.Y <= b.Max.Y+Epsilon && b.Min.Y <= a.Max.Y+Epsilon
}

// Clamp returns pt restricted to the box
func (a AABB) Clamp(pt Point) Point {
	return Point{
		X: ClampF(pt.X, a.Min.X, a.Max.X),
		Y: ClampF(pt.Y, a.Min.Y, a.Max.Y),
	}
}

// ContainsPoint reports whether pt is inside the box
func (a AABB) ContainsPoint(pt Point) bool {
	return pt.X >= a.Min.X && pt.X <= a.Max.X && pt.Y >= a.Min.Y && pt.Y <= a.Max.Y
}

// PolygonsIntersect tests two world-space vertex rings for overlap
// Touching boundaries count as overlap, as does full containment
// convex selects the separating axis path; otherwise the exact simple-polygon test is used
func PolygonsIntersect(a, b []Point, convex bool) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if !BoundsOf(a).Overlaps(BoundsOf(b)) {
		return false
	}
	if convex {
		return !separatedOnAxes(a, b) && !separatedOnAxes(b, a)
	}

	// Both argument orders keep the result symmetric under floating point
	if edgesCross(a, b) || edgesCross(b, a) {
		return true
	}

	// No boundary contact: either disjoint or one ring lies wholly inside the other
	return ContainsPoint(b, a[0]) || ContainsPoint(a, b[0])
}

// separatedOnAxes checks the edge normals of src as candidate separating axes
func separatedOnAxes(src, other []Point) bool {
	n := len(src)
	for i := 0; i < n; i++ {
		axis := src[(i+1)%n].Sub(src[i]).Perp()
		if axis.X == 0 && axis.Y == 0 {
			continue
		}
		minA, maxA := project(src, axis)
		minB, maxB := project(other, axis)
		// Scale tolerance with axis length since the axis is not normalized
		tol := Epsilon * (1 + axis.Dot(axis))
		if maxA < minB-tol || maxB < minA-tol {
			return true
		}
	}
	return false
}

func project(pts []Point, axis Point) (lo, hi float64) {
	lo = pts[0].Dot(axis)
	hi = lo
	for _, v := range pts[1:] {
		d := v.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// edgesCross reports whether any edge of a meets any edge of b
func edgesCross(a, b []Point) bool {
	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		p1, p2 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			if SegmentsIntersect(p1, p2, b[j], b[(j+1)%nb]) {
				return true
			}
		}
	}
	return false
}

// SegmentsIntersect reports whether segments p1p2 and q1q2 share a point
// Includes endpoint contact and collinear overlap
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}

// orientation returns the turn direction of a→b→c: 1 ccw, -1 cw, 0 collinear
func orientation(a, b, c Point) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > Epsilon:
		return 1
	case v < -Epsilon:
		return -1
	}
	return 0
}

// onSegment assumes c is collinear with ab and checks it lies within the segment extent
func onSegment(a, b, c Point) bool {
	return c.X >= min(a.X, b.X)-Epsilon && c.X <= max(a.X, b.X)+Epsilon &&
		c.Y >= min(a.Y, b.Y)-Epsilon && c.Y <= max(a.Y, b.Y)+Epsilon
}

// ContainsPoint reports whether pt is inside the ring using even-odd ray casting
// Points exactly on the boundary may report either way
func ContainsPoint(ring []Point, pt Point) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

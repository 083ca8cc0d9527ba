package geom

import "math"

// DefaultFlattenTolerance is the maximum allowed deflection, in
// millimeters, between a control point and the chord it is subdivided
// against before flattening stops recursing.
const DefaultFlattenTolerance = 0.5

// MaxFlattenDepth bounds de Casteljau recursion so a degenerate curve
// (coincident control points forming a cusp the deflection test never
// satisfies) cannot recurse unboundedly.
const MaxFlattenDepth = 24

func tol(tolerance float64) float64 {
	if tolerance <= 0 {
		return DefaultFlattenTolerance
	}
	return tolerance
}

// pointLineDistance returns the perpendicular distance from p to the
// infinite line through a and b (or the distance to a, if a == b).
func pointLineDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		return p.Distance(a)
	}
	return math.Abs(ab.Cross(p.Sub(a))) / length
}

// Flatten reduces the path to a single polyline stream. Each MoveTo
// restarts the stream with its point; Close appends the subpath's start
// point unless the current point already coincides with it.
func (p *VectorPath) Flatten(tolerance float64) []Point {
	var pts []Point
	p.flattenInto(tolerance, func(pt Point) { pts = append(pts, pt) })
	return pts
}

func (p *VectorPath) flattenInto(tolerance float64, emit func(Point)) {
	t := tol(tolerance)
	var current, start Point
	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			emit(c.Point)
			current, start = c.Point, c.Point
		case LineTo:
			emit(c.Point)
			current = c.Point
		case QuadTo:
			flattenQuad(current, c.Ctrl, c.Point, t, 0, emit)
			current = c.Point
		case CubicTo:
			flattenCubic(current, c.C1, c.C2, c.Point, t, 0, emit)
			current = c.Point
		case Close:
			if current != start {
				emit(start)
			}
			current = start
		}
	}
}

// FlattenSubpaths splits the path at each MoveTo/Close boundary and
// returns the flattened points of every subpath as its own ring. A
// subpath closed with Close has its first point duplicated at the end.
func (p *VectorPath) FlattenSubpaths(tolerance float64) [][]Point {
	t := tol(tolerance)
	var rings [][]Point
	var ring []Point
	var current, start Point
	flush := func() {
		if len(ring) > 0 {
			rings = append(rings, ring)
			ring = nil
		}
	}
	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			flush()
			ring = append(ring, c.Point)
			current, start = c.Point, c.Point
		case LineTo:
			ring = append(ring, c.Point)
			current = c.Point
		case QuadTo:
			flattenQuad(current, c.Ctrl, c.Point, t, 0, func(pt Point) { ring = append(ring, pt) })
			current = c.Point
		case CubicTo:
			flattenCubic(current, c.C1, c.C2, c.Point, t, 0, func(pt Point) { ring = append(ring, pt) })
			current = c.Point
		case Close:
			if current != start {
				ring = append(ring, start)
			}
			current = start
			flush()
		}
	}
	flush()
	return rings
}

// BoundingBox returns the AABB of the path's flattened polyline.
func (p *VectorPath) BoundingBox(tolerance float64) Rect {
	box := EmptyRect()
	for _, pt := range p.Flatten(tolerance) {
		box = box.UnionPoint(pt)
	}
	return box
}

// ContainsPoint reports whether pt lies inside the path using even-odd
// ray casting against the flattened polyline. Only closed paths can
// contain a point; an open path always returns false.
func (p *VectorPath) ContainsPoint(pt Point, tolerance float64) bool {
	if !p.Closed {
		return false
	}
	return PointInRings(pt, p.FlattenSubpaths(tolerance))
}

// PointInRings reports whether pt is inside the region described by
// rings using even-odd parity across every ring's crossings. Ring
// winding direction does not matter for a parity test.
func PointInRings(pt Point, rings [][]Point) bool {
	inside := false
	for _, ring := range rings {
		if pointInRingEvenOdd(pt, ring) {
			inside = !inside
		}
	}
	return inside
}

// pointInRingEvenOdd implements the standard even-odd ray-casting test
// against a (possibly open) polyline ring, treating it as closed.
func pointInRingEvenOdd(pt Point, ring []Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func flattenQuad(p0, ctrl, p2 Point, tolerance float64, depth int, emit func(Point)) {
	if depth >= MaxFlattenDepth || pointLineDistance(ctrl, p0, p2) <= tolerance {
		emit(p2)
		return
	}
	p01 := p0.Lerp(ctrl, 0.5)
	p12 := ctrl.Lerp(p2, 0.5)
	mid := p01.Lerp(p12, 0.5)
	flattenQuad(p0, p01, mid, tolerance, depth+1, emit)
	flattenQuad(mid, p12, p2, tolerance, depth+1, emit)
}

func flattenCubic(p0, c1, c2, p3 Point, tolerance float64, depth int, emit func(Point)) {
	d1 := pointLineDistance(c1, p0, p3)
	d2 := pointLineDistance(c2, p0, p3)
	if depth >= MaxFlattenDepth || (d1 <= tolerance && d2 <= tolerance) {
		emit(p3)
		return
	}
	// De Casteljau subdivision at t=0.5.
	p01 := p0.Lerp(c1, 0.5)
	p12 := c1.Lerp(c2, 0.5)
	p23 := c2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	flattenCubic(p0, p01, p012, mid, tolerance, depth+1, emit)
	flattenCubic(mid, p123, p23, p3, tolerance, depth+1, emit)
}

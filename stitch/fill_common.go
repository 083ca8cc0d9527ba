package stitch

import (
	"math"

	"github.com/gogpu/stitchengine/geom"
)

// Rings is a normalized ring set: Outer is forced counterclockwise and
// is the largest-by-area ring; Holes are the remaining rings, in
// whatever orientation flattening produced.
type Rings struct {
	Outer []geom.Point
	Holes [][]geom.Point
}

// All returns Outer followed by every hole, the representation the
// parity inside-test and the fill generators both want.
func (r Rings) All() [][]geom.Point {
	all := make([][]geom.Point, 0, 1+len(r.Holes))
	all = append(all, r.Outer)
	all = append(all, r.Holes...)
	return all
}

// Contains reports whether pt is inside the ring set by even-odd parity.
func (r Rings) Contains(pt geom.Point) bool {
	return geom.PointInRings(pt, r.All())
}

// NormalizeRings extracts and normalizes the ring set a fill generator
// operates on: drop degenerate rings, close every ring, promote the
// largest-area ring to Outer in CCW order. Returns ok=false if no usable
// ring survives.
func NormalizeRings(path *geom.VectorPath, tolerance float64) (Rings, bool) {
	raw := path.FlattenSubpaths(tolerance)
	var kept [][]geom.Point
	var areas []float64
	for _, ring := range raw {
		ring = closeRing(ring)
		if len(ring) < 3 {
			continue
		}
		area := signedArea(ring)
		if math.Abs(area) <= 1e-6 {
			continue
		}
		kept = append(kept, ring)
		areas = append(areas, area)
	}
	if len(kept) == 0 {
		return Rings{}, false
	}

	outerIdx := 0
	for i := 1; i < len(kept); i++ {
		if math.Abs(areas[i]) > math.Abs(areas[outerIdx]) {
			outerIdx = i
		}
	}
	outer := kept[outerIdx]
	if areas[outerIdx] < 0 {
		outer = reverseRing(outer)
	}

	var holes [][]geom.Point
	for i, ring := range kept {
		if i != outerIdx {
			holes = append(holes, ring)
		}
	}
	return Rings{Outer: outer, Holes: holes}, true
}

func closeRing(ring []geom.Point) []geom.Point {
	if len(ring) == 0 {
		return ring
	}
	if ring[0] != ring[len(ring)-1] {
		out := make([]geom.Point, len(ring)+1)
		copy(out, ring)
		out[len(ring)] = ring[0]
		return out
	}
	return ring
}

func reverseRing(ring []geom.Point) []geom.Point {
	out := make([]geom.Point, len(ring))
	for i, p := range ring {
		out[len(out)-1-i] = p
	}
	return out
}

// signedArea computes the shoelace signed area of a closed ring
// (positive = counterclockwise in a y-up frame).
func signedArea(ring []geom.Point) float64 {
	area := 0.0
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// centroid returns the area-weighted centroid of a closed ring, falling
// back to the vertex average for degenerate (near-zero-area) rings.
func centroid(ring []geom.Point) geom.Point {
	area := signedArea(ring)
	if math.Abs(area) <= 1e-9 {
		var sx, sy float64
		for _, p := range ring[:len(ring)-1] {
			sx += p.X
			sy += p.Y
		}
		n := float64(len(ring) - 1)
		return geom.Point{X: sx / n, Y: sy / n}
	}
	var cx, cy float64
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	factor := 1 / (6 * area)
	return geom.Point{X: cx * factor, Y: cy * factor}
}

// maxRadius returns the largest distance from center to any vertex of ring.
func maxRadius(ring []geom.Point, center geom.Point) float64 {
	r := 0.0
	for _, p := range ring {
		if d := p.Distance(center); d > r {
			r = d
		}
	}
	return r
}

// rotateRing rotates every point of ring around the origin by angle
// radians (used to align a fill's scan direction with params.Angle).
func rotateRing(ring []geom.Point, angle float64) []geom.Point {
	out := make([]geom.Point, len(ring))
	for i, p := range ring {
		out[i] = p.Rotate(angle)
	}
	return out
}

func bboxOf(rings [][]geom.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, ring := range rings {
		for _, p := range ring {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return
}

func densityOrMin(d float64) float64 {
	if d < MinDensity {
		return MinDensity
	}
	return d
}

// clipRuns splits points into maximal runs that lie inside rings,
// discarding points that fall outside (e.g. inside a hole).
func clipRuns(points []geom.Point, rings Rings) [][]geom.Point {
	var runs [][]geom.Point
	var current []geom.Point
	for _, p := range points {
		if rings.Contains(p) {
			current = append(current, p)
		} else if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

// emitRuns converts each run into running stitches, marking the first
// stitch of every run after the first overall emission as a jump (the
// discontinuity the run boundary represents).
func emitRuns(runs [][]geom.Point, density float64, emittedAny *bool) []Point {
	var out []Point
	for _, run := range runs {
		if len(run) < 2 {
			continue
		}
		samples := Running(run, density)
		if len(samples) == 0 {
			continue
		}
		if *emittedAny {
			samples[0].IsJump = true
		}
		*emittedAny = true
		out = append(out, samples...)
	}
	return out
}

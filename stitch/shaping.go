package stitch

import "github.com/gogpu/stitchengine/geom"

// ApplyShaping runs the post-fill shaping passes shared by the fill
// generators (and the running/satin fallback path): minimum segment
// filtering, trailing overlap, fill-start rotation, and an optional
// edge-walk traversal of the outer ring.
func ApplyShaping(pts []Point, rings Rings, params Params) []Point {
	pts = filterMinSegment(pts, params.MinSegmentMM)
	pts = appendOverlap(pts, params.OverlapMM)
	pts = rotateToFillStart(pts, rings, params.FillStartMode)
	pts = prependEdgeWalk(pts, rings, params)
	return pts
}

// filterMinSegment drops Normal stitches closer than minSegmentMM to the
// previously kept Normal stitch; Jump and Trim points always survive.
func filterMinSegment(pts []Point, minSegmentMM float64) []Point {
	if minSegmentMM <= 0 || len(pts) == 0 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	var last geom.Point
	haveLast := false
	for _, p := range pts {
		if p.IsJump || p.IsTrim {
			out = append(out, p)
			continue
		}
		if !haveLast || p.Point.Distance(last) >= minSegmentMM {
			out = append(out, p)
			last = p.Point
			haveLast = true
		}
	}
	return out
}

// appendOverlap extends the final segment by overlapMM, adding one extra
// stitch along the direction of the last segment.
func appendOverlap(pts []Point, overlapMM float64) []Point {
	if overlapMM <= 0 || len(pts) < 2 {
		return pts
	}
	last := pts[len(pts)-1]
	prev := pts[len(pts)-2]
	dir := last.Point.Sub(prev.Point).Normalize()
	if dir.Length() == 0 {
		return pts
	}
	extended := Normal(last.Point.Add(dir.Mul(overlapMM)))
	return append(pts, extended)
}

// rotateToFillStart rotates pts so index 0 is the stitch (of any kind,
// jumps and trims included) closest to (FillStartCenter) or farthest from
// (FillStartEdge) the outer ring's centroid. FillStartAuto leaves the order unchanged.
func rotateToFillStart(pts []Point, rings Rings, mode FillStartMode) []Point {
	if mode == FillStartAuto || len(pts) == 0 || len(rings.Outer) == 0 {
		return pts
	}
	center := centroid(rings.Outer)

	best := 0
	bestDist := pts[0].Point.Distance(center)
	for i, p := range pts {
		dist := p.Point.Distance(center)
		switch mode {
		case FillStartCenter:
			if dist < bestDist {
				best, bestDist = i, dist
			}
		case FillStartEdge:
			if dist > bestDist {
				best, bestDist = i, dist
			}
		}
	}
	if best == 0 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[best:]...)
	out = append(out, pts[:best]...)
	return out
}

// prependEdgeWalk, when params.EdgeWalkOnFill is set, prepends a
// running-stitch traversal of the outer ring ahead of pts and marks the
// original first fill stitch as a jump.
func prependEdgeWalk(pts []Point, rings Rings, params Params) []Point {
	if !params.EdgeWalkOnFill || len(rings.Outer) == 0 {
		return pts
	}
	density := densityOrMin(params.Density)
	edge := Running(rings.Outer, density)
	if len(edge) == 0 {
		return pts
	}
	out := make([]Point, 0, len(edge)+len(pts))
	for _, p := range edge {
		out = append(out, Normal(p.Point))
	}
	if len(pts) > 0 {
		pts[0].IsJump = true
	}
	return append(out, pts...)
}

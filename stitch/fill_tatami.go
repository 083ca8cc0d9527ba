package stitch

import (
	"math"
	"sort"

	"github.com/gogpu/stitchengine/geom"
)

// Tatami fills the path with parallel serpentine rows of running
// stitch.
func Tatami(path *geom.VectorPath, params Params) []Point {
	rings, ok := NormalizeRings(path, 0)
	if !ok {
		return nil
	}
	angle := params.Angle * math.Pi / 180
	rotated := rotateRingSet(rings, -angle)
	d := densityOrMin(params.Density)
	stagger := d / 2

	_, minY, _, maxY := bboxOf(rotated.All())

	var out []Point
	rowIndex := 0
	prevSingleSeg := false
	var prevRowEnd geom.Point

	for y := minY; y <= maxY; y += d {
		xs := rowIntersections(rotated.All(), y)
		if len(xs) == 0 {
			rowIndex++
			continue
		}
		sort.Float64s(xs)

		var segments [][2]float64
		for i := 0; i+1 < len(xs); i += 2 {
			segments = append(segments, [2]float64{xs[i], xs[i+1]})
		}
		if len(segments) == 0 {
			rowIndex++
			continue
		}

		reversed := rowIndex%2 == 1
		if reversed {
			for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
				segments[i], segments[j] = segments[j], segments[i]
			}
		}

		rowSingleSeg := len(segments) == 1
		for si, seg := range segments {
			start, end := seg[0], seg[1]
			if reversed {
				// Right-to-left row: trim the segment's start inward by
				// half a row spacing so alternating rows interlock.
				start, end = end, start
				start -= stagger
				if start <= end {
					continue
				}
			}
			line := []geom.Point{{X: start, Y: y}, {X: end, Y: y}}
			samples := Running(line, d)

			continuous := si == 0 && prevSingleSeg && rowSingleSeg &&
				math.Abs(start-prevRowEnd.X) < 1e-6
			if len(samples) > 0 && !continuous {
				samples[0].IsJump = true
			}
			out = append(out, samples...)
			if len(samples) > 0 {
				prevRowEnd = samples[len(samples)-1].Point
			}
		}
		prevSingleSeg = rowSingleSeg
		rowIndex++
	}

	return rotateStitches(out, angle)
}

// rowIntersections returns the sorted X coordinates where the horizontal
// line y=rowY crosses each ring's edges.
func rowIntersections(rings [][]geom.Point, rowY float64) []float64 {
	var xs []float64
	for _, ring := range rings {
		for i := 0; i+1 < len(ring); i++ {
			a, b := ring[i], ring[i+1]
			if (a.Y > rowY) == (b.Y > rowY) {
				continue
			}
			if a.Y == b.Y {
				continue
			}
			t := (rowY - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
	}
	return xs
}

func rotateRingSet(r Rings, angle float64) Rings {
	out := Rings{Outer: rotateRing(r.Outer, angle)}
	for _, h := range r.Holes {
		out.Holes = append(out.Holes, rotateRing(h, angle))
	}
	return out
}

func rotateStitches(pts []Point, angle float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{Point: p.Point.Rotate(angle), IsJump: p.IsJump, IsTrim: p.IsTrim}
	}
	return out
}

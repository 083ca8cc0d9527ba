package stitch

import (
	"math"

	"github.com/gogpu/stitchengine/geom"
)

// Motif fills the path by tiling a small repeated shape on a serpentine
// grid.
func Motif(path *geom.VectorPath, params Params) []Point {
	rings, ok := NormalizeRings(path, 0)
	if !ok {
		return nil
	}
	scale := params.MotifScale
	if scale <= 0 {
		scale = 1
	}
	d := densityOrMin(params.Density)
	spacing := math.Max(d*3*scale, 0.6)
	angle := params.Angle * math.Pi / 180

	minX, minY, maxX, maxY := bboxOf(rings.All())

	var out []Point
	emittedAny := false
	row := 0
	for y := minY; y <= maxY; y += spacing {
		cols := motifColumns(minX, maxX, spacing)
		if row%2 == 1 {
			for i, j := 0, len(cols)-1; i < j; i, j = i+1, j-1 {
				cols[i], cols[j] = cols[j], cols[i]
			}
		}
		for _, x := range cols {
			center := geom.Point{X: x, Y: y}
			if !rings.Contains(center) {
				continue
			}
			local := motifShape(params.MotifPattern, d*scale)
			shape := make([]geom.Point, len(local))
			for i, p := range local {
				shape[i] = center.Add(p.Rotate(angle))
			}
			samples := Running(shape, d)
			if len(samples) == 0 {
				continue
			}
			if emittedAny {
				samples[0].IsJump = true
			}
			emittedAny = true
			out = append(out, samples...)
		}
		row++
	}
	return out
}

func motifColumns(minX, maxX, spacing float64) []float64 {
	var xs []float64
	for x := minX; x <= maxX; x += spacing {
		xs = append(xs, x)
	}
	return xs
}

// motifShape returns a small local polyline centered on the origin for
// the requested pattern, sized by s (roughly one density unit).
func motifShape(pattern MotifPattern, s float64) []geom.Point {
	switch pattern {
	case MotifWave:
		return []geom.Point{
			{X: -s, Y: 0},
			{X: -s / 2, Y: -s / 2},
			{X: 0, Y: 0},
			{X: s / 2, Y: s / 2},
			{X: s, Y: 0},
		}
	case MotifTriangle:
		h := s * 0.8660254037844387
		return []geom.Point{
			{X: 0, Y: -s},
			{X: h, Y: s / 2},
			{X: -h, Y: s / 2},
			{X: 0, Y: -s},
		}
	default: // MotifDiamond
		return []geom.Point{
			{X: 0, Y: -s},
			{X: s, Y: 0},
			{X: 0, Y: s},
			{X: -s, Y: 0},
			{X: 0, Y: -s},
		}
	}
}

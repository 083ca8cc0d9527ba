package stitch

import "github.com/gogpu/stitchengine/geom"

// Contour fills the path with concentric loops shrinking from the outer
// ring toward its centroid.
func Contour(path *geom.VectorPath, params Params) []Point {
	rings, ok := NormalizeRings(path, 0)
	if !ok {
		return nil
	}
	center := centroid(rings.Outer)
	radius := maxRadius(rings.Outer, center)
	if radius <= 0 {
		return nil
	}
	step := params.ContourStepMM
	if step <= 0 {
		step = densityOrMin(params.Density)
	}
	density := densityOrMin(params.Density)

	var out []Point
	emittedAny := false
	for i := 0; ; i++ {
		factor := 1 - float64(i)*step/radius
		if factor <= 0.05 {
			break
		}
		loop := shrinkRing(rings.Outer, center, factor)
		runs := clipRuns(loop, rings)
		out = append(out, emitRuns(runs, density, &emittedAny)...)
	}
	return out
}

func shrinkRing(ring []geom.Point, center geom.Point, factor float64) []geom.Point {
	out := make([]geom.Point, len(ring))
	for i, p := range ring {
		out[i] = center.Add(p.Sub(center).Mul(factor))
	}
	return out
}

package stitch

import (
	"math"

	"github.com/gogpu/stitchengine/geom"
)

// maxSpiralSteps bounds the spiral's angular walk, guarding against
// runaway iteration on a degenerate (near-zero spacing) configuration.
const maxSpiralSteps = 25000

// Spiral fills the path with a single Archimedean spiral from the outer
// ring's centroid outward.
func Spiral(path *geom.VectorPath, params Params) []Point {
	rings, ok := NormalizeRings(path, 0)
	if !ok {
		return nil
	}
	center := centroid(rings.Outer)
	radius := maxRadius(rings.Outer, center)
	if radius <= 0 {
		return nil
	}
	spacing := densityOrMin(params.Density)
	stitchLength := densityOrMin(params.Density)
	phase := params.FillPhase * 2 * math.Pi

	var raw []geom.Point
	theta := phase
	for steps := 0; steps < maxSpiralSteps; steps++ {
		r := (theta - phase) / (2 * math.Pi) * spacing
		if r > radius {
			break
		}
		raw = append(raw, geom.Point{
			X: center.X + r*math.Cos(theta),
			Y: center.Y + r*math.Sin(theta),
		})
		step := clamp(stitchLength/math.Max(r, 0.5), 0.1, 0.7)
		theta += step
	}

	runs := clipRuns(raw, rings)
	emittedAny := false
	return emitRuns(runs, stitchLength, &emittedAny)
}

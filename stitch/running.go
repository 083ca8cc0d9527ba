package stitch

import (
	"math"

	"github.com/gogpu/stitchengine/geom"
)

// cornerDotThreshold implements the "(a.b)^2 <= 0.12*|a|^2*|b|^2" sharp
// corner test. It fires when the angle between the incoming and outgoing
// edges is between roughly 70 and 110 degrees; because the dot product is
// squared, a sharper turn toward a full reversal does not fire.
const cornerDotThreshold = 0.12

// Running converts a polyline into evenly spaced running stitches. It
// first deduplicates consecutive identical points, then splits the
// polyline at sharp corners (subject to a minimum run length so tightly
// packed flattened-curve vertices don't fragment into tiny curves), then
// resamples each resulting curve at its own even spacing close to
// length.
func Running(points []geom.Point, length float64) []Point {
	pts := dedupeConsecutive(points)
	if len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		return []Point{Normal(pts[0])}
	}
	if length <= 0 {
		length = 0.1
	}

	curves := splitAtCorners(pts, length)

	var out []Point
	for _, curve := range curves {
		samples := sampleCurve(curve, length)
		if len(samples) == 0 {
			continue
		}
		if len(out) > 0 && samples[0] == out[len(out)-1].Point {
			samples = samples[1:]
		}
		for _, s := range samples {
			out = append(out, Normal(s))
		}
	}
	if len(out) == 0 {
		return []Point{Normal(pts[len(pts)-1])}
	}
	// Guarantee the stream ends exactly at the last input point.
	out[len(out)-1].Point = pts[len(pts)-1]
	return out
}

func dedupeConsecutive(points []geom.Point) []geom.Point {
	var out []geom.Point
	for _, p := range points {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}

// splitAtCorners partitions pts into curves at sharp-corner vertices,
// requiring at least minRun of accumulated length since the previous
// split before a corner is allowed to fire again.
func splitAtCorners(pts []geom.Point, targetLength float64) [][]geom.Point {
	minRun := 2 * clamp(0.2*targetLength, 0.05, 1.0)

	var curves [][]geom.Point
	current := []geom.Point{pts[0]}
	runLength := 0.0

	for i := 1; i < len(pts)-1; i++ {
		a := pts[i].Sub(pts[i-1])
		b := pts[i+1].Sub(pts[i])
		runLength += a.Length()
		current = append(current, pts[i])

		dot := a.Dot(b)
		isCorner := dot*dot <= cornerDotThreshold*a.LengthSquared()*b.LengthSquared()
		if isCorner && runLength >= minRun {
			curves = append(curves, current)
			current = []geom.Point{pts[i]}
			runLength = 0
		}
	}
	current = append(current, pts[len(pts)-1])
	curves = append(curves, current)
	return curves
}

// sampleCurve resamples a polyline curve at N = ceil(T/L) even steps,
// emitting the sample at each cumulative distance k*T/N for k=1..N.
func sampleCurve(curve []geom.Point, targetLength float64) []geom.Point {
	total := polylineLength(curve)
	if total == 0 {
		return []geom.Point{curve[len(curve)-1]}
	}
	n := int(math.Ceil(total / targetLength))
	if n < 1 {
		n = 1
	}
	step := total / float64(n)

	out := make([]geom.Point, 0, n)
	for k := 1; k <= n; k++ {
		out = append(out, pointAtLength(curve, step*float64(k)))
	}
	return out
}

func polylineLength(pts []geom.Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
	}
	return total
}

// pointAtLength walks the polyline and returns the point at arc-length s
// from the start, clamped to the final vertex for s beyond the total
// length (guards floating point overshoot on the last sample).
func pointAtLength(pts []geom.Point, s float64) geom.Point {
	remaining := s
	for i := 1; i < len(pts); i++ {
		segLen := pts[i].Distance(pts[i-1])
		if remaining <= segLen || i == len(pts)-1 {
			if segLen == 0 {
				return pts[i]
			}
			t := remaining / segLen
			if t > 1 {
				t = 1
			}
			return pts[i-1].Lerp(pts[i], t)
		}
		remaining -= segLen
	}
	return pts[len(pts)-1]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package metrics computes route-quality and stitch-quality reports as
// pure reducers over an assembled export.ExportDesign.
package metrics

import (
	"math"
	"sort"

	"github.com/gogpu/stitchengine/export"
)

// RouteMetrics summarizes the non-sewing moves in a design: how many
// Jump/Trim/ColorChange events occurred, how far the machine traveled
// between them, and a single weighted score for comparing routes.
type RouteMetrics struct {
	JumpCount        int     `json:"jump_count"`
	TrimCount        int     `json:"trim_count"`
	ColorChangeCount int     `json:"color_change_count"`
	TravelDistanceMM float64 `json:"travel_distance_mm"`
	LongestTravelMM  float64 `json:"longest_travel_mm"`
	RouteScore       float64 `json:"route_score"`
}

func isSpecial(t export.StitchType) bool {
	return t == export.Jump || t == export.Trim || t == export.ColorChange
}

// ComputeRouteMetrics reduces d's non-sewing moves in a single pass.
func ComputeRouteMetrics(d export.ExportDesign) RouteMetrics {
	var m RouteMetrics
	havePrev := false
	var prev export.ExportStitch

	for _, s := range d.Stitches {
		switch s.StitchType {
		case export.Jump:
			m.JumpCount++
		case export.Trim:
			m.TrimCount++
		case export.ColorChange:
			m.ColorChangeCount++
		}
		if !isSpecial(s.StitchType) {
			continue
		}
		if havePrev {
			dist := math.Hypot(s.X-prev.X, s.Y-prev.Y)
			m.TravelDistanceMM += dist
			if dist > m.LongestTravelMM {
				m.LongestTravelMM = dist
			}
		}
		prev = s
		havePrev = true
	}

	m.RouteScore = m.TravelDistanceMM +
		8*float64(m.TrimCount) +
		2*float64(m.JumpCount) +
		25*float64(m.ColorChangeCount)
	return m
}

// QualityMetrics summarizes the Normal-stitch density and orientation
// uniformity of a design against a target stitch length, plus the
// embedded RouteMetrics for the same design.
type QualityMetrics struct {
	Route RouteMetrics `json:"route"`

	TotalStitchCount int `json:"total_stitch_count"`

	MeanLengthMM                 float64 `json:"mean_length_mm"`
	P95LengthMM                  float64 `json:"p95_length_mm"`
	MedianAbsDensityErrorMM      float64 `json:"median_abs_density_error_mm"`
	DominantOrientationRad       float64 `json:"dominant_orientation_rad"`
	MedianAbsOrientationDeltaDeg float64 `json:"median_abs_orientation_delta_deg"`
	CoverageErrorPercent         float64 `json:"coverage_error_percent"`
}

type segment struct {
	length      float64
	orientation float64
}

// ComputeQualityMetrics reduces d against targetLengthMM: consecutive
// Normal-to-Normal pairs form segments; everything else is derived from
// that segment population.
func ComputeQualityMetrics(d export.ExportDesign, targetLengthMM float64) QualityMetrics {
	q := QualityMetrics{
		Route:            ComputeRouteMetrics(d),
		TotalStitchCount: len(d.Stitches),
	}

	segments := normalSegments(d)
	if len(segments) == 0 {
		return q
	}

	lengths := make([]float64, len(segments))
	for i, s := range segments {
		lengths[i] = s.length
	}
	sort.Float64s(lengths)

	q.MeanLengthMM = mean(lengths)
	q.P95LengthMM = percentile(lengths, 0.95)

	densityErrors := make([]float64, len(segments))
	for i, s := range segments {
		densityErrors[i] = math.Abs(s.length - targetLengthMM)
	}
	q.MedianAbsDensityErrorMM = median(densityErrors)

	dominant := dominantOrientation(segments)
	q.DominantOrientationRad = dominant

	deltas := make([]float64, len(segments))
	for i, s := range segments {
		deltas[i] = orientationDelta(s.orientation, dominant)
	}
	q.MedianAbsOrientationDeltaDeg = median(deltas) * 180 / math.Pi

	var overLength int
	for _, l := range lengths {
		if l > 2*targetLengthMM {
			overLength++
		}
	}
	q.CoverageErrorPercent = 100 * float64(overLength) / float64(len(lengths))

	return q
}

// normalSegments returns the length/orientation of every adjacent pair
// of Normal stitches in d's stream, in stream order.
func normalSegments(d export.ExportDesign) []segment {
	var out []segment
	for i := 0; i+1 < len(d.Stitches); i++ {
		a, b := d.Stitches[i], d.Stitches[i+1]
		if a.StitchType != export.Normal || b.StitchType != export.Normal {
			continue
		}
		dx, dy := b.X-a.X, b.Y-a.Y
		out = append(out, segment{
			length:      math.Hypot(dx, dy),
			orientation: math.Atan2(dy, dx),
		})
	}
	return out
}

// dominantOrientation returns the circular mean of the π-periodic
// (undirected-line) segment orientations.
func dominantOrientation(segments []segment) float64 {
	var sumSin, sumCos float64
	for _, s := range segments {
		sumSin += math.Sin(2 * s.orientation)
		sumCos += math.Cos(2 * s.orientation)
	}
	return 0.5 * math.Atan2(sumSin, sumCos)
}

// orientationDelta reduces the angular difference between theta and
// dominant into [0, π/2], respecting the π-periodicity of undirected
// line orientation.
func orientationDelta(theta, dominant float64) float64 {
	d := math.Mod(theta-dominant, math.Pi)
	if d < 0 {
		d += math.Pi
	}
	if d > math.Pi/2 {
		d = math.Pi - d
	}
	return d
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// median assumes no ordering requirement on xs and sorts a copy.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return percentile(sorted, 0.5)
}

// percentile linearly interpolates the p-quantile (p in [0,1]) of an
// already-sorted slice.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

package stitch

import (
	"math"

	"github.com/gogpu/stitchengine/geom"
)

// Satin compiles two guide rails into a satin column: optional underlay
// passes, then a top zig-zag between pull-compensated rail samples.
func Satin(rail1, rail2 []geom.Point, params Params) []Point {
	if len(rail1) < 2 || len(rail2) < 2 {
		return nil
	}
	density := params.Density
	if density <= 0 {
		density = MinDensity
	}

	len1 := polylineLength(rail1)
	len2 := polylineLength(rail2)
	total := math.Max(len1, len2)
	n := int(math.Ceil(total / density))
	if n < 2 {
		n = 2
	}

	p1s := make([]geom.Point, n)
	p2s := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		p1s[i] = pointAtLength(rail1, t*len1)
		p2s[i] = pointAtLength(rail2, t*len2)
	}

	comp := resolvePullCompensation(params)
	c1s := make([]geom.Point, n)
	c2s := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		dir := p2s[i].Sub(p1s[i]).Normalize()
		c1s[i] = p1s[i].Sub(dir.Mul(comp))
		c2s[i] = p2s[i].Add(dir.Mul(comp))
	}

	var out []Point
	underlay := buildSatinUnderlay(p1s, p2s, params)
	out = append(out, underlay...)
	if len(out) > 0 {
		out = append(out, Jump(c1s[0]))
	}

	for i := 0; i < n; i++ {
		if i%2 == 0 {
			out = append(out, Normal(c1s[i]), Normal(c2s[i]))
		} else {
			out = append(out, Normal(c2s[i]), Normal(c1s[i]))
		}
	}
	return out
}

// resolvePullCompensation derives the per-stitch inward/outward offset
// satin applies to counteract fabric pull.
func resolvePullCompensation(params Params) float64 {
	switch params.CompensationMode {
	case CompensationOff:
		return 0
	case CompensationDirectional:
		theta := params.Angle * math.Pi / 180
		v := params.PullCompensation +
			math.Abs(math.Cos(theta))*params.CompensationXMM +
			math.Abs(math.Sin(theta))*params.CompensationYMM
		return math.Max(v, 0)
	default: // CompensationAuto
		return math.Max(params.PullCompensation, 0)
	}
}

// buildSatinUnderlay emits the underlay passes selected by
// params.UnderlayMode, each followed by a Trim separator.
func buildSatinUnderlay(p1s, p2s []geom.Point, params Params) []Point {
	if params.UnderlayMode == UnderlayNone {
		return nil
	}
	wantCenter, wantEdge, wantZigzag := underlayFlags(params.UnderlayMode)

	spacing := params.UnderlaySpacingMM
	if spacing <= 0 {
		spacing = MinDensity
	}

	var out []Point
	appendSegment := func(seg []Point) {
		if len(seg) == 0 {
			return
		}
		out = append(out, seg...)
		out = append(out, Trim(seg[len(seg)-1].Point))
	}

	if wantCenter {
		mids := make([]geom.Point, len(p1s))
		for i := range p1s {
			mids[i] = p1s[i].Lerp(p2s[i], 0.5)
		}
		appendSegment(Running(mids, spacing))
	}
	if wantEdge {
		appendSegment(Running(p1s, spacing))
		appendSegment(Running(p2s, spacing))
	}
	if wantZigzag {
		step := int(math.Ceil(spacing / maxDensity(params.Density)))
		if step < 1 {
			step = 1
		}
		var zz []Point
		k := 0
		for i := 0; i < len(p1s); i += step {
			if k%2 == 0 {
				zz = append(zz, Normal(p1s[i]))
			} else {
				zz = append(zz, Normal(p2s[i]))
			}
			k++
		}
		appendSegment(zz)
	}
	return out
}

func maxDensity(d float64) float64 {
	if d <= 0 {
		return MinDensity
	}
	return d
}

func underlayFlags(mode UnderlayMode) (center, edge, zigzag bool) {
	switch mode {
	case UnderlayCenterWalk:
		return true, false, false
	case UnderlayEdgeWalk:
		return false, true, false
	case UnderlayZigzag:
		return false, false, true
	case UnderlayCenterEdge:
		return true, true, false
	case UnderlayCenterZigzag:
		return true, false, true
	case UnderlayEdgeZigzag:
		return false, true, true
	case UnderlayFull:
		return true, true, true
	default:
		return false, false, false
	}
}

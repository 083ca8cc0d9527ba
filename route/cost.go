package route

import "github.com/gogpu/stitchengine/geom"

// Cost evaluates the travel cost of moving from one point to another: a
// travel-distance term plus policy-weighted trim and jump penalties.
func Cost(from, to geom.Point, opts Options) float64 {
	travel := from.Distance(to)

	trim := 0.0
	if shouldTrim(travel, opts) {
		trim = 1
	}
	jumpPenalty := travel - opts.MaxJumpMM
	if jumpPenalty < 0 {
		jumpPenalty = 0
	}

	switch opts.Policy {
	case MinTravel:
		return travel + 0.25*jumpPenalty
	case MinTrims:
		return 1000*trim + 0.1*travel + jumpPenalty
	default: // Balanced
		return travel + trim*opts.TrimThresholdMM + 0.5*jumpPenalty
	}
}

// shouldTrim reports whether a bare travel distance of this length
// forces a trim under opts, ignoring the assembler's additional
// run-length and policy gating (that gating lives in assembler.go; this
// is the narrower test route_cost itself uses).
func shouldTrim(travel float64, opts Options) bool {
	if travel < opts.TrimThresholdMM {
		return false
	}
	if opts.AllowUnderpath && travel <= opts.MaxJumpMM {
		return false
	}
	return true
}

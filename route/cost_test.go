package route

import (
	"testing"

	"github.com/gogpu/stitchengine/geom"
)

func TestCostBalancedAddsTrimThresholdOnTrim(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = Balanced
	opts.AllowUnderpath = false

	near := Cost(geom.Pt(0, 0), geom.Pt(1, 0), opts)
	far := Cost(geom.Pt(0, 0), geom.Pt(opts.TrimThresholdMM, 0), opts)

	if far <= near {
		t.Errorf("expected trim-triggering travel to cost more: near=%v far=%v", near, far)
	}
}

func TestCostMinTrimsPenalizesTrimsHeavily(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = MinTrims
	opts.AllowUnderpath = false

	trimming := Cost(geom.Pt(0, 0), geom.Pt(opts.TrimThresholdMM, 0), opts)
	noTrim := Cost(geom.Pt(0, 0), geom.Pt(opts.TrimThresholdMM-0.01, 0), opts)

	if trimming-noTrim < 900 {
		t.Errorf("MinTrims trim penalty too small: trimming=%v noTrim=%v", trimming, noTrim)
	}
}

func TestCostUnderpathAvoidsTrimWithinMaxJump(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowUnderpath = true
	opts.Policy = MinTrims

	travel := opts.TrimThresholdMM + 1
	if travel > opts.MaxJumpMM {
		t.Fatalf("test fixture assumption broken: travel %v > max_jump_mm %v", travel, opts.MaxJumpMM)
	}
	if shouldTrim(travel, opts) {
		t.Errorf("expected underpath to suppress trim for travel %v within max_jump_mm", travel)
	}
}

func TestCostMinTravelIgnoresTrimThreshold(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = MinTravel

	a := Cost(geom.Pt(0, 0), geom.Pt(opts.TrimThresholdMM-0.01, 0), opts)
	b := Cost(geom.Pt(0, 0), geom.Pt(opts.TrimThresholdMM, 0), opts)

	if b-a > 1 {
		t.Errorf("MinTravel should not jump sharply at the trim threshold: a=%v b=%v", a, b)
	}
}

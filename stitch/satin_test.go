package stitch

import (
	"testing"

	"github.com/gogpu/stitchengine/geom"
)

func rail(y, length float64) []geom.Point {
	return []geom.Point{geom.Pt(0, y), geom.Pt(length, y)}
}

func TestSatinZigzagsBetweenRails(t *testing.T) {
	params := DefaultParams()
	params.Density = 1
	out := Satin(rail(0, 10), rail(3, 10), params)
	if len(out) == 0 {
		t.Fatal("expected satin stitches between two rails")
	}
	for _, s := range out {
		if s.Y < -0.5 || s.Y > 3.5 {
			t.Errorf("stitch %+v escaped the column between y=0 and y=3", s)
		}
	}
}

func TestSatinTooShortRailYieldsNoStitches(t *testing.T) {
	out := Satin([]geom.Point{geom.Pt(0, 0)}, rail(3, 10), DefaultParams())
	if out != nil {
		t.Fatalf("Satin with a single-point rail = %+v, want nil", out)
	}
}

func TestSatinUnderlayAddsTrimBeforeTopStitching(t *testing.T) {
	params := DefaultParams()
	params.Density = 1
	params.UnderlayMode = UnderlayCenterWalk
	out := Satin(rail(0, 10), rail(3, 10), params)

	sawTrim := false
	for _, s := range out {
		if s.IsTrim {
			sawTrim = true
			break
		}
	}
	if !sawTrim {
		t.Error("expected at least one trim separating underlay from top stitching")
	}
}

func TestSatinPullCompensationOffKeepsRailDistance(t *testing.T) {
	params := DefaultParams()
	params.Density = 5
	params.CompensationMode = CompensationOff
	out := Satin(rail(0, 10), rail(3, 10), params)
	if len(out) == 0 {
		t.Fatal("expected stitches")
	}
	for _, s := range out {
		if s.Y < -0.01 || s.Y > 3.01 {
			t.Errorf("stitch %+v outside rails with compensation off", s)
		}
	}
}

func TestResolvePullCompensationDirectionalUsesAngle(t *testing.T) {
	params := DefaultParams()
	params.CompensationMode = CompensationDirectional
	params.Angle = 0
	params.CompensationXMM = 0.5
	params.CompensationYMM = 0.2
	params.PullCompensation = 0.1
	got := resolvePullCompensation(params)
	want := 0.1 + 0.5
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("resolvePullCompensation = %v, want %v", got, want)
	}
}

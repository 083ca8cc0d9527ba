package stitch

import (
	"testing"

	"github.com/gogpu/stitchengine/geom"
)

func TestRunningResamplesStraightLineEvenly(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}
	out := Running(pts, 2.5)
	if len(out) == 0 {
		t.Fatal("expected stitches for a straight 10mm line")
	}
	for i := 1; i < len(out); i++ {
		d := out[i].Point.Distance(out[i-1].Point)
		if d > 2.5+1e-6 {
			t.Errorf("stitch %d-%d spacing = %v, want <= 2.5", i-1, i, d)
		}
	}
	last := out[len(out)-1]
	if last.X != 10 || last.Y != 0 {
		t.Errorf("last stitch = %+v, want it to land exactly on the final input point", last)
	}
}

func TestRunningDedupesConsecutiveDuplicatePoints(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(5, 0)}
	out := Running(pts, 2.5)
	if len(out) == 0 {
		t.Fatal("expected stitches")
	}
}

func TestRunningSingleInputPointEmitsOneStitch(t *testing.T) {
	out := Running([]geom.Point{geom.Pt(3, 4)}, 2.5)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].X != 3 || out[0].Y != 4 {
		t.Errorf("out[0] = %+v, want (3,4)", out[0])
	}
}

func TestRunningEmptyInputYieldsNoStitches(t *testing.T) {
	out := Running(nil, 2.5)
	if out != nil {
		t.Fatalf("Running(nil, ...) = %+v, want nil", out)
	}
}

func TestRunningSplitsAtSharpCorners(t *testing.T) {
	// An L-shaped path with a 90-degree corner, each leg long enough to
	// clear the minimum run length at this stitch length.
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(5, 5)}
	out := Running(pts, 1.0)
	if len(out) == 0 {
		t.Fatal("expected stitches")
	}
	foundCorner := false
	for _, s := range out {
		if s.X > 4.9 && s.Y < 0.1 {
			foundCorner = true
		}
	}
	if !foundCorner {
		t.Error("expected a stitch near the corner (5,0)")
	}
}

func TestRunningNonPositiveLengthFallsBackToDefault(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0)}
	out := Running(pts, 0)
	if len(out) == 0 {
		t.Fatal("expected stitches even with a non-positive target length")
	}
}

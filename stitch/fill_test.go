package stitch

import (
	"math"
	"testing"

	"github.com/gogpu/stitchengine/geom"
)

func square(side float64) *geom.VectorPath {
	p := geom.NewVectorPath()
	p.MoveTo(0, 0)
	p.LineTo(side, 0)
	p.LineTo(side, side)
	p.LineTo(0, side)
	p.Close()
	return p
}

func TestTatamiFillsSquareWithRows(t *testing.T) {
	params := DefaultParams()
	params.Density = 1
	stitches := Tatami(square(10), params)
	if len(stitches) == 0 {
		t.Fatal("expected tatami to emit stitches for a 10mm square")
	}
	for _, s := range stitches {
		if s.X < -0.01 || s.X > 10.01 || s.Y < -0.01 || s.Y > 10.01 {
			t.Fatalf("stitch %+v escaped the fill region", s)
		}
	}
}

func TestTatamiFirstStitchIsJump(t *testing.T) {
	params := DefaultParams()
	params.Density = 2
	stitches := Tatami(square(10), params)
	if len(stitches) == 0 {
		t.Fatal("expected stitches")
	}
	// At least the very first emitted stitch overall must be marked as a
	// discontinuity (nothing precedes it).
	if !stitches[0].IsJump {
		t.Error("expected first tatami stitch to be a jump")
	}
}

func TestContourShrinksTowardCentroid(t *testing.T) {
	params := DefaultParams()
	params.Density = 1
	params.ContourStepMM = 1
	stitches := Contour(square(10), params)
	if len(stitches) == 0 {
		t.Fatal("expected contour to emit stitches")
	}
	center := geom.Point{X: 5, Y: 5}
	for _, s := range stitches {
		if s.Point.Distance(center) > 8 {
			t.Fatalf("stitch %+v too far from centroid for a shrinking contour", s)
		}
	}
}

func TestSpiralStaysWithinRadiusAndCap(t *testing.T) {
	params := DefaultParams()
	params.Density = 1
	stitches := Spiral(square(10), params)
	if len(stitches) == 0 {
		t.Fatal("expected spiral to emit stitches")
	}
	if len(stitches) > maxSpiralSteps {
		t.Fatalf("spiral exceeded iteration cap: %d stitches", len(stitches))
	}
	center := geom.Point{X: 5, Y: 5}
	radius := math.Sqrt(50) // centroid to a corner of the 10mm square
	for _, s := range stitches {
		if s.Point.Distance(center) > radius+1e-6 {
			t.Fatalf("spiral stitch %+v lies beyond the outer radius %v", s, radius)
		}
	}
}

func TestMotifSkipsCentersOutsideShape(t *testing.T) {
	params := DefaultParams()
	params.Density = 1
	params.MotifScale = 1
	stitches := Motif(square(10), params)
	if len(stitches) == 0 {
		t.Fatal("expected motif fill to emit stitches")
	}
	for _, s := range stitches {
		if s.X < -1 || s.X > 11 || s.Y < -1 || s.Y > 11 {
			t.Fatalf("motif stitch %+v too far outside the shape", s)
		}
	}
}

func TestMotifMarksJumpsBetweenTiles(t *testing.T) {
	params := DefaultParams()
	params.Density = 1
	stitches := Motif(square(10), params)
	jumps := 0
	for _, s := range stitches {
		if s.IsJump {
			jumps++
		}
	}
	if jumps == 0 {
		t.Error("expected at least one jump between motif tiles")
	}
}

func TestNormalizeRingsPromotesLargestAsOuter(t *testing.T) {
	outer := square(10)
	hole := geom.NewVectorPath()
	hole.MoveTo(4, 4)
	hole.LineTo(4, 6)
	hole.LineTo(6, 6)
	hole.LineTo(6, 4)
	hole.Close()
	combined := geom.NewVectorPath()
	combined.Commands = append(combined.Commands, outer.Commands...)
	combined.Commands = append(combined.Commands, hole.Commands...)

	rings, ok := NormalizeRings(combined, 0)
	if !ok {
		t.Fatal("expected a usable ring set")
	}
	if len(rings.Holes) != 1 {
		t.Fatalf("expected exactly one hole, got %d", len(rings.Holes))
	}
	if signedArea(rings.Outer) <= 0 {
		t.Error("expected outer ring to be enforced counterclockwise")
	}
}

func TestNormalizeRingsDropsDegenerateRings(t *testing.T) {
	degenerate := geom.NewVectorPath()
	degenerate.MoveTo(0, 0)
	degenerate.LineTo(1, 0)
	degenerate.Close()

	_, ok := NormalizeRings(degenerate, 0)
	if ok {
		t.Error("expected a 2-point ring to be dropped as degenerate")
	}
}

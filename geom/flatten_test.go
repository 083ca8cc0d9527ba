package geom

import (
	"math"
	"testing"
)

func TestFlattenStraightLine(t *testing.T) {
	p := NewVectorPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	pts := p.Flatten(0.5)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0] != Pt(0, 0) || pts[1] != Pt(10, 0) {
		t.Fatalf("unexpected points: %v", pts)
	}
}

func TestFlattenCubicConvergesWithinTolerance(t *testing.T) {
	p := NewVectorPath()
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)
	pts := p.Flatten(0.1)
	if len(pts) < 3 {
		t.Fatalf("expected a subdivided polyline, got %d points", len(pts))
	}
	if pts[len(pts)-1] != Pt(10, 0) {
		t.Fatalf("flattened curve must end exactly at the last command point, got %v", pts[len(pts)-1])
	}
}

func TestFlattenSubpathsClosesRings(t *testing.T) {
	p := NewVectorPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	rings := p.FlattenSubpaths(0.5)
	if len(rings) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(rings))
	}
	ring := rings[0]
	if ring[0] != ring[len(ring)-1] {
		t.Fatalf("closed ring must duplicate its first point at the end: %v", ring)
	}
}

func TestFlattenSubpathsSplitsOnMultipleMoveTo(t *testing.T) {
	p := NewVectorPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.MoveTo(5, 5)
	p.LineTo(6, 5)
	rings := p.FlattenSubpaths(0.5)
	if len(rings) != 2 {
		t.Fatalf("expected 2 subpaths, got %d", len(rings))
	}
}

func TestBoundingBox(t *testing.T) {
	p := NewVectorPath()
	p.MoveTo(-1, -2)
	p.LineTo(3, 4)
	box := p.BoundingBox(0.5)
	if box.MinX != -1 || box.MinY != -2 || box.MaxX != 3 || box.MaxY != 4 {
		t.Fatalf("unexpected bbox: %+v", box)
	}
}

func TestContainsPointRequiresClosedPath(t *testing.T) {
	open := NewVectorPath()
	open.MoveTo(0, 0)
	open.LineTo(10, 0)
	open.LineTo(10, 10)
	open.LineTo(0, 10)
	if open.ContainsPoint(Pt(5, 5), 0.5) {
		t.Fatalf("an open path must never contain a point")
	}

	closed := open.Clone()
	closed.Close()
	if !closed.ContainsPoint(Pt(5, 5), 0.5) {
		t.Fatalf("expected point inside closed square")
	}
	if closed.ContainsPoint(Pt(50, 50), 0.5) {
		t.Fatalf("expected point outside closed square")
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{X: 10, Y: -4, Rotation: math.Pi / 6, ScaleX: 2, ScaleY: 3}
	m := tr.Matrix()
	got := DecomposeTransform(m)
	if math.Abs(got.X-tr.X) > 1e-9 || math.Abs(got.Y-tr.Y) > 1e-9 {
		t.Fatalf("translation mismatch: %+v", got)
	}
	if math.Abs(got.Rotation-tr.Rotation) > 1e-9 {
		t.Fatalf("rotation mismatch: got %v want %v", got.Rotation, tr.Rotation)
	}
	if math.Abs(got.ScaleX-tr.ScaleX) > 1e-9 || math.Abs(got.ScaleY-tr.ScaleY) > 1e-9 {
		t.Fatalf("scale mismatch: %+v", got)
	}
}

func TestMatrixMultiplyAppliesOtherFirst(t *testing.T) {
	translate := Matrix{A: 1, D: 1, Tx: 10, Ty: 0}
	scale := Matrix{A: 2, D: 2}
	composed := translate.Multiply(scale)
	got := composed.TransformPoint(Pt(1, 1))
	want := translate.TransformPoint(scale.TransformPoint(Pt(1, 1)))
	if got != want {
		t.Fatalf("composition order mismatch: got %v want %v", got, want)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Transform{X: 3, Y: 5, Rotation: 0.4, ScaleX: 1.5, ScaleY: 0.5}.Matrix()
	inv := m.Invert()
	p := Pt(7, -2)
	roundTripped := inv.TransformPoint(m.TransformPoint(p))
	if math.Abs(roundTripped.X-p.X) > 1e-9 || math.Abs(roundTripped.Y-p.Y) > 1e-9 {
		t.Fatalf("invert round trip failed: got %v want %v", roundTripped, p)
	}
}

package shapes

import (
	"math"
	"testing"

	"github.com/gogpu/stitchengine/geom"
)

func TestRectCornerRadiusClamped(t *testing.T) {
	d := NewRect(10, 4, 100)
	p := d.ToVectorPath()
	box := p.BoundingBox(0.1)
	if math.Abs(box.Width()-10) > 0.05 || math.Abs(box.Height()-4) > 0.05 {
		t.Fatalf("clamped-radius rect should still span its declared extents, got %+v", box)
	}
}

func TestRectSquareCornersWithZeroRadius(t *testing.T) {
	p := NewRect(5, 5, 0).ToVectorPath()
	if len(p.Commands) != 5 { // move + 3 lines + close
		t.Fatalf("expected a plain rectangle outline, got %d commands", len(p.Commands))
	}
}

func TestEllipseStartsAtRightmostPoint(t *testing.T) {
	p := NewEllipse(3, 2).ToVectorPath()
	mv, ok := p.Commands[0].(geom.MoveTo)
	if !ok {
		t.Fatalf("expected first command to be MoveTo")
	}
	if mv.Point != geom.Pt(3, 0) {
		t.Fatalf("expected ellipse to start at (rx,0), got %v", mv.Point)
	}
}

func TestPolygonHasRequestedVertexCount(t *testing.T) {
	p := NewPolygon(6, 5).ToVectorPath()
	count := 0
	for _, cmd := range p.Commands {
		if _, ok := cmd.(geom.MoveTo); ok {
			count++
		}
		if _, ok := cmd.(geom.LineTo); ok {
			count++
		}
	}
	if count != 6 {
		t.Fatalf("expected 6 vertices, got %d", count)
	}
}

func TestPolygonBelowMinimumSidesClampsToTriangle(t *testing.T) {
	p := NewPolygon(1, 5).ToVectorPath()
	count := 0
	for _, cmd := range p.Commands {
		switch cmd.(type) {
		case geom.MoveTo, geom.LineTo:
			count++
		}
	}
	if count != 3 {
		t.Fatalf("expected clamping to a triangle, got %d vertices", count)
	}
}

// Package shapes lowers the scene graph's shape variants (rect, ellipse,
// regular polygon, raw path) into geom.VectorPath, the common geometry
// currency the stitch generators consume.
package shapes

import (
	"math"

	"github.com/gogpu/stitchengine/geom"
)

// kappa is the cubic Bezier control-point offset factor that best
// approximates a circular quarter-arc: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Data is the tagged union of shape variants a scene Shape node can carry.
// Exactly one field group is meaningful per Kind.
type Data struct {
	Kind Kind

	// Rect
	Width, Height, CornerRadius float64

	// Ellipse
	RadiusX, RadiusY float64

	// Polygon
	Sides  int
	Radius float64

	// Path
	Path *geom.VectorPath
}

// Kind identifies which shape variant Data holds.
type Kind int

const (
	KindRect Kind = iota
	KindEllipse
	KindPolygon
	KindPath
)

// NewRect returns rect shape data. CornerRadius is clamped to
// min(width,height)/2 at lowering time, not at construction, so callers
// can animate it independently of the clamp.
func NewRect(width, height, cornerRadius float64) Data {
	return Data{Kind: KindRect, Width: width, Height: height, CornerRadius: cornerRadius}
}

// NewEllipse returns ellipse shape data centered on the shape's local origin.
func NewEllipse(rx, ry float64) Data {
	return Data{Kind: KindEllipse, RadiusX: rx, RadiusY: ry}
}

// NewPolygon returns regular polygon shape data. sides must be >= 3.
func NewPolygon(sides int, radius float64) Data {
	return Data{Kind: KindPolygon, Sides: sides, Radius: radius}
}

// NewPath wraps a caller-authored path as shape data.
func NewPath(p *geom.VectorPath) Data {
	return Data{Kind: KindPath, Path: p}
}

// ToVectorPath lowers the shape to its local-space geometry.
func (d Data) ToVectorPath() *geom.VectorPath {
	switch d.Kind {
	case KindRect:
		return rectPath(d.Width, d.Height, d.CornerRadius)
	case KindEllipse:
		return ellipsePath(d.RadiusX, d.RadiusY)
	case KindPolygon:
		return polygonPath(d.Sides, d.Radius)
	case KindPath:
		if d.Path == nil {
			return geom.NewVectorPath()
		}
		return d.Path
	default:
		return geom.NewVectorPath()
	}
}

// rectPath lowers a rectangle spanning [0,width]x[0,height] with optional
// rounded corners into four edges joined by four cubic quarter-arcs.
func rectPath(w, h, radius float64) *geom.VectorPath {
	r := radius
	if maxR := math.Min(w, h) / 2; r > maxR {
		r = maxR
	}
	if r < 0 {
		r = 0
	}
	p := geom.NewVectorPath()
	if r == 0 {
		p.MoveTo(0, 0)
		p.LineTo(w, 0)
		p.LineTo(w, h)
		p.LineTo(0, h)
		p.Close()
		return p
	}

	off := r * kappa
	p.MoveTo(r, 0)
	p.LineTo(w-r, 0)
	// Top-right corner, center (w-r, r).
	p.CubicTo(w-r+off, 0, w, r-off, w, r)
	p.LineTo(w, h-r)
	// Bottom-right corner, center (w-r, h-r).
	p.CubicTo(w, h-r+off, w-r+off, h, w-r, h)
	p.LineTo(r, h)
	// Bottom-left corner, center (r, h-r).
	p.CubicTo(r-off, h, 0, h-r+off, 0, h-r)
	p.LineTo(0, r)
	// Top-left corner, center (r, r).
	p.CubicTo(0, r-off, r-off, 0, r, 0)
	p.Close()
	return p
}

// ellipsePath lowers an ellipse centered at the local origin into four
// cubic Beziers starting at the rightmost point, counterclockwise.
func ellipsePath(rx, ry float64) *geom.VectorPath {
	ox := rx * kappa
	oy := ry * kappa
	p := geom.NewVectorPath()
	p.MoveTo(rx, 0)
	p.CubicTo(rx, oy, ox, ry, 0, ry)
	p.CubicTo(-ox, ry, -rx, oy, -rx, 0)
	p.CubicTo(-rx, -oy, -ox, -ry, 0, -ry)
	p.CubicTo(ox, -ry, rx, -oy, rx, 0)
	p.Close()
	return p
}

// polygonPath lowers a regular N-sided polygon centered at the local
// origin, first vertex at (0,-radius) and the rest at increasing angle,
// into straight edges.
func polygonPath(sides int, radius float64) *geom.VectorPath {
	if sides < 3 {
		sides = 3
	}
	p := geom.NewVectorPath()
	step := 2 * math.Pi / float64(sides)
	start := -math.Pi / 2
	for i := 0; i < sides; i++ {
		angle := start + step*float64(i)
		x := radius * math.Cos(angle)
		y := radius * math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

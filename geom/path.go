package geom

// Command is a single drawing instruction in a VectorPath.
type Command interface {
	isCommand()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct{ Point Point }

func (MoveTo) isCommand() {}

// LineTo draws a straight line to Point.
type LineTo struct{ Point Point }

func (LineTo) isCommand() {}

// CubicTo draws a cubic Bezier curve through two control points to Point.
type CubicTo struct {
	C1, C2, Point Point
}

func (CubicTo) isCommand() {}

// QuadTo draws a quadratic Bezier curve through one control point to Point.
type QuadTo struct {
	Ctrl, Point Point
}

func (QuadTo) isCommand() {}

// Close closes the current subpath back to its starting MoveTo.
type Close struct{}

func (Close) isCommand() {}

// VectorPath is an ordered sequence of drawing commands, possibly
// containing several subpaths each introduced by a MoveTo.
type VectorPath struct {
	Commands []Command
	Closed   bool
	start    Point
	current  Point
}

// NewVectorPath returns an empty path.
func NewVectorPath() *VectorPath {
	return &VectorPath{Commands: make([]Command, 0, 8)}
}

// MoveTo appends a MoveTo command and starts a new subpath.
func (p *VectorPath) MoveTo(x, y float64) *VectorPath {
	pt := Pt(x, y)
	p.Commands = append(p.Commands, MoveTo{Point: pt})
	p.start, p.current = pt, pt
	return p
}

// LineTo appends a LineTo command.
func (p *VectorPath) LineTo(x, y float64) *VectorPath {
	pt := Pt(x, y)
	p.Commands = append(p.Commands, LineTo{Point: pt})
	p.current = pt
	return p
}

// CubicTo appends a cubic Bezier command.
func (p *VectorPath) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *VectorPath {
	pt := Pt(x, y)
	p.Commands = append(p.Commands, CubicTo{C1: Pt(c1x, c1y), C2: Pt(c2x, c2y), Point: pt})
	p.current = pt
	return p
}

// QuadTo appends a quadratic Bezier command.
func (p *VectorPath) QuadTo(cx, cy, x, y float64) *VectorPath {
	pt := Pt(x, y)
	p.Commands = append(p.Commands, QuadTo{Ctrl: Pt(cx, cy), Point: pt})
	p.current = pt
	return p
}

// Close appends a Close command, returning the current point to the
// subpath's start.
func (p *VectorPath) Close() *VectorPath {
	p.Commands = append(p.Commands, Close{})
	p.current = p.start
	p.Closed = true
	return p
}

// CurrentPoint returns the path's current drawing point.
func (p *VectorPath) CurrentPoint() Point { return p.current }

// IsEmpty reports whether the path has no commands.
func (p *VectorPath) IsEmpty() bool { return len(p.Commands) == 0 }

// Transform returns a new path with every point mapped through m.
func (p *VectorPath) Transform(m Matrix) *VectorPath {
	out := NewVectorPath()
	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			pt := m.TransformPoint(c.Point)
			out.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(c.Point)
			out.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(c.Ctrl)
			pt := m.TransformPoint(c.Point)
			out.QuadTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(c.C1)
			c2 := m.TransformPoint(c.C2)
			pt := m.TransformPoint(c.Point)
			out.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			out.Close()
		}
	}
	return out
}

// Clone returns a deep copy of the path (commands are immutable value
// types, so a slice copy suffices).
func (p *VectorPath) Clone() *VectorPath {
	out := NewVectorPath()
	out.Commands = append(out.Commands, p.Commands...)
	out.start, out.current, out.Closed = p.start, p.current, p.Closed
	return out
}

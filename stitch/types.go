// Package stitch implements the pure geometry-to-stitch compilers:
// running stitch, satin, and the tatami/contour/spiral/motif fill
// variants, plus the post-fill shaping passes shared by all of them.
//
// Every generator in this package is a pure function of (geometry,
// params); none of them reach into a scene graph, so they are trivially
// unit-testable and keep routing a separable concern.
package stitch

import "github.com/gogpu/stitchengine/geom"

// Type identifies the stitch-fill algorithm a Shape uses.
type Type int

const (
	TypeRunning Type = iota
	TypeSatin
	TypeTatami
	TypeContour
	TypeSpiral
	TypeMotif
)

// UnderlayMode selects which stabilizing passes satin lays down before
// its top stitches.
type UnderlayMode int

const (
	UnderlayNone UnderlayMode = iota
	UnderlayCenterWalk
	UnderlayEdgeWalk
	UnderlayZigzag
	UnderlayCenterEdge
	UnderlayCenterZigzag
	UnderlayEdgeZigzag
	UnderlayFull
)

// CompensationMode selects how satin's pull compensation is resolved.
type CompensationMode int

const (
	CompensationOff CompensationMode = iota
	CompensationAuto
	CompensationDirectional
)

// MotifPattern selects the tile shape used by the motif fill.
type MotifPattern int

const (
	MotifDiamond MotifPattern = iota
	MotifWave
	MotifTriangle
)

// FillStartMode selects where a fill's stitch list is rotated to start.
type FillStartMode int

const (
	FillStartAuto FillStartMode = iota
	FillStartCenter
	FillStartEdge
)

// MinDensity is the floor applied to a fill's row/loop spacing so a
// caller-supplied density of zero (or near it) cannot produce an
// unbounded number of rows.
const MinDensity = 0.1

// Params configures a single Shape's stitch generation.
type Params struct {
	Type       Type
	Density    float64 // row/rail spacing, mm
	Angle      float64 // degrees
	FillPhase  float64 // [0,1)

	// Satin.
	UnderlayMode       UnderlayMode
	UnderlaySpacingMM  float64
	PullCompensation   float64
	CompensationMode   CompensationMode
	CompensationXMM    float64
	CompensationYMM    float64

	// Fill extras.
	ContourStepMM   float64
	MotifPattern    MotifPattern
	MotifScale      float64
	FillStartMode   FillStartMode
	EdgeWalkOnFill  bool
	MinSegmentMM    float64
	OverlapMM       float64
}

// DefaultParams returns the engine defaults for a Running-stitch shape.
func DefaultParams() Params {
	return Params{
		Type:             TypeRunning,
		Density:          0.4,
		Angle:            0,
		UnderlayMode:     UnderlayNone,
		CompensationMode: CompensationAuto,
		MotifScale:       1,
		FillStartMode:    FillStartAuto,
	}
}

// Point is a single needle position with the jump/trim flags the
// generator attached. Routing and export assembly refine these into the
// richer export.Stitch stream.
type Point struct {
	geom.Point
	IsJump bool
	IsTrim bool
}

// Normal constructs a plain (non-jump, non-trim) stitch point.
func Normal(p geom.Point) Point {
	return Point{Point: p}
}

// Jump constructs a jump stitch point.
func Jump(p geom.Point) Point {
	return Point{Point: p, IsJump: true}
}

// Trim constructs a trim stitch point.
func Trim(p geom.Point) Point {
	return Point{Point: p, IsTrim: true}
}

// Block is a generated stitch sequence for one scene Shape, still in the
// shape's own render-order position, before route optimization.
type Block struct {
	Color       geom.Color
	Stitches    []Point
	SourceOrder int
}

// Start returns the first stitch position in the block.
func (b Block) Start() geom.Point {
	if len(b.Stitches) == 0 {
		return geom.Point{}
	}
	return b.Stitches[0].Point
}

// End returns the last stitch position in the block.
func (b Block) End() geom.Point {
	if len(b.Stitches) == 0 {
		return geom.Point{}
	}
	return b.Stitches[len(b.Stitches)-1].Point
}

// Reversed returns a copy of the block with its stitch order reversed.
func (b Block) Reversed() Block {
	out := make([]Point, len(b.Stitches))
	for i, s := range b.Stitches {
		out[len(out)-1-i] = s
	}
	return Block{Color: b.Color, Stitches: out, SourceOrder: b.SourceOrder}
}

package route

import (
	"github.com/gogpu/stitchengine/export"
	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/stitch"
)

// tieOffsets is the five-stitch tie-down sequence anchored at a point:
// out, back through anchor, out the other way, back.
var tieOffsets = []geom.Point{
	{X: 0, Y: 0},
	{X: 0.25, Y: 0},
	{X: 0, Y: 0},
	{X: -0.25, Y: 0},
	{X: 0, Y: 0},
}

// assembler carries the running state of the assembly walk: the
// position and color the machine is currently at, and the stitch run
// accumulated since the last trim.
type assembler struct {
	design       export.ExportDesign
	current      geom.Point
	currentColor geom.Color
	haveColor    bool
	runSinceTrim float64
	opts         Options
}

// Assemble orders blocks per opts (via Order) and walks the result into
// a flat ExportDesign, inserting trims, jumps, color changes, and tie
// stitches as the routing policy requires.
func Assemble(blocks []stitch.Block, opts Options) export.ExportDesign {
	a := &assembler{opts: opts}
	ordered := Order(blocks, opts)

	for _, b := range ordered {
		if len(b.Stitches) == 0 {
			continue
		}
		a.enterBlock(b)
		if opts.TieMode == TieShapeStartEnd {
			a.tie(b.Start())
		}
		a.emitBlockStitches(b)
		if opts.TieMode == TieShapeStartEnd {
			a.tie(b.End())
		}
	}

	a.design.Stitches = append(a.design.Stitches, export.ExportStitch{
		X: a.current.X, Y: a.current.Y, StitchType: export.End,
	})
	if len(a.design.Colors) == 0 {
		a.design.Colors = append(a.design.Colors, geom.Black)
	}
	return a.design
}

// enterBlock handles the color-change transition (if any) and the
// ordinary trim/jump transition into b's start point.
func (a *assembler) enterBlock(b stitch.Block) {
	blockStart := b.Start()

	if !a.haveColor {
		a.currentColor = b.Color
		a.design.Colors = append(a.design.Colors, b.Color)
		a.haveColor = true
	} else if b.Color != a.currentColor {
		if a.opts.TieMode == TieColorChange {
			a.tie(a.current)
		}
		a.emitTrim()
		a.emitColorChange(blockStart)
		if a.opts.TieMode == TieColorChange {
			a.tie(a.current)
		}
		a.currentColor = b.Color
		a.design.Colors = append(a.design.Colors, b.Color)
		return
	}

	travel := a.current.Distance(blockStart)
	if travel <= 0 {
		return
	}
	if a.shouldTrimBeforeBlock(travel) {
		a.emitTrim()
	}
	a.emitJump(blockStart)
}

func (a *assembler) shouldTrimBeforeBlock(travel float64) bool {
	if travel < a.opts.TrimThresholdMM {
		return false
	}
	if a.runSinceTrim < a.opts.MinStitchRunBeforeTrimMM {
		return false
	}
	if a.opts.AllowUnderpath && travel <= a.opts.MaxJumpMM {
		return false
	}
	return a.opts.Policy == Balanced || a.opts.Policy == MinTrims
}

func (a *assembler) emitBlockStitches(b stitch.Block) {
	for _, s := range b.Stitches {
		switch {
		case s.IsTrim:
			a.appendStitch(s.Point, export.Trim)
			a.runSinceTrim = 0
		case s.IsJump:
			a.appendStitch(s.Point, export.Jump)
		default:
			a.runSinceTrim += a.current.Distance(s.Point)
			a.appendStitch(s.Point, export.Normal)
		}
	}
}

// tie emits the five-stitch tie-down sequence anchored at p; each
// stitch is Normal and accumulates into run_since_trim_mm.
func (a *assembler) tie(p geom.Point) {
	for _, off := range tieOffsets {
		anchor := p.Add(off)
		a.runSinceTrim += a.current.Distance(anchor)
		a.appendStitch(anchor, export.Normal)
	}
}

func (a *assembler) emitTrim() {
	a.appendStitch(a.current, export.Trim)
	a.runSinceTrim = 0
}

func (a *assembler) emitJump(p geom.Point) {
	a.appendStitch(p, export.Jump)
}

func (a *assembler) emitColorChange(p geom.Point) {
	a.appendStitch(p, export.ColorChange)
}

func (a *assembler) appendStitch(p geom.Point, t export.StitchType) {
	a.design.Stitches = append(a.design.Stitches, export.ExportStitch{X: p.X, Y: p.Y, StitchType: t})
	a.current = p
}

package route

import (
	"testing"

	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/stitch"
)

func block(color geom.Color, order int, start, end geom.Point) stitch.Block {
	return stitch.Block{
		Color:       color,
		SourceOrder: order,
		Stitches:    []stitch.Point{stitch.Normal(start), stitch.Normal(end)},
	}
}

func TestOrderPreserveLayerOrderKeepsRenderOrder(t *testing.T) {
	blocks := []stitch.Block{
		block(geom.Black, 0, geom.Pt(100, 0), geom.Pt(101, 0)),
		block(geom.Black, 1, geom.Pt(0, 0), geom.Pt(1, 0)),
	}
	opts := DefaultOptions()
	opts.PreserveLayerOrder = true

	out := Order(blocks, opts)
	if out[0].SourceOrder != 0 || out[1].SourceOrder != 1 {
		t.Fatalf("render order not preserved: got order %d, %d", out[0].SourceOrder, out[1].SourceOrder)
	}
}

func TestOrderGreedyPicksNearestFirst(t *testing.T) {
	blocks := []stitch.Block{
		block(geom.Black, 0, geom.Pt(100, 0), geom.Pt(101, 0)),
		block(geom.Black, 1, geom.Pt(5, 0), geom.Pt(6, 0)),
	}
	opts := DefaultOptions()
	opts.PreserveColorOrder = false
	opts.PreserveLayerOrder = false

	out := Order(blocks, opts)
	if out[0].SourceOrder != 1 {
		t.Fatalf("expected the nearer block first, got SourceOrder=%d", out[0].SourceOrder)
	}
}

func TestOrderStrictSequencerKeepsInputOrderRegardlessOfDistance(t *testing.T) {
	blocks := []stitch.Block{
		block(geom.Black, 0, geom.Pt(100, 0), geom.Pt(101, 0)),
		block(geom.Black, 1, geom.Pt(0, 0), geom.Pt(1, 0)),
	}
	opts := DefaultOptions()
	opts.SequenceMode = StrictSequencer

	out := Order(blocks, opts)
	if out[0].SourceOrder != 0 || out[1].SourceOrder != 1 {
		t.Fatalf("StrictSequencer reordered blocks: got %d, %d", out[0].SourceOrder, out[1].SourceOrder)
	}
}

func TestOrderColorBucketExhaustsBucketBeforeSwitching(t *testing.T) {
	red := geom.Color{R: 255, A: 255}
	blue := geom.Color{B: 255, A: 255}
	blocks := []stitch.Block{
		block(red, 0, geom.Pt(0, 0), geom.Pt(1, 0)),
		block(blue, 1, geom.Pt(2, 0), geom.Pt(3, 0)),
		block(red, 2, geom.Pt(50, 0), geom.Pt(51, 0)),
	}
	opts := DefaultOptions()
	opts.PreserveColorOrder = true
	opts.AllowColorMerge = false

	out := Order(blocks, opts)
	if out[0].Color != red || out[1].Color != red {
		t.Fatalf("expected both red blocks first, got order %v, %v", out[0].Color, out[1].Color)
	}
	if out[2].Color != blue {
		t.Fatalf("expected blue block last, got %v", out[2].Color)
	}
}

func TestOrderColorMergeCanInterleaveBuckets(t *testing.T) {
	red := geom.Color{R: 255, A: 255}
	blue := geom.Color{B: 255, A: 255}
	blocks := []stitch.Block{
		block(red, 0, geom.Pt(0, 0), geom.Pt(1, 0)),
		block(blue, 1, geom.Pt(2, 0), geom.Pt(3, 0)),
		block(red, 2, geom.Pt(100, 0), geom.Pt(101, 0)),
	}
	opts := DefaultOptions()
	opts.PreserveColorOrder = true
	opts.AllowColorMerge = true

	out := Order(blocks, opts)
	if out[1].Color != blue {
		t.Fatalf("expected the cheap blue block to merge in second, got %v", out[1].Color)
	}
}

func TestOrientBlockReversesWhenEndIsCheaper(t *testing.T) {
	b := block(geom.Black, 0, geom.Pt(10, 0), geom.Pt(0, 0))
	opts := DefaultOptions()

	oriented := orientBlock(geom.Pt(0, 0), b, opts)
	if oriented.Start() != geom.Pt(0, 0) {
		t.Fatalf("expected block to be reversed so Start is near current, got %v", oriented.Start())
	}
}

func TestOrientBlockRespectsPreserveShapeStart(t *testing.T) {
	b := block(geom.Black, 0, geom.Pt(10, 0), geom.Pt(0, 0))
	opts := DefaultOptions()
	opts.EntryExitMode = PreserveShapeStart

	oriented := orientBlock(geom.Pt(0, 0), b, opts)
	if oriented.Start() != geom.Pt(10, 0) {
		t.Fatalf("PreserveShapeStart should keep authored start, got %v", oriented.Start())
	}
}

func TestAllowReverseNeverIncreasesTravelVersusDisallowed(t *testing.T) {
	blocks := []stitch.Block{
		block(geom.Black, 0, geom.Pt(0, 0), geom.Pt(1, 0)),
		block(geom.Black, 1, geom.Pt(20, 0), geom.Pt(0.5, 0)),
	}

	withReverse := DefaultOptions()
	withReverse.AllowReverse = true
	withReverse.PreserveLayerOrder = true

	withoutReverse := DefaultOptions()
	withoutReverse.AllowReverse = false
	withoutReverse.PreserveLayerOrder = true

	travel := func(opts Options) float64 {
		ordered := Order(blocks, opts)
		var total float64
		var current geom.Point
		for _, b := range ordered {
			total += current.Distance(b.Start())
			current = b.End()
		}
		return total
	}

	if travel(withReverse) > travel(withoutReverse) {
		t.Errorf("allow_reverse=true travel %v exceeds allow_reverse=false travel %v",
			travel(withReverse), travel(withoutReverse))
	}
}

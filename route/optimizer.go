package route

import (
	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/internal/routegraph"
	"github.com/gogpu/stitchengine/stitch"
)

// Order reorders and reorients blocks (already in render order, tagged
// with their source order) according to opts' block-ordering policy.
func Order(blocks []stitch.Block, opts Options) []stitch.Block {
	switch {
	case opts.SequenceMode == StrictSequencer:
		return orderStrictSequencer(blocks, opts)
	case opts.PreserveLayerOrder:
		return append([]stitch.Block(nil), blocks...)
	case opts.PreserveColorOrder:
		return orderByColorBucket(blocks, opts)
	default:
		return orderGreedy(blocks, opts)
	}
}

// orientBlock picks a block's traversal direction: with reversal allowed
// and not pinned to the shape's authored start, it picks whichever end
// of the block is cheaper to enter from current.
func orientBlock(current geom.Point, block stitch.Block, opts Options) stitch.Block {
	if !opts.AllowReverse || opts.EntryExitMode == PreserveShapeStart {
		return block
	}
	if Cost(current, block.End(), opts) < Cost(current, block.Start(), opts) {
		return block.Reversed()
	}
	return block
}

// entryCost is the lesser of entering a block forward or reversed,
// i.e. the cost orientBlock will actually pay.
func entryCost(current geom.Point, block stitch.Block, opts Options) float64 {
	startCost := Cost(current, block.Start(), opts)
	if !opts.AllowReverse || opts.EntryExitMode == PreserveShapeStart {
		return startCost
	}
	endCost := Cost(current, block.End(), opts)
	if endCost < startCost {
		return endCost
	}
	return startCost
}

func orderStrictSequencer(blocks []stitch.Block, opts Options) []stitch.Block {
	out := make([]stitch.Block, 0, len(blocks))
	current := geom.Point{}
	for _, b := range blocks {
		oriented := orientBlock(current, b, opts)
		out = append(out, oriented)
		current = oriented.End()
	}
	return out
}

// pickNearest scans candidates, builds a routegraph.Edge per candidate,
// and returns the cheapest one's index plus its oriented block.
func pickNearest(current geom.Point, candidates []stitch.Block, opts Options) (int, stitch.Block) {
	edges := make([]routegraph.Edge, len(candidates))
	for i, c := range candidates {
		edges[i] = routegraph.Edge{BlockIndex: i, Cost: entryCost(current, c, opts)}
	}
	best, _ := routegraph.Cheapest(edges)
	return best.BlockIndex, orientBlock(current, candidates[best.BlockIndex], opts)
}

func orderGreedy(blocks []stitch.Block, opts Options) []stitch.Block {
	remaining := append([]stitch.Block(nil), blocks...)
	current := geom.Point{}
	out := make([]stitch.Block, 0, len(blocks))
	for len(remaining) > 0 {
		idx, oriented := pickNearest(current, remaining, opts)
		out = append(out, oriented)
		current = oriented.End()
		remaining = removeBlockAt(remaining, idx)
	}
	return out
}

type colorBucket struct {
	color  geom.Color
	blocks []stitch.Block
}

func bucketByColorFirstSeen(blocks []stitch.Block) []colorBucket {
	var buckets []colorBucket
	index := make(map[geom.Color]int)
	for _, b := range blocks {
		if i, ok := index[b.Color]; ok {
			buckets[i].blocks = append(buckets[i].blocks, b)
			continue
		}
		index[b.Color] = len(buckets)
		buckets = append(buckets, colorBucket{color: b.Color, blocks: []stitch.Block{b}})
	}
	return buckets
}

// orderByColorBucket implements preserve_color_order's bucketed greedy
// walk: with allow_color_merge=false, exhaust each color bucket (in
// first-seen order) before moving to the next; with it true, the
// cheapest next block from ANY remaining bucket may be taken, letting
// bucket order interleave.
func orderByColorBucket(blocks []stitch.Block, opts Options) []stitch.Block {
	buckets := bucketByColorFirstSeen(blocks)
	current := geom.Point{}
	out := make([]stitch.Block, 0, len(blocks))

	for len(buckets) > 0 {
		bucketIdx := 0
		if opts.AllowColorMerge {
			bucketIdx = cheapestBucket(current, buckets, opts)
		}
		idx, oriented := pickNearest(current, buckets[bucketIdx].blocks, opts)
		out = append(out, oriented)
		current = oriented.End()
		buckets[bucketIdx].blocks = removeBlockAt(buckets[bucketIdx].blocks, idx)
		if len(buckets[bucketIdx].blocks) == 0 {
			buckets = append(buckets[:bucketIdx], buckets[bucketIdx+1:]...)
		}
	}
	return out
}

func cheapestBucket(current geom.Point, buckets []colorBucket, opts Options) int {
	best := 0
	bestCost := bucketEntryCost(current, buckets[0], opts)
	for i := 1; i < len(buckets); i++ {
		if c := bucketEntryCost(current, buckets[i], opts); c < bestCost {
			best, bestCost = i, c
		}
	}
	return best
}

func bucketEntryCost(current geom.Point, b colorBucket, opts Options) float64 {
	best := entryCost(current, b.blocks[0], opts)
	for _, blk := range b.blocks[1:] {
		if c := entryCost(current, blk, opts); c < best {
			best = c
		}
	}
	return best
}

func removeBlockAt(blocks []stitch.Block, index int) []stitch.Block {
	out := make([]stitch.Block, 0, len(blocks)-1)
	out = append(out, blocks[:index]...)
	out = append(out, blocks[index+1:]...)
	return out
}

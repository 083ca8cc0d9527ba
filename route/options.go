// Package route orders and orients per-shape stitch blocks into a single
// machine-bound stitch program, inserting the trims, jumps, color
// changes, and tie stitches a real embroidery machine needs between
// blocks.
package route

// Policy selects which terms the cost function weighs most heavily when
// choosing and orienting blocks.
type Policy int

const (
	Balanced Policy = iota
	MinTravel
	MinTrims
)

// EntryExitMode selects how a block's start/end point is chosen relative
// to its natural orientation.
type EntryExitMode int

const (
	EntryExitAuto EntryExitMode = iota
	PreserveShapeStart
	UserAnchor
)

// TieMode selects when a tie-stitch sequence is inserted to anchor
// thread at a cut point.
type TieMode int

const (
	TieOff TieMode = iota
	TieShapeStartEnd
	TieColorChange
)

// SequenceMode selects whether block order follows the optimizer's cost
// search or the scene's sequencer order verbatim.
type SequenceMode int

const (
	Optimizer SequenceMode = iota
	StrictSequencer
)

// Options configures route_cost, block ordering, and assembly. JSON tags
// match the wire names a caller-supplied options document uses.
type Options struct {
	Policy                   Policy        `json:"policy"`
	MaxJumpMM                float64       `json:"max_jump_mm"`
	TrimThresholdMM          float64       `json:"trim_threshold_mm"`
	PreserveColorOrder       bool          `json:"preserve_color_order"`
	PreserveLayerOrder       bool          `json:"preserve_layer_order"`
	AllowReverse             bool          `json:"allow_reverse"`
	AllowColorMerge          bool          `json:"allow_color_merge"`
	AllowUnderpath           bool          `json:"allow_underpath"`
	EntryExitMode            EntryExitMode `json:"entry_exit_mode"`
	TieMode                  TieMode       `json:"tie_mode"`
	MinStitchRunBeforeTrimMM float64       `json:"min_stitch_run_before_trim_mm"`
	SequenceMode             SequenceMode  `json:"sequence_mode"`
}

// DefaultOptions returns the engine's recommended routing defaults.
func DefaultOptions() Options {
	return Options{
		Policy:                   Balanced,
		MaxJumpMM:                25.0,
		TrimThresholdMM:          12.0,
		PreserveColorOrder:       true,
		PreserveLayerOrder:       false,
		AllowReverse:             true,
		AllowColorMerge:          false,
		AllowUnderpath:           true,
		EntryExitMode:            EntryExitAuto,
		TieMode:                  TieShapeStartEnd,
		MinStitchRunBeforeTrimMM: 2.0,
		SequenceMode:             Optimizer,
	}
}

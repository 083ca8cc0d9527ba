package scenegraph

import "errors"

var (
	// ErrNodeNotFound is returned when an operation names an id the
	// scene does not currently hold.
	ErrNodeNotFound = errors.New("scenegraph: node not found")

	// ErrNotAShape is returned when an operation requires a Shape node
	// but the named node is a Layer or Group.
	ErrNotAShape = errors.New("scenegraph: node is not a shape")

	// ErrWouldCreateCycle is returned by MoveNode when the requested new
	// parent is the node itself or one of its own descendants.
	ErrWouldCreateCycle = errors.New("scenegraph: move would create a cycle")

	// ErrIndexOutOfRange names a reorder index outside the target list's
	// bounds. No operation in this package returns it: MoveNode and
	// ReorderChild insert at the end of the sibling list for an
	// out-of-range index, and ReorderSequencerShape clamps to 1..N.
	ErrIndexOutOfRange = errors.New("scenegraph: index out of range")

	// ErrDuplicateID is returned by AddNodeWithID when the id is already
	// in use (undo replaying onto a scene that was mutated elsewhere).
	ErrDuplicateID = errors.New("scenegraph: id already in use")

	// ErrNothingToUndo and ErrNothingToRedo guard empty-stack pops.
	ErrNothingToUndo = errors.New("scenegraph: no command to undo")
	ErrNothingToRedo = errors.New("scenegraph: no command to redo")

	// ErrEmptyExport is returned by ToExportDesign when no visible shape
	// contributes a stitch block.
	ErrEmptyExport = errors.New("No visible shapes with stroke or fill to export")
)

// Package scenegraph implements the retained, mutable, undoable tree of
// layers, groups, and shapes: a typed node tree with a reversible
// command journal and a sequencer ordering kept independent of the
// visual tree.
package scenegraph

import (
	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/route"
	"github.com/gogpu/stitchengine/shapes"
	"github.com/gogpu/stitchengine/stitch"
)

// NodeID is a monotonic identifier assigned by the Scene. It is never
// reused, even after the node it named is removed.
type NodeID uint64

// noParent marks a node as a root child; NodeID zero is never assigned
// to a real node, so it doubles as "no parent".
const noParent NodeID = 0

// Kind is the tagged union of what a Node represents: a compositing
// Layer, a plain Group, or a stitched Shape. Its marker method is
// unexported, so only this package's types implement Kind.
type Kind interface {
	isKind()
}

// LayerKind is a named, independently hideable/lockable grouping node.
type LayerKind struct {
	Name    string
	Visible bool
	Locked  bool
}

func (LayerKind) isKind() {}

// GroupKind is a plain grouping node with no rendering semantics of its
// own beyond composing its children's transforms.
type GroupKind struct{}

func (GroupKind) isKind() {}

// ShapeKind is a leaf node carrying geometry, paint, and stitch
// parameters.
type ShapeKind struct {
	Shape       shapes.Data
	Fill        *geom.Color
	Stroke      *geom.Color
	StrokeWidth float64
	Stitch      stitch.Params
}

func (ShapeKind) isKind() {}

// Node is one entry in the scene tree.
type Node struct {
	ID        NodeID
	Name      string
	Transform geom.Transform
	Kind      Kind
	Children  []NodeID
	Parent    NodeID
}

// IsRoot reports whether the node has no parent (lives directly under
// Scene.RootChildren).
func (n *Node) IsRoot() bool {
	return n.Parent == noParent
}

// ShapeMeta is the routing side-channel kept for every Shape node,
// independent of the visual tree: its position in the dense sequencer
// ordering and any per-object overrides of the route optimizer's
// defaults.
type ShapeMeta struct {
	SequencerIndex       int
	AllowReverseOverride *bool
	EntryExitOverride    *route.EntryExitMode
	TieModeOverride      *route.TieMode
}

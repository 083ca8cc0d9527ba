package scenegraph

import (
	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/route"
)

// Command is one reversible scene mutation. Do applies it forward; Undo
// applies the inverse. Both report ErrNodeNotFound (or a more specific
// sentinel) if the scene has drifted since the command was built.
type Command interface {
	Do(s *Scene) error
	Undo(s *Scene) error
}

// AddNode installs a node with a preallocated id at the end of its
// parent's children; Undo removes it.
type AddNode struct {
	ID        NodeID
	Parent    NodeID
	Name      string
	Transform geom.Transform
	Kind      Kind
}

func (c *AddNode) Do(s *Scene) error {
	return s.AddNodeWithID(c.ID, c.Parent, c.Name, c.Transform, c.Kind)
}

func (c *AddNode) Undo(s *Scene) error {
	return s.RemoveNode(c.ID)
}

// RemoveNode deletes a node and its subtree; Undo restores the snapshot
// taken at Do time.
type RemoveNode struct {
	ID       NodeID
	snapshot Subtree
}

func (c *RemoveNode) Do(s *Scene) error {
	sub, err := s.snapshotSubtree(c.ID)
	if err != nil {
		return err
	}
	if err := s.RemoveNode(c.ID); err != nil {
		return err
	}
	c.snapshot = sub
	return nil
}

func (c *RemoveNode) Undo(s *Scene) error {
	return s.restoreSubtree(c.snapshot)
}

// UpdateTransform replaces a node's transform.
type UpdateTransform struct {
	ID       NodeID
	Old, New geom.Transform
}

func (c *UpdateTransform) Do(s *Scene) error   { return s.setTransform(c.ID, c.New) }
func (c *UpdateTransform) Undo(s *Scene) error { return s.setTransform(c.ID, c.Old) }

func (s *Scene) setTransform(id NodeID, t geom.Transform) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Transform = t
	s.syncSubtreeDerived(id)
	return nil
}

// UpdateKind replaces a node's Kind (e.g. a Shape's geometry or a
// Layer's visible/locked flags).
type UpdateKind struct {
	ID       NodeID
	Old, New Kind
}

func (c *UpdateKind) Do(s *Scene) error   { return s.setKind(c.ID, c.New) }
func (c *UpdateKind) Undo(s *Scene) error { return s.setKind(c.ID, c.Old) }

func (s *Scene) setKind(id NodeID, k Kind) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	wasShape := isShapeKind(n.Kind)
	n.Kind = k
	isShape := isShapeKind(k)

	switch {
	case wasShape && !isShape:
		delete(s.shapeMeta, id)
		delete(s.objects, id)
		delete(s.blocks, id)
		s.renumberSequencer()
	case !wasShape && isShape:
		s.shapeMeta[id] = &ShapeMeta{SequencerIndex: len(s.shapeMeta) + 1}
		s.renumberSequencer()
		s.syncDerived(id)
	case isShape:
		s.syncDerived(id)
	default:
		s.syncSubtreeDerived(id)
	}
	return nil
}

func isShapeKind(k Kind) bool {
	_, ok := k.(ShapeKind)
	return ok
}

// syncSubtreeDerived re-syncs every Shape descendant of id (inclusive),
// used after a transform or visibility change that can shift every
// descendant's world transform.
func (s *Scene) syncSubtreeDerived(id NodeID) {
	n, ok := s.nodes[id]
	if !ok {
		return
	}
	if _, isShape := n.Kind.(ShapeKind); isShape {
		s.syncDerived(id)
	}
	for _, child := range n.Children {
		s.syncSubtreeDerived(child)
	}
}

// Rename replaces a node's display name.
type Rename struct {
	ID       NodeID
	Old, New string
}

func (c *Rename) Do(s *Scene) error   { return s.setName(c.ID, c.New) }
func (c *Rename) Undo(s *Scene) error { return s.setName(c.ID, c.Old) }

func (s *Scene) setName(id NodeID, name string) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Name = name
	return nil
}

// SetFill replaces a Shape node's fill color.
type SetFill struct {
	ID       NodeID
	Old, New *geom.Color
}

func (c *SetFill) Do(s *Scene) error   { return s.setFill(c.ID, c.New) }
func (c *SetFill) Undo(s *Scene) error { return s.setFill(c.ID, c.Old) }

func (s *Scene) setFill(id NodeID, color *geom.Color) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	shapeKind, ok := n.Kind.(ShapeKind)
	if !ok {
		return ErrNotAShape
	}
	shapeKind.Fill = color
	n.Kind = shapeKind
	s.syncDerived(id)
	return nil
}

// SetStroke replaces a Shape node's stroke color.
type SetStroke struct {
	ID       NodeID
	Old, New *geom.Color
}

func (c *SetStroke) Do(s *Scene) error   { return s.setStroke(c.ID, c.New) }
func (c *SetStroke) Undo(s *Scene) error { return s.setStroke(c.ID, c.Old) }

func (s *Scene) setStroke(id NodeID, color *geom.Color) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	shapeKind, ok := n.Kind.(ShapeKind)
	if !ok {
		return ErrNotAShape
	}
	shapeKind.Stroke = color
	n.Kind = shapeKind
	s.syncDerived(id)
	return nil
}

// SetStrokeWidth replaces a Shape node's stroke width.
type SetStrokeWidth struct {
	ID       NodeID
	Old, New float64
}

func (c *SetStrokeWidth) Do(s *Scene) error   { return s.setStrokeWidth(c.ID, c.New) }
func (c *SetStrokeWidth) Undo(s *Scene) error { return s.setStrokeWidth(c.ID, c.Old) }

func (s *Scene) setStrokeWidth(id NodeID, width float64) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	shapeKind, ok := n.Kind.(ShapeKind)
	if !ok {
		return ErrNotAShape
	}
	shapeKind.StrokeWidth = width
	n.Kind = shapeKind
	s.syncDerived(id)
	return nil
}

// SetPathCommands replaces a raw-Path Shape's vector commands.
type SetPathCommands struct {
	ID       NodeID
	Old, New []geom.Command
}

func (c *SetPathCommands) Do(s *Scene) error   { return s.setPathCommands(c.ID, c.New) }
func (c *SetPathCommands) Undo(s *Scene) error { return s.setPathCommands(c.ID, c.Old) }

func (s *Scene) setPathCommands(id NodeID, cmds []geom.Command) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	shapeKind, ok := n.Kind.(ShapeKind)
	if !ok {
		return ErrNotAShape
	}
	path := geom.NewVectorPath()
	path.Commands = append(path.Commands, cmds...)
	shapeKind.Shape.Path = path
	n.Kind = shapeKind
	s.syncDerived(id)
	return nil
}

// MoveNode reattaches a node under a new parent at a new index.
type MoveNode struct {
	ID                   NodeID
	OldParent, NewParent NodeID
	OldIndex, NewIndex   int
}

func (c *MoveNode) Do(s *Scene) error {
	return s.MoveNode(c.ID, c.NewParent, c.NewIndex)
}

func (c *MoveNode) Undo(s *Scene) error {
	return s.MoveNode(c.ID, c.OldParent, c.OldIndex)
}

// ReorderChild moves a node within its current sibling list.
type ReorderChild struct {
	ID                 NodeID
	OldIndex, NewIndex int
}

func (c *ReorderChild) Do(s *Scene) error   { return s.ReorderChild(c.ID, c.NewIndex) }
func (c *ReorderChild) Undo(s *Scene) error { return s.ReorderChild(c.ID, c.OldIndex) }

// ReorderSequencer moves a Shape node within the dense sequencer
// ordering.
type ReorderSequencer struct {
	ID                 NodeID
	OldIndex, NewIndex int
}

func (c *ReorderSequencer) Do(s *Scene) error {
	return s.ReorderSequencerShape(c.ID, c.NewIndex)
}

func (c *ReorderSequencer) Undo(s *Scene) error {
	return s.ReorderSequencerShape(c.ID, c.OldIndex)
}

// SetRoutingOverrides replaces a Shape node's per-object routing
// overrides.
type SetRoutingOverrides struct {
	ID                               NodeID
	OldAllowReverse, NewAllowReverse *bool
	OldEntryExit, NewEntryExit       *route.EntryExitMode
	OldTieMode, NewTieMode           *route.TieMode
}

func (c *SetRoutingOverrides) Do(s *Scene) error {
	return s.SetObjectRoutingOverrides(c.ID, c.NewAllowReverse, c.NewEntryExit, c.NewTieMode)
}

func (c *SetRoutingOverrides) Undo(s *Scene) error {
	return s.SetObjectRoutingOverrides(c.ID, c.OldAllowReverse, c.OldEntryExit, c.OldTieMode)
}

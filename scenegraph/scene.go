package scenegraph

import (
	"sort"

	"github.com/gogpu/stitchengine/export"
	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/route"
	"github.com/gogpu/stitchengine/stitch"
)

// SequenceTrack is the dense, independent-of-the-visual-tree ordering of
// Shape nodes that the route optimizer's StrictSequencer mode honors
// verbatim.
type SequenceTrack struct {
	OrderedNodeIDs []NodeID
}

// Scene owns the node tree and every structure derived from it: per-Shape
// routing metadata, embroidery objects, stitch blocks, and the sequence
// track. All derived state is kept in sync by the mutating operations
// below; nothing here is cached lazily.
type Scene struct {
	nodes        map[NodeID]*Node
	rootChildren []NodeID
	nextID       NodeID

	shapeMeta map[NodeID]*ShapeMeta
	objects   map[NodeID]EmbroideryObject
	blocks    map[NodeID]stitch.Block

	sequence SequenceTrack
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		nodes:     make(map[NodeID]*Node),
		nextID:    1,
		shapeMeta: make(map[NodeID]*ShapeMeta),
		objects:   make(map[NodeID]EmbroideryObject),
		blocks:    make(map[NodeID]stitch.Block),
	}
}

// Node returns the node with the given id, or false if it is not in the
// scene.
func (s *Scene) Node(id NodeID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// RootChildren returns the ordered ids of the nodes with no parent.
func (s *Scene) RootChildren() []NodeID {
	return append([]NodeID(nil), s.rootChildren...)
}

// ShapeMeta returns the routing metadata for a Shape node.
func (s *Scene) ShapeMeta(id NodeID) (*ShapeMeta, bool) {
	m, ok := s.shapeMeta[id]
	return m, ok
}

// EmbroideryObject returns the derived object for a Shape node.
func (s *Scene) EmbroideryObject(id NodeID) (EmbroideryObject, bool) {
	o, ok := s.objects[id]
	return o, ok
}

// StitchBlock returns the generated stitch block for a Shape node.
func (s *Scene) StitchBlock(id NodeID) (stitch.Block, bool) {
	b, ok := s.blocks[id]
	return b, ok
}

// SequenceTrack returns the dense sequencer ordering of Shape node ids.
func (s *Scene) SequenceTrack() SequenceTrack {
	return SequenceTrack{OrderedNodeIDs: append([]NodeID(nil), s.sequence.OrderedNodeIDs...)}
}

// StitchBlocksInSequence returns every Shape node's stitch block ordered
// by its dense sequencer index, the input the route optimizer's
// StrictSequencer mode consumes.
func (s *Scene) StitchBlocksInSequence() []stitch.Block {
	out := make([]stitch.Block, 0, len(s.sequence.OrderedNodeIDs))
	for _, id := range s.sequence.OrderedNodeIDs {
		if b, ok := s.blocks[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

// ToExportDesign renders the scene's currently visible shapes into a
// routed export.ExportDesign, ready for a format encoder. A shape
// contributes only if RenderList emits it (no hidden ancestor Layer) and
// it has a stitch block (a stroke or fill that actually produces
// stitches); a locked Layer does not exclude its shapes. Render order seeds route.Order's input; opts
// controls how that order is then optimized and assembled.
func (s *Scene) ToExportDesign(opts route.Options) (export.ExportDesign, error) {
	visible := s.RenderList()
	blocks := make([]stitch.Block, 0, len(visible))
	for _, entry := range visible {
		if b, ok := s.blocks[entry.NodeID]; ok {
			blocks = append(blocks, b)
		}
	}
	if len(blocks) == 0 {
		return export.ExportDesign{}, ErrEmptyExport
	}
	return route.Assemble(blocks, opts), nil
}

// AddNode inserts a new node under parent (noParent for a root child) at
// the end of its sibling list and returns its freshly assigned id.
func (s *Scene) AddNode(parent NodeID, name string, transform geom.Transform, kind Kind) (NodeID, error) {
	id := s.nextID
	if err := s.AddNodeWithID(id, parent, name, transform, kind); err != nil {
		return 0, err
	}
	s.nextID++
	return id, nil
}

// AddNodeWithID inserts a node under a caller-chosen id, used by undo to
// restore a node at the id it originally held.
func (s *Scene) AddNodeWithID(id, parent NodeID, name string, transform geom.Transform, kind Kind) error {
	if _, exists := s.nodes[id]; exists {
		return ErrDuplicateID
	}
	if parent != noParent {
		if _, ok := s.nodes[parent]; !ok {
			return ErrNodeNotFound
		}
	}

	n := &Node{ID: id, Name: name, Transform: transform, Kind: kind, Parent: parent}
	s.nodes[id] = n
	if parent == noParent {
		s.rootChildren = append(s.rootChildren, id)
	} else {
		s.nodes[parent].Children = append(s.nodes[parent].Children, id)
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}

	if _, isShape := kind.(ShapeKind); isShape {
		s.shapeMeta[id] = &ShapeMeta{SequencerIndex: len(s.shapeMeta) + 1}
		s.renumberSequencer()
		s.syncDerived(id)
	}
	return nil
}

// RemoveNode deletes id and its entire subtree, along with every
// derived record (shape_meta, embroidery object, stitch block, sequence
// entry) for each removed Shape.
func (s *Scene) RemoveNode(id NodeID) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	s.detachFromParent(n)
	s.removeSubtree(id)
	s.renumberSequencer()
	return nil
}

func (s *Scene) detachFromParent(n *Node) {
	if n.Parent == noParent {
		s.rootChildren = removeID(s.rootChildren, n.ID)
		return
	}
	if parent, ok := s.nodes[n.Parent]; ok {
		parent.Children = removeID(parent.Children, n.ID)
	}
}

func (s *Scene) removeSubtree(id NodeID) {
	n, ok := s.nodes[id]
	if !ok {
		return
	}
	for _, child := range n.Children {
		s.removeSubtree(child)
	}
	delete(s.nodes, id)
	delete(s.shapeMeta, id)
	delete(s.objects, id)
	delete(s.blocks, id)
}

func removeID(ids []NodeID, target NodeID) []NodeID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// MoveNode reattaches id under newParent (noParent for a root child) at
// newIndex, refusing a move that would make id its own ancestor.
func (s *Scene) MoveNode(id, newParent NodeID, newIndex int) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	if newParent != noParent {
		if _, ok := s.nodes[newParent]; !ok {
			return ErrNodeNotFound
		}
		if newParent == id || s.isDescendant(newParent, id) {
			return ErrWouldCreateCycle
		}
	}

	s.detachFromParent(n)
	n.Parent = newParent

	if newParent == noParent {
		s.rootChildren = insertAt(s.rootChildren, newIndex, id)
	} else {
		parent := s.nodes[newParent]
		parent.Children = insertAt(parent.Children, newIndex, id)
	}
	s.syncSubtreeDerived(id)
	return nil
}

// isDescendant reports whether candidate is a descendant of ancestorID.
func (s *Scene) isDescendant(candidate, ancestorID NodeID) bool {
	n, ok := s.nodes[candidate]
	for ok {
		if n.Parent == ancestorID {
			return true
		}
		if n.Parent == noParent {
			return false
		}
		n, ok = s.nodes[n.Parent]
	}
	return false
}

func insertAt(ids []NodeID, index int, id NodeID) []NodeID {
	if index < 0 || index > len(ids) {
		index = len(ids)
	}
	out := make([]NodeID, 0, len(ids)+1)
	out = append(out, ids[:index]...)
	out = append(out, id)
	out = append(out, ids[index:]...)
	return out
}

// ReorderChild moves id to newIndex within its current sibling list.
func (s *Scene) ReorderChild(id NodeID, newIndex int) error {
	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	return s.MoveNode(id, n.Parent, newIndex)
}

// ReorderSequencerShape moves a Shape node to newIndex (1-based) in the
// dense sequencer ordering, renumbering every other Shape around it.
func (s *Scene) ReorderSequencerShape(id NodeID, newIndex int) error {
	if _, ok := s.shapeMeta[id]; !ok {
		return ErrNotAShape
	}
	s.relocateSequencer(id, newIndex)
	return nil
}

// renumberSequencer reassigns dense 1..N sequencer indices over every
// Shape node, preserving current relative order.
func (s *Scene) renumberSequencer() {
	ids := s.sortedSequencerIDs()
	s.applySequencerOrder(ids)
}

// relocateSequencer moves movingID to newIndex (1-based) in the dense
// ordering before renumbering everyone else around it.
func (s *Scene) relocateSequencer(movingID NodeID, newIndex int) {
	ids := removeID(s.sortedSequencerIDs(), movingID)
	if newIndex < 1 {
		newIndex = 1
	}
	if newIndex > len(ids)+1 {
		newIndex = len(ids) + 1
	}
	ids = insertAt(ids, newIndex-1, movingID)
	s.applySequencerOrder(ids)
}

func (s *Scene) sortedSequencerIDs() []NodeID {
	ids := make([]NodeID, 0, len(s.shapeMeta))
	for id := range s.shapeMeta {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.shapeMeta[ids[i]].SequencerIndex < s.shapeMeta[ids[j]].SequencerIndex
	})
	return ids
}

func (s *Scene) applySequencerOrder(ids []NodeID) {
	for i, id := range ids {
		s.shapeMeta[id].SequencerIndex = i + 1
	}
	s.sequence = SequenceTrack{OrderedNodeIDs: ids}
}

// SetObjectRoutingOverrides updates the per-object routing overrides
// recorded in a Shape node's ShapeMeta.
func (s *Scene) SetObjectRoutingOverrides(id NodeID, allowReverse *bool, entryExit *route.EntryExitMode, tieMode *route.TieMode) error {
	meta, ok := s.shapeMeta[id]
	if !ok {
		return ErrNotAShape
	}
	meta.AllowReverseOverride = allowReverse
	meta.EntryExitOverride = entryExit
	meta.TieModeOverride = tieMode
	return nil
}

// WorldTransform composes id's transform with every ancestor's, parent
// first.
func (s *Scene) WorldTransform(id NodeID) (geom.Matrix, error) {
	n, ok := s.nodes[id]
	if !ok {
		return geom.Matrix{}, ErrNodeNotFound
	}
	var chain []*Node
	for cur := n; ; {
		chain = append(chain, cur)
		if cur.Parent == noParent {
			break
		}
		cur = s.nodes[cur.Parent]
	}
	// chain is leaf-to-root; compose root-first.
	m := geom.IdentityMatrix()
	for i := len(chain) - 1; i >= 0; i-- {
		m = m.Multiply(chain[i].Transform.Matrix())
	}
	return m, nil
}

// RenderEntry is one emitted Shape during a RenderList walk.
type RenderEntry struct {
	NodeID         NodeID
	WorldTransform geom.Matrix
}

// RenderList walks the tree depth-first, skipping subtrees hidden by an
// ancestor Layer, and emits every visible Shape with its composed world
// transform.
func (s *Scene) RenderList() []RenderEntry {
	var out []RenderEntry
	for _, id := range s.rootChildren {
		s.walkRender(id, geom.IdentityMatrix(), false, &out)
	}
	return out
}

func (s *Scene) walkRender(id NodeID, parentWorld geom.Matrix, hidden bool, out *[]RenderEntry) {
	n := s.nodes[id]
	world := parentWorld.Multiply(n.Transform.Matrix())

	nodeHidden := hidden
	if lk, ok := n.Kind.(LayerKind); ok && !lk.Visible {
		nodeHidden = true
	}

	if shapeKind, ok := n.Kind.(ShapeKind); ok {
		_ = shapeKind
		if !nodeHidden {
			*out = append(*out, RenderEntry{NodeID: id, WorldTransform: world})
		}
	}
	for _, child := range n.Children {
		s.walkRender(child, world, nodeHidden, out)
	}
}

// isEffectivelyHiddenOrLocked reports whether any ancestor Layer (or the
// node itself, if it is a Layer) has visible=false or locked=true.
func (s *Scene) isEffectivelyHiddenOrLocked(id NodeID) (hidden, locked bool) {
	for cur, ok := s.nodes[id]; ok; cur, ok = s.nodes[cur.Parent] {
		if lk, isLayer := cur.Kind.(LayerKind); isLayer {
			if !lk.Visible {
				hidden = true
			}
			if lk.Locked {
				locked = true
			}
		}
		if cur.Parent == noParent {
			break
		}
	}
	return hidden, locked
}

// HitTest returns the topmost Shape node under (x,y), iterating the tree
// depth-first in reverse (later siblings and deeper children first,
// matching on-top-wins paint order), skipping effectively hidden nodes.
func (s *Scene) HitTest(x, y float64) (NodeID, bool) {
	pt := geom.Point{X: x, Y: y}
	for i := len(s.rootChildren) - 1; i >= 0; i-- {
		if id, ok := s.hitTestWalk(s.rootChildren[i], geom.IdentityMatrix(), pt); ok {
			return id, true
		}
	}
	return 0, false
}

const hitTestProximityMM = 0.5

func (s *Scene) hitTestWalk(id NodeID, parentWorld geom.Matrix, pt geom.Point) (NodeID, bool) {
	n := s.nodes[id]
	world := parentWorld.Multiply(n.Transform.Matrix())

	if lk, ok := n.Kind.(LayerKind); ok && !lk.Visible {
		return 0, false
	}

	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit, ok := s.hitTestWalk(n.Children[i], world, pt); ok {
			return hit, true
		}
	}

	shapeKind, ok := n.Kind.(ShapeKind)
	if !ok {
		return 0, false
	}
	path := shapeKind.Shape.ToVectorPath().Transform(world)
	box := path.BoundingBox(flattenTolerance)
	inflated := geom.Rect{
		MinX: box.MinX - hitTestProximityMM, MinY: box.MinY - hitTestProximityMM,
		MaxX: box.MaxX + hitTestProximityMM, MaxY: box.MaxY + hitTestProximityMM,
	}
	if !inflated.Contains(pt) {
		return 0, false
	}
	if path.Closed {
		if path.ContainsPoint(pt, flattenTolerance) {
			return id, true
		}
		return 0, false
	}
	for _, p := range path.Flatten(flattenTolerance) {
		if p.Distance(pt) <= hitTestProximityMM {
			return id, true
		}
	}
	return 0, false
}

// syncDerived recomputes the embroidery object and stitch block for a
// single Shape node after a mutation that can affect either: transform,
// kind, or path-shaped data changes.
func (s *Scene) syncDerived(id NodeID) {
	n, ok := s.nodes[id]
	if !ok {
		return
	}
	meta, isShape := s.shapeMeta[id]
	if !isShape {
		return
	}
	world, err := s.WorldTransform(id)
	if err != nil {
		return
	}
	obj, ok := deriveEmbroideryObject(n, world)
	if !ok {
		return
	}
	s.objects[id] = obj
	s.blocks[id] = generateStitchBlock(obj, meta.SequencerIndex)
}

// SyncAllDerived recomputes every Shape node's embroidery object and
// stitch block. Nothing in this package calls it: commands and subtree
// restore re-sync through syncDerived, node by node.
func (s *Scene) SyncAllDerived() {
	for id := range s.shapeMeta {
		s.syncDerived(id)
	}
}

// nodeSnapshot is one node's linkage-free state, captured depth-first
// for a Subtree snapshot.
type nodeSnapshot struct {
	node Node
	meta *ShapeMeta // copy, nil for non-Shape nodes
}

// Subtree is everything RemoveNode needs to reverse itself: the removed
// node's own state plus the position it occupied in its parent.
type Subtree struct {
	nodes  []nodeSnapshot // depth-first, root of the removed subtree first
	parent NodeID
	index  int
}

// snapshotSubtree captures id and every descendant, depth-first, along
// with id's position among its current siblings.
func (s *Scene) snapshotSubtree(id NodeID) (Subtree, error) {
	n, ok := s.nodes[id]
	if !ok {
		return Subtree{}, ErrNodeNotFound
	}
	sub := Subtree{parent: n.Parent, index: s.siblingIndex(n)}
	s.collectSnapshot(id, &sub.nodes)
	return sub, nil
}

func (s *Scene) siblingIndex(n *Node) int {
	siblings := s.rootChildren
	if n.Parent != noParent {
		siblings = s.nodes[n.Parent].Children
	}
	for i, id := range siblings {
		if id == n.ID {
			return i
		}
	}
	return len(siblings)
}

func (s *Scene) collectSnapshot(id NodeID, out *[]nodeSnapshot) {
	n := s.nodes[id]
	cp := *n
	cp.Children = append([]NodeID(nil), n.Children...)

	var metaCopy *ShapeMeta
	if meta, ok := s.shapeMeta[id]; ok {
		m := *meta
		metaCopy = &m
	}
	*out = append(*out, nodeSnapshot{node: cp, meta: metaCopy})
	for _, child := range n.Children {
		s.collectSnapshot(child, out)
	}
}

// restoreSubtree re-inserts a previously captured Subtree at its
// original parent and index, relinking every node and shape_meta entry,
// then re-syncs derived state for every restored Shape.
func (s *Scene) restoreSubtree(sub Subtree) error {
	if len(sub.nodes) == 0 {
		return nil
	}
	for _, snap := range sub.nodes {
		n := snap.node
		s.nodes[n.ID] = &n
		if n.ID >= s.nextID {
			s.nextID = n.ID + 1
		}
		if snap.meta != nil {
			m := *snap.meta
			s.shapeMeta[n.ID] = &m
		}
	}

	root := sub.nodes[0].node
	if root.Parent == noParent {
		s.rootChildren = insertAt(s.rootChildren, sub.index, root.ID)
	} else {
		parent, ok := s.nodes[root.Parent]
		if !ok {
			return ErrNodeNotFound
		}
		parent.Children = insertAt(parent.Children, sub.index, root.ID)
	}

	s.renumberSequencer()
	for _, snap := range sub.nodes {
		if snap.meta != nil {
			s.syncDerived(snap.node.ID)
		}
	}
	return nil
}

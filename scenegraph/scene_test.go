package scenegraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/stitchengine/export"
	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/route"
	"github.com/gogpu/stitchengine/shapes"
	"github.com/gogpu/stitchengine/stitch"
)

func shapeNodeKind() Kind {
	return ShapeKind{
		Shape:  shapes.NewRect(10, 10, 0),
		Stitch: stitch.DefaultParams(),
	}
}

func TestAddNodeAssignsMonotonicIDs(t *testing.T) {
	s := New()
	id1, err := s.AddNode(0, "a", geom.IdentityTransform(), GroupKind{})
	require.NoError(t, err)
	id2, err := s.AddNode(0, "b", geom.IdentityTransform(), GroupKind{})
	require.NoError(t, err)
	require.Less(t, id1, id2)
	require.Equal(t, []NodeID{id1, id2}, s.RootChildren())
}

func TestAddShapeNodeCreatesDerivedRecords(t *testing.T) {
	s := New()
	id, err := s.AddNode(0, "sq", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	meta, ok := s.ShapeMeta(id)
	require.True(t, ok)
	require.Equal(t, 1, meta.SequencerIndex)

	_, ok = s.EmbroideryObject(id)
	require.True(t, ok)
	_, ok = s.StitchBlock(id)
	require.True(t, ok)

	track := s.SequenceTrack()
	require.Equal(t, []NodeID{id}, track.OrderedNodeIDs)
}

func TestRemoveNodeRemovesSubtreeAndDerivedRecords(t *testing.T) {
	s := New()
	parent, err := s.AddNode(0, "group", geom.IdentityTransform(), GroupKind{})
	require.NoError(t, err)
	child, err := s.AddNode(parent, "sq", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	require.NoError(t, s.RemoveNode(parent))

	_, ok := s.Node(parent)
	require.False(t, ok)
	_, ok = s.Node(child)
	require.False(t, ok)
	_, ok = s.ShapeMeta(child)
	require.False(t, ok)
}

func TestMoveNodeRejectsCycle(t *testing.T) {
	s := New()
	parent, err := s.AddNode(0, "parent", geom.IdentityTransform(), GroupKind{})
	require.NoError(t, err)
	child, err := s.AddNode(parent, "child", geom.IdentityTransform(), GroupKind{})
	require.NoError(t, err)

	err = s.MoveNode(parent, child, 0)
	require.ErrorIs(t, err, ErrWouldCreateCycle)
}

func TestMoveNodeReparents(t *testing.T) {
	s := New()
	a, err := s.AddNode(0, "a", geom.IdentityTransform(), GroupKind{})
	require.NoError(t, err)
	b, err := s.AddNode(0, "b", geom.IdentityTransform(), GroupKind{})
	require.NoError(t, err)
	child, err := s.AddNode(a, "c", geom.IdentityTransform(), GroupKind{})
	require.NoError(t, err)

	require.NoError(t, s.MoveNode(child, b, 0))

	n, ok := s.Node(child)
	require.True(t, ok)
	require.Equal(t, b, n.Parent)

	bNode, _ := s.Node(b)
	require.Equal(t, []NodeID{child}, bNode.Children)
}

func TestReorderSequencerShapeRenumbersDensely(t *testing.T) {
	s := New()
	first, err := s.AddNode(0, "1", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)
	second, err := s.AddNode(0, "2", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	require.NoError(t, s.ReorderSequencerShape(second, 1))

	m1, _ := s.ShapeMeta(first)
	m2, _ := s.ShapeMeta(second)
	require.Equal(t, 1, m2.SequencerIndex)
	require.Equal(t, 2, m1.SequencerIndex)
}

func TestWorldTransformComposesParentFirst(t *testing.T) {
	s := New()
	parent, err := s.AddNode(0, "parent", geom.Transform{X: 10, Y: 0, ScaleX: 1, ScaleY: 1}, GroupKind{})
	require.NoError(t, err)
	child, err := s.AddNode(parent, "child", geom.Transform{X: 0, Y: 5, ScaleX: 1, ScaleY: 1}, GroupKind{})
	require.NoError(t, err)

	world, err := s.WorldTransform(child)
	require.NoError(t, err)
	require.Equal(t, 10.0, world.Tx)
	require.Equal(t, 5.0, world.Ty)
}

func TestRenderListSkipsHiddenLayer(t *testing.T) {
	s := New()
	hiddenLayer, err := s.AddNode(0, "hidden", geom.IdentityTransform(), LayerKind{Name: "L", Visible: false})
	require.NoError(t, err)
	_, err = s.AddNode(hiddenLayer, "sq", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	visibleLayer, err := s.AddNode(0, "visible", geom.IdentityTransform(), LayerKind{Name: "L2", Visible: true})
	require.NoError(t, err)
	visibleShape, err := s.AddNode(visibleLayer, "sq2", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	entries := s.RenderList()
	require.Len(t, entries, 1)
	require.Equal(t, visibleShape, entries[0].NodeID)
}

func TestToExportDesignReturnsEmptyExportErrorForHiddenLayer(t *testing.T) {
	s := New()
	hiddenLayer, err := s.AddNode(0, "hidden", geom.IdentityTransform(), LayerKind{Name: "L", Visible: false})
	require.NoError(t, err)
	_, err = s.AddNode(hiddenLayer, "sq", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	_, err = s.ToExportDesign(route.DefaultOptions())
	require.ErrorIs(t, err, ErrEmptyExport)
}

func TestToExportDesignReturnsEmptyExportErrorForEmptyScene(t *testing.T) {
	s := New()
	_, err := s.ToExportDesign(route.DefaultOptions())
	require.ErrorIs(t, err, ErrEmptyExport)
}

func TestToExportDesignRoutesVisibleShapes(t *testing.T) {
	s := New()
	_, err := s.AddNode(0, "sq", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	design, err := s.ToExportDesign(route.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, design.Stitches)
	require.Equal(t, export.End, design.Stitches[len(design.Stitches)-1].StitchType)
}

func TestToExportDesignExcludesShapesInHiddenLayerButKeepsVisibleOnes(t *testing.T) {
	s := New()
	hiddenLayer, err := s.AddNode(0, "hidden", geom.IdentityTransform(), LayerKind{Name: "L", Visible: false})
	require.NoError(t, err)
	_, err = s.AddNode(hiddenLayer, "sq", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	_, err = s.AddNode(0, "visible", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	design, err := s.ToExportDesign(route.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, design.Stitches)
}

func TestHitTestFindsTopmostShape(t *testing.T) {
	s := New()
	_, err := s.AddNode(0, "bottom", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)
	top, err := s.AddNode(0, "top", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	hit, ok := s.HitTest(5, 5)
	require.True(t, ok)
	require.Equal(t, top, hit)
}

func TestHitTestMissesOutsideShape(t *testing.T) {
	s := New()
	_, err := s.AddNode(0, "sq", geom.IdentityTransform(), shapeNodeKind())
	require.NoError(t, err)

	_, ok := s.HitTest(100, 100)
	require.False(t, ok)
}

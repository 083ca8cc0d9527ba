package sceneio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalScene = `{
  "children": [
    {
      "kind": "layer",
      "name": "Layer 1",
      "children": [
        {
          "kind": "shape",
          "name": "square",
          "shape": {"type": "rect", "width": 10, "height": 10},
          "fill": {"r": 255, "a": 255},
          "stitch": {"type": "running", "density": 0.4}
        }
      ]
    }
  ]
}`

func TestLoadBuildsVisibleShape(t *testing.T) {
	s, err := Load(strings.NewReader(minimalScene))
	require.NoError(t, err)
	require.Len(t, s.RenderList(), 1)
}

func TestLoadHiddenLayerIsNotInRenderList(t *testing.T) {
	doc := `{
		"children": [
			{"kind": "layer", "name": "L", "visible": false, "children": [
				{"kind": "shape", "name": "sq",
				 "shape": {"type": "rect", "width": 5, "height": 5},
				 "stitch": {"type": "running"}}
			]}
		]
	}`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Empty(t, s.RenderList())
}

func TestLoadRejectsUnknownShapeType(t *testing.T) {
	doc := `{"children": [{"kind": "shape", "name": "x", "shape": {"type": "hexagon"}}]}`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	doc := `{"children": [{"kind": "sprocket", "name": "x"}]}`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadNestedGroupsPreserveHierarchy(t *testing.T) {
	doc := `{
		"children": [
			{"kind": "group", "name": "g", "children": [
				{"kind": "shape", "name": "sq",
				 "shape": {"type": "ellipse", "radius_x": 3, "radius_y": 3},
				 "stitch": {"type": "running"}}
			]}
		]
	}`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, s.RenderList(), 1)
}

func TestLoadPathShape(t *testing.T) {
	doc := `{
		"children": [
			{"kind": "shape", "name": "p",
			 "shape": {"type": "path", "path": [
				{"op": "move", "x": 0, "y": 0},
				{"op": "line", "x": 5, "y": 0},
				{"op": "cubic", "c1x": 5, "c1y": 2, "c2x": 0, "c2y": 2, "x": 0, "y": 0},
				{"op": "close"}
			 ]},
			 "stitch": {"type": "running"}}
		]
	}`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, s.RenderList(), 1)
}

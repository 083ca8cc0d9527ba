package scenegraph

import (
	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/stitch"
)

// EmbroideryObject is the derived, flattened representation of a Shape
// node that the stitch generators and route optimizer consume: its
// world-space outline plus the paint/stitch configuration that produced
// it.
type EmbroideryObject struct {
	NodeID         NodeID
	WorldTransform geom.Matrix
	Path           *geom.VectorPath
	FillColor      geom.Color
	Params         stitch.Params
}

// flattenTolerance is the deflection tolerance used whenever the scene
// flattens a world-space path for stitch generation or hit-testing.
const flattenTolerance = geom.DefaultFlattenTolerance

// deriveEmbroideryObject builds the derived object for a Shape node
// already resolved to its world transform. ok is false for non-Shape
// nodes, which carry no embroidery object.
func deriveEmbroideryObject(n *Node, world geom.Matrix) (EmbroideryObject, bool) {
	shapeKind, ok := n.Kind.(ShapeKind)
	if !ok {
		return EmbroideryObject{}, false
	}
	path := shapeKind.Shape.ToVectorPath().Transform(world)

	color := geom.Black
	switch {
	case shapeKind.Fill != nil:
		color = *shapeKind.Fill
	case shapeKind.Stroke != nil:
		color = *shapeKind.Stroke
	}

	return EmbroideryObject{
		NodeID:         n.ID,
		WorldTransform: world,
		Path:           path,
		FillColor:      color,
		Params:         shapeKind.Stitch,
	}, true
}

// generateStitchBlock runs the stitch compiler selected by obj.Params.Type
// against obj.Path and wraps the result as a routable Block.
func generateStitchBlock(obj EmbroideryObject, sourceOrder int) stitch.Block {
	var pts []stitch.Point
	switch obj.Params.Type {
	case stitch.TypeSatin:
		pts = satinFromPath(obj.Path, obj.Params)
	case stitch.TypeTatami:
		pts = shapedFill(stitch.Tatami, obj.Path, obj.Params)
	case stitch.TypeContour:
		pts = shapedFill(stitch.Contour, obj.Path, obj.Params)
	case stitch.TypeSpiral:
		pts = shapedFill(stitch.Spiral, obj.Path, obj.Params)
	case stitch.TypeMotif:
		pts = shapedFill(stitch.Motif, obj.Path, obj.Params)
	default: // stitch.TypeRunning
		pts = runningFromPath(obj.Path, obj.Params)
	}
	return stitch.Block{Color: obj.FillColor, Stitches: pts, SourceOrder: sourceOrder}
}

func runningFromPath(path *geom.VectorPath, params stitch.Params) []stitch.Point {
	length := params.Density
	if length <= 0 {
		length = stitch.MinDensity
	}
	return stitch.Running(path.Flatten(flattenTolerance), length)
}

// satinFromPath treats a satin Shape's path as two rail subpaths: the
// first two rings produced by flattening become R1 and R2. A path with
// fewer than two subpaths cannot be stitched as satin and yields no
// stitches.
func satinFromPath(path *geom.VectorPath, params stitch.Params) []stitch.Point {
	rings := path.FlattenSubpaths(flattenTolerance)
	if len(rings) < 2 {
		return nil
	}
	return stitch.Satin(rings[0], rings[1], params)
}

// fillGenerator is the common signature of the four ring-based fill
// compilers, letting generateStitchBlock share one post-fill shaping
// call across all of them.
type fillGenerator func(*geom.VectorPath, stitch.Params) []stitch.Point

func shapedFill(gen fillGenerator, path *geom.VectorPath, params stitch.Params) []stitch.Point {
	pts := gen(path, params)
	rings, ok := stitch.NormalizeRings(path, flattenTolerance)
	if !ok {
		return pts
	}
	return stitch.ApplyShaping(pts, rings, params)
}

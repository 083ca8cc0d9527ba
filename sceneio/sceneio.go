// Package sceneio loads a scenegraph.Scene from the flat JSON document
// the command-line tools read and write. The document is an internal
// convenience format, not a wire contract: it exists so cmd/stitchgen
// has something to point a file flag at.
package sceneio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/scenegraph"
	"github.com/gogpu/stitchengine/shapes"
	"github.com/gogpu/stitchengine/stitch"
)

// Document is the root of a scene file: an ordered forest of nodes.
type Document struct {
	Children []NodeDoc `json:"children"`
}

// TransformDoc is a node's local transform, rotation in degrees for
// readability in hand-edited files.
type TransformDoc struct {
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	RotationDeg float64 `json:"rotation_deg,omitempty"`
	ScaleX     float64 `json:"scale_x,omitempty"`
	ScaleY     float64 `json:"scale_y,omitempty"`
}

func (t *TransformDoc) toTransform() geom.Transform {
	if t == nil {
		return geom.IdentityTransform()
	}
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return geom.Transform{
		X: t.X, Y: t.Y,
		Rotation: t.RotationDeg * (3.141592653589793 / 180),
		ScaleX:   sx, ScaleY: sy,
	}
}

// ColorDoc is an RGBA color, 0..255 per channel.
type ColorDoc struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

func (c *ColorDoc) toColor() *geom.Color {
	if c == nil {
		return nil
	}
	return &geom.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// PathPointDoc is one command in a raw path shape.
type PathPointDoc struct {
	Op             string  `json:"op"` // move | line | cubic | close
	X              float64 `json:"x,omitempty"`
	Y              float64 `json:"y,omitempty"`
	C1X            float64 `json:"c1x,omitempty"`
	C1Y            float64 `json:"c1y,omitempty"`
	C2X            float64 `json:"c2x,omitempty"`
	C2Y            float64 `json:"c2y,omitempty"`
}

// ShapeDoc is the tagged-union geometry a shape node carries.
type ShapeDoc struct {
	Type         string         `json:"type"` // rect | ellipse | polygon | path
	Width        float64        `json:"width,omitempty"`
	Height       float64        `json:"height,omitempty"`
	CornerRadius float64        `json:"corner_radius,omitempty"`
	RadiusX      float64        `json:"radius_x,omitempty"`
	RadiusY      float64        `json:"radius_y,omitempty"`
	Sides        int            `json:"sides,omitempty"`
	Radius       float64        `json:"radius,omitempty"`
	Path         []PathPointDoc `json:"path,omitempty"`
}

func (d ShapeDoc) toShapeData() (shapes.Data, error) {
	switch d.Type {
	case "rect":
		return shapes.NewRect(d.Width, d.Height, d.CornerRadius), nil
	case "ellipse":
		return shapes.NewEllipse(d.RadiusX, d.RadiusY), nil
	case "polygon":
		return shapes.NewPolygon(d.Sides, d.Radius), nil
	case "path":
		p := geom.NewVectorPath()
		for _, cmd := range d.Path {
			switch cmd.Op {
			case "move":
				p.MoveTo(cmd.X, cmd.Y)
			case "line":
				p.LineTo(cmd.X, cmd.Y)
			case "cubic":
				p.CubicTo(cmd.C1X, cmd.C1Y, cmd.C2X, cmd.C2Y, cmd.X, cmd.Y)
			case "close":
				p.Close()
			default:
				return shapes.Data{}, fmt.Errorf("sceneio: unknown path op %q", cmd.Op)
			}
		}
		return shapes.NewPath(p), nil
	default:
		return shapes.Data{}, fmt.Errorf("sceneio: unknown shape type %q", d.Type)
	}
}

// StitchDoc configures a shape's stitch generator.
type StitchDoc struct {
	Type              string  `json:"type"` // running | satin | tatami | contour | spiral | motif
	Density           float64 `json:"density,omitempty"`
	Angle             float64 `json:"angle,omitempty"`
	FillPhase         float64 `json:"fill_phase,omitempty"`
	UnderlayMode      string  `json:"underlay_mode,omitempty"`
	UnderlaySpacingMM float64 `json:"underlay_spacing_mm,omitempty"`
	PullCompensation  float64 `json:"pull_compensation,omitempty"`
	CompensationMode  string  `json:"compensation_mode,omitempty"`
	CompensationXMM   float64 `json:"compensation_x_mm,omitempty"`
	CompensationYMM   float64 `json:"compensation_y_mm,omitempty"`
	ContourStepMM     float64 `json:"contour_step_mm,omitempty"`
	MotifPattern      string  `json:"motif_pattern,omitempty"`
	MotifScale        float64 `json:"motif_scale,omitempty"`
	FillStartMode     string  `json:"fill_start_mode,omitempty"`
	EdgeWalkOnFill    bool    `json:"edge_walk_on_fill,omitempty"`
	MinSegmentMM      float64 `json:"min_segment_mm,omitempty"`
	OverlapMM         float64 `json:"overlap_mm,omitempty"`
}

var stitchTypes = map[string]stitch.Type{
	"running": stitch.TypeRunning, "satin": stitch.TypeSatin,
	"tatami": stitch.TypeTatami, "contour": stitch.TypeContour,
	"spiral": stitch.TypeSpiral, "motif": stitch.TypeMotif,
}

var underlayModes = map[string]stitch.UnderlayMode{
	"none": stitch.UnderlayNone, "center_walk": stitch.UnderlayCenterWalk,
	"edge_walk": stitch.UnderlayEdgeWalk, "zigzag": stitch.UnderlayZigzag,
	"center_edge": stitch.UnderlayCenterEdge, "center_zigzag": stitch.UnderlayCenterZigzag,
	"edge_zigzag": stitch.UnderlayEdgeZigzag, "full": stitch.UnderlayFull,
}

var compensationModes = map[string]stitch.CompensationMode{
	"off": stitch.CompensationOff, "auto": stitch.CompensationAuto,
	"directional": stitch.CompensationDirectional,
}

var motifPatterns = map[string]stitch.MotifPattern{
	"diamond": stitch.MotifDiamond, "wave": stitch.MotifWave, "triangle": stitch.MotifTriangle,
}

var fillStartModes = map[string]stitch.FillStartMode{
	"auto": stitch.FillStartAuto, "center": stitch.FillStartCenter, "edge": stitch.FillStartEdge,
}

func (d *StitchDoc) toParams() (stitch.Params, error) {
	p := stitch.DefaultParams()
	if d == nil {
		return p, nil
	}
	if d.Type != "" {
		t, ok := stitchTypes[d.Type]
		if !ok {
			return p, fmt.Errorf("sceneio: unknown stitch type %q", d.Type)
		}
		p.Type = t
	}
	if d.UnderlayMode != "" {
		m, ok := underlayModes[d.UnderlayMode]
		if !ok {
			return p, fmt.Errorf("sceneio: unknown underlay mode %q", d.UnderlayMode)
		}
		p.UnderlayMode = m
	}
	if d.CompensationMode != "" {
		m, ok := compensationModes[d.CompensationMode]
		if !ok {
			return p, fmt.Errorf("sceneio: unknown compensation mode %q", d.CompensationMode)
		}
		p.CompensationMode = m
	}
	if d.MotifPattern != "" {
		m, ok := motifPatterns[d.MotifPattern]
		if !ok {
			return p, fmt.Errorf("sceneio: unknown motif pattern %q", d.MotifPattern)
		}
		p.MotifPattern = m
	}
	if d.FillStartMode != "" {
		m, ok := fillStartModes[d.FillStartMode]
		if !ok {
			return p, fmt.Errorf("sceneio: unknown fill start mode %q", d.FillStartMode)
		}
		p.FillStartMode = m
	}
	p.Density = orDefault(d.Density, p.Density)
	p.Angle = d.Angle
	p.FillPhase = d.FillPhase
	p.UnderlaySpacingMM = d.UnderlaySpacingMM
	p.PullCompensation = d.PullCompensation
	p.CompensationXMM = d.CompensationXMM
	p.CompensationYMM = d.CompensationYMM
	p.ContourStepMM = d.ContourStepMM
	p.MotifScale = orDefault(d.MotifScale, p.MotifScale)
	p.EdgeWalkOnFill = d.EdgeWalkOnFill
	p.MinSegmentMM = d.MinSegmentMM
	p.OverlapMM = d.OverlapMM
	return p, nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// NodeDoc is one node in the document tree. Exactly the fields for Kind
// are meaningful; the rest are left zero.
type NodeDoc struct {
	Kind      string        `json:"kind"` // layer | group | shape
	Name      string        `json:"name"`
	Transform *TransformDoc `json:"transform,omitempty"`

	// layer
	Visible *bool `json:"visible,omitempty"`
	Locked  bool  `json:"locked,omitempty"`

	// shape
	Shape       *ShapeDoc  `json:"shape,omitempty"`
	Fill        *ColorDoc  `json:"fill,omitempty"`
	Stroke      *ColorDoc  `json:"stroke,omitempty"`
	StrokeWidth float64    `json:"stroke_width,omitempty"`
	Stitch      *StitchDoc `json:"stitch,omitempty"`

	Children []NodeDoc `json:"children,omitempty"`
}

func (n NodeDoc) toKind() (scenegraph.Kind, error) {
	switch n.Kind {
	case "layer":
		visible := true
		if n.Visible != nil {
			visible = *n.Visible
		}
		return scenegraph.LayerKind{Name: n.Name, Visible: visible, Locked: n.Locked}, nil
	case "group":
		return scenegraph.GroupKind{}, nil
	case "shape":
		if n.Shape == nil {
			return nil, fmt.Errorf("sceneio: shape node %q has no shape geometry", n.Name)
		}
		data, err := n.Shape.toShapeData()
		if err != nil {
			return nil, err
		}
		stitchParams, err := n.Stitch.toParams()
		if err != nil {
			return nil, err
		}
		return scenegraph.ShapeKind{
			Shape:       data,
			Fill:        n.Fill.toColor(),
			Stroke:      n.Stroke.toColor(),
			StrokeWidth: n.StrokeWidth,
			Stitch:      stitchParams,
		}, nil
	default:
		return nil, fmt.Errorf("sceneio: unknown node kind %q", n.Kind)
	}
}

// Load decodes r as a Document and builds a fresh scenegraph.Scene from
// it, in document order.
func Load(r io.Reader) (*scenegraph.Scene, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("sceneio: decode: %w", err)
	}
	s := scenegraph.New()
	for _, child := range doc.Children {
		if err := addNode(s, 0, child); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func addNode(s *scenegraph.Scene, parent scenegraph.NodeID, n NodeDoc) error {
	kind, err := n.toKind()
	if err != nil {
		return err
	}
	id, err := s.AddNode(parent, n.Name, n.Transform.toTransform(), kind)
	if err != nil {
		return fmt.Errorf("sceneio: adding node %q: %w", n.Name, err)
	}
	for _, child := range n.Children {
		if err := addNode(s, id, child); err != nil {
			return err
		}
	}
	return nil
}

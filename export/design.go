// Package export defines ExportDesign, the flattened stitch stream and
// color table that route assembly produces and the DST/PES encoders
// consume, plus its external JSON wire form.
package export

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/gogpu/stitchengine/geom"
)

// StitchType tags one ExportStitch's role in the needle stream.
type StitchType int

const (
	Normal StitchType = iota
	Jump
	Trim
	ColorChange
	End
)

var stitchTypeNames = [...]string{"Normal", "Jump", "Trim", "ColorChange", "End"}

func (t StitchType) String() string {
	if int(t) < 0 || int(t) >= len(stitchTypeNames) {
		return fmt.Sprintf("StitchType(%d)", int(t))
	}
	return stitchTypeNames[t]
}

// MarshalJSON encodes t as its string name.
func (t StitchType) MarshalJSON() ([]byte, error) {
	if int(t) < 0 || int(t) >= len(stitchTypeNames) {
		return nil, fmt.Errorf("invalid stitch_type %d", int(t))
	}
	return json.Marshal(stitchTypeNames[t])
}

// UnmarshalJSON decodes a stitch_type string name.
func (t *StitchType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid stitch_type: %w", err)
	}
	for i, name := range stitchTypeNames {
		if name == s {
			*t = StitchType(i)
			return nil
		}
	}
	return fmt.Errorf("invalid stitch_type %q", s)
}

// ExportStitch is one needle position in millimeters with its role.
type ExportStitch struct {
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	StitchType StitchType `json:"stitch_type"`
}

// exportColor is the wire form of geom.Color, using lowercase r/g/b/a
// field names rather than geom.Color's exported ones.
type exportColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// ExportDesign is the fully assembled, routed, machine-ready stitch
// file in its format-independent form: a name, a flat stitch stream
// (already carrying Jump/Trim/ColorChange/End markers), and the color
// table referenced in stitch order by each ColorChange.
type ExportDesign struct {
	Name     string
	Stitches []ExportStitch
	Colors   []geom.Color
}

type exportDesignWire struct {
	Name     string         `json:"name"`
	Stitches []ExportStitch `json:"stitches"`
	Colors   []exportColor  `json:"colors"`
}

// MarshalJSON writes d as its external wire schema.
func (d ExportDesign) MarshalJSON() ([]byte, error) {
	w := exportDesignWire{
		Name:     d.Name,
		Stitches: d.Stitches,
		Colors:   make([]exportColor, len(d.Colors)),
	}
	for i, c := range d.Colors {
		w.Colors[i] = exportColor{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads d from its external wire schema.
func (d *ExportDesign) UnmarshalJSON(data []byte) error {
	var w exportDesignWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("invalid design JSON: %w", err)
	}
	d.Name = w.Name
	d.Stitches = w.Stitches
	d.Colors = make([]geom.Color, len(w.Colors))
	for i, c := range w.Colors {
		d.Colors[i] = geom.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return nil
}

// ColorChangeCount counts the ColorChange stitches in d's stream.
func (d ExportDesign) ColorChangeCount() int {
	var n int
	for _, s := range d.Stitches {
		if s.StitchType == ColorChange {
			n++
		}
	}
	return n
}

// UnitStitch is one stitch converted to 0.1mm integer coordinates, the
// unit both DST and PEC encode in.
type UnitStitch struct {
	X, Y       int32
	StitchType StitchType
}

// StitchesInUnits converts every stitch in d from mm to 0.1mm integer
// units, rounding to nearest.
func (d ExportDesign) StitchesInUnits() []UnitStitch {
	out := make([]UnitStitch, len(d.Stitches))
	for i, s := range d.Stitches {
		out[i] = UnitStitch{
			X:          int32(math.Round(s.X * 10)),
			Y:          int32(math.Round(s.Y * 10)),
			StitchType: s.StitchType,
		}
	}
	return out
}

// Extents returns the axis-aligned bounding box of every stitch in d,
// used by the PES encoder's coordinate-range check. ok is false for an
// empty design.
func (d ExportDesign) Extents() (minX, minY, maxX, maxY float64, ok bool) {
	if len(d.Stitches) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = d.Stitches[0].X, d.Stitches[0].Y
	maxX, maxY = minX, minY
	for _, s := range d.Stitches[1:] {
		if s.X < minX {
			minX = s.X
		}
		if s.X > maxX {
			maxX = s.X
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	return minX, minY, maxX, maxY, true
}

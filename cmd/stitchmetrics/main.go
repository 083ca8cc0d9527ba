// Command stitchmetrics reports route and stitch-quality metrics for a
// design. It accepts two input shapes: an export.ExportDesign document,
// or a bare running-path fixture ({"name": ..., "points": [[x,y], ...]})
// that it first compiles into running stitches itself.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/stitchengine/export"
	"github.com/gogpu/stitchengine/geom"
	"github.com/gogpu/stitchengine/metrics"
	"github.com/gogpu/stitchengine/stitch"
)

type output struct {
	Route   metrics.RouteMetrics   `json:"route"`
	Quality metrics.QualityMetrics `json:"quality"`
}

// runningFixture is the alternate input shape: a raw polyline to compile
// into running stitches before measuring.
type runningFixture struct {
	Name   string       `json:"name"`
	Points [][2]float64 `json:"points"`
}

func main() {
	var (
		input        = flag.String("input", "", "path to an export.ExportDesign or running-path fixture JSON document (required)")
		stitchLength = flag.Float64("stitch-length", 2.5, "target stitch length in mm, used for density and coverage metrics")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("missing required -input argument")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("reading %s: %v", *input, err)
	}

	design, err := loadDesign(data, *stitchLength)
	if err != nil {
		log.Fatal(err)
	}

	out := output{
		Route:   metrics.ComputeRouteMetrics(design),
		Quality: metrics.ComputeQualityMetrics(design, *stitchLength),
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("serializing metrics output: %v", err)
	}
	fmt.Println(string(encoded))
}

// loadDesign decodes data as an export.ExportDesign if it carries a
// "stitches" field, or as a runningFixture (a raw polyline compiled into
// running stitches via stitch.Running) if it carries "points" instead.
func loadDesign(data []byte, stitchLength float64) (export.ExportDesign, error) {
	var probe struct {
		Stitches json.RawMessage `json:"stitches"`
		Points   json.RawMessage `json:"points"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return export.ExportDesign{}, fmt.Errorf("invalid input JSON: %w", err)
	}

	if probe.Points != nil {
		var fixture runningFixture
		if err := json.Unmarshal(data, &fixture); err != nil {
			return export.ExportDesign{}, fmt.Errorf("invalid running-path fixture JSON: %w", err)
		}
		return designFromFixture(fixture, stitchLength), nil
	}

	var design export.ExportDesign
	if err := json.Unmarshal(data, &design); err != nil {
		return export.ExportDesign{}, fmt.Errorf("invalid ExportDesign JSON: %w", err)
	}
	return design, nil
}

func designFromFixture(fixture runningFixture, stitchLength float64) export.ExportDesign {
	points := make([]geom.Point, len(fixture.Points))
	for i, xy := range fixture.Points {
		points[i] = geom.Pt(xy[0], xy[1])
	}

	generated := stitch.Running(points, stitchLength)
	stitches := make([]export.ExportStitch, len(generated))
	for i, s := range generated {
		t := export.Normal
		switch {
		case s.IsTrim:
			t = export.Trim
		case s.IsJump:
			t = export.Jump
		}
		stitches[i] = export.ExportStitch{X: s.X, Y: s.Y, StitchType: t}
	}
	if len(stitches) > 0 {
		last := stitches[len(stitches)-1]
		stitches = append(stitches, export.ExportStitch{X: last.X, Y: last.Y, StitchType: export.End})
	}

	name := fixture.Name
	if name == "" {
		name = "running_path"
	}
	return export.ExportDesign{
		Name:     name,
		Stitches: stitches,
		Colors:   []geom.Color{{A: 255}},
	}
}

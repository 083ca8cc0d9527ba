// Command stitchgen renders a scene document into a machine-ready
// embroidery file (.dst or .pes, chosen by the output file's extension).
package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/stitchengine"
	"github.com/gogpu/stitchengine/format/dst"
	"github.com/gogpu/stitchengine/format/pes"
	"github.com/gogpu/stitchengine/route"
	"github.com/gogpu/stitchengine/sceneio"
)

func main() {
	var (
		input      = flag.String("scene", "", "path to a scene JSON document (required)")
		output     = flag.String("output", "", "path to write the .dst or .pes file (required)")
		optionsPath = flag.String("options", "", "optional path to a routing options JSON document")
		verbose    = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		stitchengine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *input == "" || *output == "" {
		log.Fatal("both -scene and -output are required")
	}

	opts := route.DefaultOptions()
	if *optionsPath != "" {
		loadOptions(*optionsPath, &opts)
	}

	sceneFile, err := os.Open(*input)
	if err != nil {
		log.Fatalf("opening scene file: %v", err)
	}
	defer sceneFile.Close()

	scene, err := sceneio.Load(sceneFile)
	if err != nil {
		log.Fatalf("loading scene: %v", err)
	}

	design, err := scene.ToExportDesign(opts)
	if err != nil {
		log.Fatalf("building export design: %v", err)
	}
	design.Name = strings.TrimSuffix(filepath.Base(*output), filepath.Ext(*output))

	var data []byte
	switch strings.ToLower(filepath.Ext(*output)) {
	case ".dst":
		data = dst.Encode(design)
	case ".pes":
		data, err = pes.Encode(design)
		if err != nil {
			log.Fatalf("encoding PES: %v", err)
		}
	default:
		log.Fatalf("unrecognized output extension %q, want .dst or .pes", filepath.Ext(*output))
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("writing output: %v", err)
	}
	log.Printf("wrote %s (%d stitches, %d bytes)", *output, len(design.Stitches), len(data))
}

func loadOptions(path string, opts *route.Options) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening options file: %v", err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(opts); err != nil {
		log.Fatalf("decoding options file: %v", err)
	}
}

// Package stitchengine is the root of an embroidery design engine: a
// scene graph of layers, groups, and shapes with undoable edits; a set
// of pure stitch-generation compilers (running, satin, and tatami/
// contour/spiral/motif fills); a route optimizer that orders and
// connects a design's stitch blocks with trims, jumps, color changes,
// and tie stitches; and byte-exact DST and PES binary exporters.
//
// # Overview
//
// A caller builds or loads a scenegraph.Scene, edits it through
// scenegraph.Command-based operations (undoable via scenegraph.History),
// and renders it with Scene.ToExportDesign. That call walks the
// currently visible shapes (locked layers included), compiles each one's geometry into
// stitches via the stitch package, and hands the resulting blocks to
// route.Assemble, which produces an export.ExportDesign: a flat,
// machine-ready stitch stream plus a color list. format/dst and
// format/pes turn that into the bytes a real embroidery machine reads.
//
// # Packages
//
//   - geom: points, transforms, vector paths, color
//   - shapes: lowers scene shape variants into geom.VectorPath
//   - stitch: pure geometry-to-stitch compilers and post-fill shaping
//   - scenegraph: the node tree, command journal, and undo/redo history
//   - route: block ordering, orientation, and full assembly into stitches
//   - export: the ExportDesign interop type shared by routing and the
//     format encoders
//   - format/dst, format/pes: binary writers for Tajima DST and Brother
//     PES v1
//   - metrics: route and stitch-quality measurements over an
//     export.ExportDesign
//   - sceneio: the JSON scene document cmd/stitchgen reads
//
// # Logging
//
// The package produces no log output by default. SetLogger installs a
// log/slog logger that Logger returns; the sub-packages do not emit
// records through it.
package stitchengine

// Package pes encodes an export.ExportDesign into the Brother PES v1
// container (CEmbOne + CSewSeg blocks) with an embedded PEC stitch
// block.
package pes

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/stitchengine/export"
)

// maxStitchCount is the largest stitch count a PES v1 CSewSeg block can
// carry (its count field is a u16).
const maxStitchCount = 65535

// maxCoordinateMM is the largest coordinate magnitude, in millimeters,
// that fits in PES's i16 0.1mm coordinate space.
const maxCoordinateMM = float64(32767) / 10

// defaultPECColorBlack is the PEC palette index substituted when a
// design carries no color information at all.
const defaultPECColorBlack = 20

// Encode renders design as a complete PES v1 file, or returns an error
// if the design exceeds PES's stitch-count or coordinate-range limits.
// No bytes are emitted on error.
func Encode(design export.ExportDesign) ([]byte, error) {
	units := design.StitchesInUnits()
	if len(units) > maxStitchCount {
		return nil, fmt.Errorf("PES format supports at most %d stitches, design has %d", maxStitchCount, len(units))
	}

	minX, minY, maxX, maxY, ok := design.Extents()
	if !ok {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	if minX < -maxCoordinateMM || maxX > maxCoordinateMM || minY < -maxCoordinateMM || maxY > maxCoordinateMM {
		return nil, fmt.Errorf(
			"PES format coordinate range is +/-%.1fmm, design extents are (%.1f, %.1f) to (%.1f, %.1f)",
			maxCoordinateMM, minX, minY, maxX, maxY)
	}

	var out []byte
	out = append(out, "#PES0001"...)

	pecOffsetPos := len(out)
	out = append(out, 0, 0, 0, 0) // patched below

	out = appendU16(out, 1) // hoop: 130x180mm
	out = appendU16(out, 1) // use existing design area
	out = appendU16(out, 1) // one CSewSeg block

	out = appendCEmbOne(out, minX, minY, maxX, maxY)
	out = appendCSewSeg(out, design, units)

	pecOffset := uint32(len(out))
	binary.LittleEndian.PutUint32(out[pecOffsetPos:], pecOffset)

	out = append(out, writePECBlock(design, units)...)
	return out, nil
}

func appendCEmbOne(out []byte, minX, minY, maxX, maxY float64) []byte {
	left := int16(math.Round(minX * 10))
	top := int16(math.Round(minY * 10))
	right := int16(math.Round(maxX * 10))
	bottom := int16(math.Round(maxY * 10))

	// Extents written twice, per the PES v1 CEmbOne layout.
	for i := 0; i < 2; i++ {
		out = appendS16(out, left)
		out = appendS16(out, top)
		out = appendS16(out, right)
		out = appendS16(out, bottom)
	}

	// Identity affine: scaleX, skewY, skewX, scaleY, translateX, translateY.
	out = appendF32(out, 1)
	out = appendF32(out, 0)
	out = appendF32(out, 0)
	out = appendF32(out, 1)
	out = appendF32(out, 0)
	out = appendF32(out, 0)
	return out
}

func appendCSewSeg(out []byte, design export.ExportDesign, units []export.UnitStitch) []byte {
	numColors := design.ColorChangeCount() + 1
	out = appendU16(out, uint16(numColors))

	for i, c := range design.Colors {
		out = appendU16(out, uint16(i))
		out = appendU16(out, uint16(nearestPECColor(c.R, c.G, c.B)))
	}
	if len(design.Colors) == 0 {
		out = appendU16(out, 0)
		out = appendU16(out, defaultPECColorBlack)
	}

	out = appendU16(out, uint16(len(units)))
	for _, u := range units {
		out = appendS16(out, int16(u.X))
		out = appendS16(out, int16(u.Y))
	}
	return out
}

func appendU16(out []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(out, v)
}

func appendS16(out []byte, v int16) []byte {
	return appendU16(out, uint16(v))
}

func appendF32(out []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
}

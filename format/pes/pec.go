package pes

import (
	"github.com/gogpu/stitchengine/export"
	"github.com/gogpu/stitchengine/internal/asciiname"
)

// pecColorListSize is the canonical size, in bytes, of the PEC color
// list region (label + padding + count byte + color indices) before
// the thumbnail/stitch area begins.
const pecColorListSize = 463

// writePECBlock renders design's embedded PEC block: label, color
// table, and the variable-length stitch stream.
func writePECBlock(design export.ExportDesign, units []export.UnitStitch) []byte {
	var pec []byte

	label := asciiname.PadOrTruncate(design.Name, 16)
	pec = append(pec, "LA:"...)
	pec = append(pec, label...)
	pec = append(pec, 0x0D)

	for i := 0; i < 12; i++ {
		pec = append(pec, 0x20)
	}

	numColors := design.ColorChangeCount() + 1
	if numColors > 255 {
		numColors = 255
	}
	pec = append(pec, byte(numColors-1))

	for _, c := range design.Colors {
		pec = append(pec, nearestPECColor(c.R, c.G, c.B))
	}
	for len(pec)-colorListHeaderLen < numColors {
		pec = append(pec, blackPaletteIndex)
	}

	if pad := pecColorListSize - len(pec); pad > 0 {
		for i := 0; i < pad; i++ {
			pec = append(pec, 0x20)
		}
	}

	pec = append(pec, encodePECStitches(design, units)...)
	return pec
}

// colorListHeaderLen is the byte length of the LA: label plus its 12
// bytes of padding plus the one color-count byte, i.e. the offset at
// which the per-color index bytes begin.
const colorListHeaderLen = len("LA:") + 16 + 1 /* \r */ + 12 + 1 /* count byte */

func encodePECStitches(design export.ExportDesign, units []export.UnitStitch) []byte {
	var data []byte
	var prevX, prevY int32

	for _, u := range units {
		dx, dy := u.X-prevX, u.Y-prevY
		switch u.StitchType {
		case export.Normal:
			data = encodePECStitch(data, dx, dy, false)
		case export.Jump, export.Trim:
			data = encodePECStitch(data, dx, dy, true)
		case export.ColorChange:
			data = append(data, 0xFE, 0xB0)
			if dx != 0 || dy != 0 {
				data = encodePECStitch(data, dx, dy, false)
			}
		case export.End:
			data = append(data, 0xFF)
		}
		prevX, prevY = u.X, u.Y
	}

	needsEnd := len(design.Stitches) == 0 ||
		design.Stitches[len(design.Stitches)-1].StitchType != export.End
	if needsEnd {
		data = append(data, 0xFF)
	}
	return data
}

func encodePECStitch(out []byte, dx, dy int32, isJump bool) []byte {
	out = encodePECAxis(out, dx, isJump)
	out = encodePECAxis(out, dy, isJump)
	return out
}

func encodePECAxis(out []byte, val int32, isJump bool) []byte {
	if abs32(val) < 64 && !isJump {
		if val < 0 {
			return append(out, byte(val+128))
		}
		return append(out, byte(val))
	}

	clamped := clamp32(val, -2048, 2047)
	var unsigned uint16
	if clamped < 0 {
		unsigned = uint16(clamped + 4096)
	} else {
		unsigned = uint16(clamped)
	}

	high := byte((unsigned>>8)&0x0F) | 0x80
	if isJump {
		high |= 0x10
	}
	low := byte(unsigned & 0xFF)
	return append(out, high, low)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package dst encodes an export.ExportDesign into the Tajima DST
// embroidery format: a 512-byte ASCII header followed by 3-byte
// balanced-ternary stitch records.
package dst

import (
	"github.com/gogpu/stitchengine/export"
)

// maxDelta is the largest per-axis delta a single 3-byte record can
// carry; larger moves are chunked into consecutive Jump records.
const maxDelta = 121

// headerSize is the fixed DST header length in bytes.
const headerSize = 512

// endMarker is the 3-byte DST end-of-design command.
var endMarker = [3]byte{0x00, 0x00, 0xF3}

// Encode renders design as a complete DST file: header then body.
func Encode(design export.ExportDesign) []byte {
	out := make([]byte, 0, headerSize+3*len(design.Stitches))
	out = appendHeader(out, design)
	out = appendBody(out, design)
	return out
}

// moveType selects which control bits a 3-byte record's b2 byte carries.
type moveType int

const (
	moveStitch moveType = iota
	moveJump
	moveColorChange
)

func appendBody(out []byte, design export.ExportDesign) []byte {
	units := design.StitchesInUnits()

	var prevX, prevY int32
	for _, u := range units {
		dx, dy := u.X-prevX, u.Y-prevY

		switch u.StitchType {
		case export.Normal:
			out = encodeMove(out, dx, dy, moveStitch)
		case export.Jump:
			out = encodeMove(out, dx, dy, moveJump)
		case export.Trim:
			// DST has no trim opcode: three zero-net-displacement
			// jumps, then the actual move.
			out = encode3Byte(out, 1, 1, moveJump)
			out = encode3Byte(out, -2, -2, moveJump)
			out = encode3Byte(out, 1, 1, moveJump)
			out = encodeMove(out, dx, dy, moveJump)
		case export.ColorChange:
			out = encodeMove(out, dx, dy, moveColorChange)
		case export.End:
			out = append(out, endMarker[:]...)
		}

		prevX, prevY = u.X, u.Y
	}

	needsEnd := len(design.Stitches) == 0 ||
		design.Stitches[len(design.Stitches)-1].StitchType != export.End
	if needsEnd {
		out = append(out, endMarker[:]...)
	}
	return out
}

// encodeMove splits a delta exceeding maxDelta into intermediate Jump
// records before emitting the final record at the requested type.
func encodeMove(out []byte, dx, dy int32, t moveType) []byte {
	for abs32(dx) > maxDelta || abs32(dy) > maxDelta {
		chunkX := clamp32(dx, -maxDelta, maxDelta)
		chunkY := clamp32(dy, -maxDelta, maxDelta)
		out = encode3Byte(out, chunkX, chunkY, moveJump)
		dx -= chunkX
		dy -= chunkY
	}
	return encode3Byte(out, dx, dy, t)
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

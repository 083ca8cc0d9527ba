package dst

import (
	"fmt"
	"math"

	"github.com/gogpu/stitchengine/export"
	"github.com/gogpu/stitchengine/internal/asciiname"
)

// appendHeader writes the fixed 512-byte ASCII header for design,
// space-padding any unused tail bytes.
func appendHeader(out []byte, design export.ExportDesign) []byte {
	label := asciiname.PadOrTruncate(design.Name, 16)

	var h []byte
	h = append(h, fmt.Sprintf("LA:%s\r", label)...)
	h = append(h, fmt.Sprintf("ST:%07d\r", len(design.Stitches))...)
	h = append(h, fmt.Sprintf("CO:%03d\r", design.ColorChangeCount())...)

	minX, minY, maxX, maxY, ok := design.Extents()
	if !ok {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	posX := round(maxX * 10)
	negX := clampNonNegative(-minX * 10)
	posY := round(maxY * 10)
	negY := clampNonNegative(-minY * 10)

	h = append(h, fmt.Sprintf("+X:%05d\r", posX)...)
	h = append(h, fmt.Sprintf("-X:%05d\r", negX)...)
	h = append(h, fmt.Sprintf("+Y:%05d\r", posY)...)
	h = append(h, fmt.Sprintf("-Y:%05d\r", negY)...)

	h = append(h, "AX:+    0\r"...)
	h = append(h, "AY:+    0\r"...)
	h = append(h, "MX:+    0\r"...)
	h = append(h, "MY:+    0\r"...)
	h = append(h, "PD:******\r"...)

	out = append(out, h...)
	if pad := headerSize - len(h); pad > 0 {
		for i := 0; i < pad; i++ {
			out = append(out, 0x20)
		}
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}

// clampNonNegative rounds v and floors it at zero, for the -X/-Y header
// fields that record negative-axis extent as a positive magnitude.
func clampNonNegative(v float64) int {
	rounded := round(v)
	if rounded < 0 {
		return 0
	}
	return rounded
}

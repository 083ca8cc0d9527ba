package pes

// paletteColor is one entry of the fixed 65-entry Brother PEC thread
// palette. Index 0 is reserved/unused; 1..64 are the real colors.
type paletteColor struct {
	r, g, b uint8
}

// pecPalette is the canonical PEC color table. Byte-for-byte fidelity
// to this table is part of the PES/PEC file-format contract.
var pecPalette = [65]paletteColor{
	{0, 0, 0},
	{14, 31, 124},
	{10, 85, 163},
	{48, 135, 119},
	{75, 107, 175},
	{237, 23, 31},
	{209, 92, 0},
	{145, 54, 151},
	{228, 154, 203},
	{145, 95, 172},
	{158, 214, 125},
	{232, 169, 0},
	{254, 186, 53},
	{255, 255, 0},
	{112, 188, 31},
	{186, 152, 0},
	{168, 168, 168},
	{125, 111, 0},
	{255, 255, 179},
	{79, 85, 86},
	{0, 0, 0},
	{11, 61, 145},
	{119, 1, 118},
	{41, 49, 51},
	{42, 19, 1},
	{246, 74, 138},
	{178, 118, 36},
	{252, 187, 197},
	{254, 55, 15},
	{240, 240, 240},
	{106, 28, 138},
	{168, 221, 196},
	{37, 132, 187},
	{254, 179, 67},
	{255, 243, 107},
	{208, 166, 96},
	{209, 84, 0},
	{102, 186, 73},
	{19, 74, 70},
	{135, 135, 135},
	{216, 204, 198},
	{67, 86, 7},
	{253, 217, 222},
	{249, 147, 188},
	{0, 56, 34},
	{178, 175, 212},
	{104, 106, 176},
	{239, 227, 185},
	{247, 56, 102},
	{181, 76, 100},
	{19, 43, 26},
	{199, 1, 86},
	{254, 158, 50},
	{168, 222, 235},
	{0, 103, 62},
	{78, 41, 144},
	{47, 126, 32},
	{255, 204, 204},
	{255, 217, 17},
	{9, 91, 166},
	{240, 249, 112},
	{227, 243, 91},
	{255, 153, 0},
	{255, 240, 141},
	{255, 200, 200},
}

// blackPaletteIndex is the PEC palette index for plain black, used as
// the default/padding color.
const blackPaletteIndex = 20

// nearestPECColor returns the 1..64 palette index whose RGB is closest
// to (r,g,b) in squared Euclidean distance, breaking ties toward the
// lowest index.
func nearestPECColor(r, g, b uint8) uint8 {
	best := uint8(1)
	bestDist := int64(-1)
	for i := 1; i <= 64; i++ {
		c := pecPalette[i]
		dr := int64(r) - int64(c.r)
		dg := int64(g) - int64(c.g)
		db := int64(b) - int64(c.b)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = uint8(i)
		}
	}
	return best
}

// Package asciiname folds an arbitrary UTF-8 design name down to the
// plain-ASCII label both DST and PEC embed in fixed-width header
// fields, using golang.org/x/text's width-folding and legacy-encoding
// fallback instead of a naive byte truncation.
package asciiname

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/width"
)

// Fold narrows full-width/half-width forms to their ASCII equivalents,
// then encodes through ISO-8859-1 (keeping the narrowed UTF-8 bytes
// unchanged if any rune is not representable there) and substitutes '?'
// for every byte that is not printable ASCII, so the result is always
// safe for a fixed-width embroidery header field.
func Fold(name string) string {
	narrowed := width.Narrow.String(name)

	encoded, err := charmap.ISO8859_1.NewEncoder().String(narrowed)
	if err != nil {
		encoded = narrowed
	}

	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c >= 0x20 && c < 0x7F {
			b.WriteByte(c)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// PadOrTruncate returns name folded to ASCII, then truncated or
// space-padded to exactly width bytes.
func PadOrTruncate(name string, w int) string {
	folded := Fold(name)
	if len(folded) >= w {
		return folded[:w]
	}
	return folded + strings.Repeat(" ", w-len(folded))
}

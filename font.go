package mintcrate

import "github.com/hajimehoshi/ebiten/v2"

// FontDef describes a monospaced grid bitmap font: a sheet of equally sized
// glyph cells read left-to-right, top-to-bottom, mapped by the charset
// string. Cell i renders the i-th rune of the charset.
type FontDef struct {
	Name string

	// GlyphWidth, GlyphHeight are the cell dimensions in pixels.
	GlyphWidth  int
	GlyphHeight int

	// Columns is the number of glyph cells per sheet row.
	Columns int

	// Charset lists the runes in sheet order. Runes absent from the
	// charset are skipped (rendered as blank advance).
	Charset string

	// Sheet is the glyph atlas, supplied by the host at setup time.
	Sheet *ebiten.Image

	index map[rune]int
}

// glyphCell returns the sheet cell for r, or ok=false when the rune is not
// in the charset.
func (f *FontDef) glyphCell(r rune) (col, row int, ok bool) {
	if f.index == nil {
		f.index = make(map[rune]int, len(f.Charset))
		cell := 0
		for _, c := range f.Charset {
			if _, dup := f.index[c]; !dup {
				f.index[c] = cell
			}
			cell++
		}
	}
	i, ok := f.index[r]
	if !ok || f.Columns <= 0 {
		return 0, 0, false
	}
	return i % f.Columns, i / f.Columns, true
}

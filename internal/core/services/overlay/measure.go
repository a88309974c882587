package overlay

import (
	"elimination-tracker/internal/core/services/elimination"

	"golang.org/x/text/width"
)

const DefaultGlyphWidth = 6.0

// CellMeasurer approximates rendered text width for a fixed-advance font.
// East Asian wide and fullwidth runes take two cells.
type CellMeasurer struct {
	GlyphWidth float64
}

func (m CellMeasurer) Width(text string) float64 {
	glyph := m.GlyphWidth
	if glyph <= 0 {
		glyph = DefaultGlyphWidth
	}

	cells := 0
	for _, r := range elimination.StripFormatting(text) {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cells += 2
		default:
			cells++
		}
	}
	return float64(cells) * glyph
}

package parameter

// Default render glyphs, one terminal cell per tile
const (
	GlyphSnake   = '#'
	GlyphFood    = 'F'
	GlyphEmpty   = ' '
	GlyphCorner  = '+'
	GlyphHorizon = '-'
	GlyphVert    = '|'
)

package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Canvas is the subset of tcell.Screen the renderer draws on
type Canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Glyphs selects the rune drawn for each cell kind
type Glyphs struct {
	Snake rune
	Food  rune
	Empty rune
}

// DefaultGlyphs matches the classic '#' body and 'F' food look
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Snake: parameter.GlyphSnake,
		Food:  parameter.GlyphFood,
		Empty: parameter.GlyphEmpty,
	}
}

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSnake  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEmpty  = tcell.StyleDefault
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Renderer redraws the whole board every frame
// Layout: border rows 0 and BoardSide+1, tiles at (x+1, y+1), status line below the border
type Renderer struct {
	canvas Canvas
	glyphs Glyphs
}

func NewRenderer(canvas Canvas, glyphs Glyphs) *Renderer {
	return &Renderer{canvas: canvas, glyphs: glyphs}
}

// StatusRow is the screen row of the status line
const StatusRow = parameter.BoardSide + 2

// Draw clears the canvas, paints the board and status text, and flushes
func (r *Renderer) Draw(cells *[parameter.BoardCells]grid.CellKind, status string) {
	r.canvas.Clear()
	r.drawBorder()

	for idx, kind := range cells {
		c := grid.FromIndex(idx)
		ch, style := r.glyph(kind)
		r.canvas.SetContent(int(c.X)+1, int(c.Y)+1, ch, nil, style)
	}

	for i, ch := range []rune(status) {
		r.canvas.SetContent(i, StatusRow, ch, nil, styleStatus)
	}

	r.canvas.Show()
}

func (r *Renderer) drawBorder() {
	const last = parameter.BoardSide + 1
	for i := 0; i <= last; i++ {
		edge := rune(parameter.GlyphHorizon)
		if i == 0 || i == last {
			edge = parameter.GlyphCorner
		}
		r.canvas.SetContent(i, 0, edge, nil, styleBorder)
		r.canvas.SetContent(i, last, edge, nil, styleBorder)
	}
	for y := 1; y < last; y++ {
		r.canvas.SetContent(0, y, parameter.GlyphVert, nil, styleBorder)
		r.canvas.SetContent(last, y, parameter.GlyphVert, nil, styleBorder)
	}
}

func (r *Renderer) glyph(kind grid.CellKind) (rune, tcell.Style) {
	switch kind {
	case grid.CellSnake:
		return r.glyphs.Snake, styleSnake
	case grid.CellFood:
		return r.glyphs.Food, styleFood
	default:
		return r.glyphs.Empty, styleEmpty
	}
}

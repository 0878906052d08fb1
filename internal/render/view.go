package render

// View is the read-only grid a renderer draws.
type View interface {
	Columns() int
	Rows() int
	Alive(x, y int) bool
}

// Frame carries the per-generation status shown next to the grid.
type Frame struct {
	Generation int
	Population int
	Streak     int
}

const (
	aliveGlyph = '*'
	deadGlyph  = ' '
)

func glyph(alive bool) rune {
	if alive {
		return aliveGlyph
	}
	return deadGlyph
}

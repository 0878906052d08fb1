package render

import (
	"bufio"
	"fmt"
	"io"
)

const clearScreen = "\x1b[H\x1b[2J"

// Text writes the grid as plain text, one row per line, followed by the
// frame status.
type Text struct {
	w io.Writer

	// Clear emits an ANSI clear-screen sequence before every frame.
	Clear bool
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Render draws v and f.
func (t *Text) Render(v View, f Frame) error {
	bw := bufio.NewWriter(t.w)
	if t.Clear {
		bw.WriteString(clearScreen)
	}
	writeGrid(bw, v)
	fmt.Fprintf(bw, "Generation: %d\n", f.Generation)
	fmt.Fprintf(bw, "Live cells: %d\n", f.Population)
	fmt.Fprintf(bw, "Stable streak: %d\n", f.Streak)
	return bw.Flush()
}

func writeGrid(bw *bufio.Writer, v View) {
	for y := 0; y < v.Rows(); y++ {
		for x := 0; x < v.Columns(); x++ {
			bw.WriteRune(glyph(v.Alive(x, y)))
		}
		bw.WriteByte('\n')
	}
}

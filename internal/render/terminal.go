package render

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws frames onto a tcell screen.
type Terminal struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminal initializes the process terminal. Call Close to restore it.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminalOn(screen)
}

// NewTerminalOn initializes screen and wraps it.
func NewTerminalOn(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	screen.SetStyle(style)
	screen.Clear()
	return &Terminal{screen: screen, style: style}, nil
}

// Render draws the grid with the frame status underneath it.
func (t *Terminal) Render(v View, f Frame) error {
	t.screen.Clear()
	for y := 0; y < v.Rows(); y++ {
		for x := 0; x < v.Columns(); x++ {
			t.screen.SetContent(x, y, glyph(v.Alive(x, y)), nil, t.style)
		}
	}
	status := fmt.Sprintf("gen %d  live %d  streak %d  (q to quit)", f.Generation, f.Population, f.Streak)
	t.drawString(0, v.Rows(), status)
	t.screen.Show()
	return nil
}

func (t *Terminal) drawString(x, y int, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, t.style.Foreground(tcell.ColorWhite))
		x++
	}
}

// PollQuit blocks reading terminal events and calls cancel when the user
// presses Esc, q or Ctrl-C. It returns when ctx is done or the screen is
// closed.
func (t *Terminal) PollQuit(ctx context.Context, cancel context.CancelFunc) {
	for {
		if ctx.Err() != nil {
			return
		}
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

package life

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrMalformedSnapshot reports a snapshot document that is not a nested
	// array of booleans.
	ErrMalformedSnapshot = errors.New("life: malformed snapshot")
	// ErrDimensionMismatch reports a snapshot whose shape differs from the board.
	ErrDimensionMismatch = errors.New("life: snapshot dimensions do not match board")
)

// State copies the alive flags into a [column][row] grid.
func (b *Board) State() [][]bool {
	state := make([][]bool, b.cols)
	for x := range state {
		state[x] = make([]bool, b.rows)
		for y := range state[x] {
			state[x][y] = b.cells[b.index(x, y)].alive
		}
	}
	return state
}

// SetState overwrites the alive flags from a [column][row] grid. The shape is
// checked before any cell changes, so a rejected state leaves the board as is.
func (b *Board) SetState(state [][]bool) error {
	if len(state) != b.cols {
		return fmt.Errorf("%w: %d columns, board has %d", ErrDimensionMismatch, len(state), b.cols)
	}
	for x, col := range state {
		if len(col) != b.rows {
			return fmt.Errorf("%w: column %d has %d rows, board has %d", ErrDimensionMismatch, x, len(col), b.rows)
		}
	}
	for x, col := range state {
		for y, alive := range col {
			b.cells[b.index(x, y)].alive = alive
		}
	}
	b.dirty = true
	return nil
}

// WriteState encodes the board state as JSON.
func (b *Board) WriteState(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(b.State()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadState decodes a JSON snapshot and applies it with SetState. The
// document must be exactly one array of boolean arrays; null entries and
// trailing data are rejected.
func (b *Board) ReadState(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var doc [][]*bool
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if doc == nil {
		return fmt.Errorf("%w: document is null", ErrMalformedSnapshot)
	}
	state := make([][]bool, len(doc))
	for x, col := range doc {
		if col == nil {
			return fmt.Errorf("%w: column %d is null", ErrMalformedSnapshot, x)
		}
		state[x] = make([]bool, len(col))
		for y, v := range col {
			if v == nil {
				return fmt.Errorf("%w: cell (%d,%d) is null", ErrMalformedSnapshot, x, y)
			}
			state[x][y] = *v
		}
	}
	return b.SetState(state)
}

// Save writes the board state to path.
func (b *Board) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := b.WriteState(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	return nil
}

// Load restores the board state from path. Only alive flags are replaced.
func (b *Board) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()
	if err := b.ReadState(file); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

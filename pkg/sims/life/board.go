package life

import "mad-life/pkg/core"

// Point addresses a cell by column and row.
type Point struct {
	X, Y int
}

// Board owns a toroidal grid of cells stored column-major, so the cell at
// column x and row y lives at index x*rows+y.
//
// Columns and rows are width/cellSize and height/cellSize. Any remainder of
// the integer division is dropped.
type Board struct {
	cols, rows int
	cellSize   int
	density    float64
	cells      []Cell
	rng        *core.RNG

	display *core.ByteGrid
	dirty   bool
}

// New allocates a board, wires the toroidal neighborhood and randomizes it with
// the given live density. A nil rng is replaced by an unseeded generator.
func New(width, height, cellSize int, liveDensity float64, rng *core.RNG) (*Board, error) {
	if err := checkDimensions(width, height, cellSize); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewRandomRNG()
	}
	cols, rows := width/cellSize, height/cellSize
	b := &Board{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		density:  liveDensity,
		cells:    make([]Cell, cols*rows),
		rng:      rng,
		display:  core.NewByteGrid(cols, rows),
		dirty:    true,
	}
	b.connectNeighbors()
	b.Randomize(liveDensity)
	return b, nil
}

// NewWithConfig validates cfg and builds a board from it.
func NewWithConfig(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := core.NewRandomRNG()
	if cfg.Seed != 0 {
		rng = core.NewRNG(cfg.Seed)
	}
	return New(cfg.Width, cfg.Height, cfg.CellSize, cfg.LiveDensity, rng)
}

func (b *Board) index(x, y int) int { return x*b.rows + y }

func (b *Board) connectNeighbors() {
	for x := 0; x < b.cols; x++ {
		for y := 0; y < b.rows; y++ {
			xL := b.cols - 1
			if x > 0 {
				xL = x - 1
			}
			xR := 0
			if x < b.cols-1 {
				xR = x + 1
			}
			yT := b.rows - 1
			if y > 0 {
				yT = y - 1
			}
			yB := 0
			if y < b.rows-1 {
				yB = y + 1
			}

			b.cells[b.index(x, y)].neighbors = [8]int{
				b.index(xL, yT), b.index(x, yT), b.index(xR, yT),
				b.index(xL, y), b.index(xR, y),
				b.index(xL, yB), b.index(x, yB), b.index(xR, yB),
			}
		}
	}
}

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.cols }

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// CellSize returns the rendering scale the board was built with.
func (b *Board) CellSize() int { return b.cellSize }

// Width returns Columns scaled by CellSize.
func (b *Board) Width() int { return b.cols * b.cellSize }

// Height returns Rows scaled by CellSize.
func (b *Board) Height() int { return b.rows * b.cellSize }

// Alive reports whether the cell at (x, y) is alive.
func (b *Board) Alive(x, y int) bool {
	return b.cells[b.index(x, y)].alive
}

// Set overwrites the current state of the cell at (x, y).
func (b *Board) Set(x, y int, alive bool) {
	b.cells[b.index(x, y)].alive = alive
	b.dirty = true
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i].alive = false
	}
	b.dirty = true
}

// Neighbors returns the wired neighbor coordinates of (x, y) in the order
// top-left, top, top-right, left, right, bottom-left, bottom, bottom-right.
func (b *Board) Neighbors(x, y int) [8]Point {
	var out [8]Point
	for i, idx := range b.cells[b.index(x, y)].neighbors {
		out[i] = Point{X: idx / b.rows, Y: idx % b.rows}
	}
	return out
}

// Randomize sets every cell alive independently with probability liveDensity.
func (b *Board) Randomize(liveDensity float64) {
	for i := range b.cells {
		b.cells[i].alive = b.rng.Chance(liveDensity)
	}
	b.dirty = true
}

// Advance moves the board forward one generation. Every cell computes its next
// state from the current generation before any cell commits.
func (b *Board) Advance() {
	for i := range b.cells {
		b.cells[i].DetermineNextLiveState(b.cells)
	}
	for i := range b.cells {
		b.cells[i].Advance()
	}
	b.dirty = true
}

// LiveCount returns the number of living cells.
func (b *Board) LiveCount() int {
	count := 0
	for i := range b.cells {
		if b.cells[i].alive {
			count++
		}
	}
	return count
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life" }

// Size returns the grid dimensions in cells.
func (b *Board) Size() core.Size { return core.Size{W: b.cols, H: b.rows} }

// Reset reseeds the generator and randomizes the board with its live density.
// A zero seed keeps the current generator state.
func (b *Board) Reset(seed int64) {
	if seed != 0 {
		b.rng.Reseed(seed)
	}
	b.Randomize(b.density)
}

// Step advances the simulation by one generation.
func (b *Board) Step() { b.Advance() }

// Cells exposes the current state as a row-major 0/1 buffer for renderers.
// The buffer is owned by the board and rebuilt after each change.
func (b *Board) Cells() []uint8 {
	if b.dirty {
		for x := 0; x < b.cols; x++ {
			for y := 0; y < b.rows; y++ {
				var v uint8
				if b.cells[b.index(x, y)].alive {
					v = 1
				}
				b.display.Set(x, y, v)
			}
		}
		b.dirty = false
	}
	return b.display.Cells()
}

// Parameters describes the board configuration.
func (b *Board) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", b.Width()),
				core.IntParam("h", "Height", b.Height()),
				core.IntParam("cell_size", "Cell size", b.cellSize),
				core.IntParam("columns", "Columns", b.cols),
				core.IntParam("rows", "Rows", b.rows),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.FloatParam("density", "Live density", b.density),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		b, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

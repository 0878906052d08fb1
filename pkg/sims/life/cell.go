package life

// Cell is a single automaton cell. Neighbors holds flat indices into the
// owning board's cell slice and is fixed once the board is wired.
type Cell struct {
	alive     bool
	aliveNext bool
	neighbors [8]int
}

// Rule applies the standard Life rules: a live cell survives with two or three
// live neighbors and a dead cell is born with exactly three.
func Rule(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

// Alive reports the cell's current state.
func (c *Cell) Alive() bool { return c.alive }

// DetermineNextLiveState stages the next state from the current generation in
// cells. It only reads shared state.
func (c *Cell) DetermineNextLiveState(cells []Cell) {
	liveNeighbors := 0
	for _, idx := range c.neighbors {
		if cells[idx].alive {
			liveNeighbors++
		}
	}
	c.aliveNext = Rule(c.alive, liveNeighbors)
}

// Advance commits the staged state. Call it only after every cell of the board
// has run DetermineNextLiveState for this generation.
func (c *Cell) Advance() {
	c.alive = c.aliveNext
}

package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PopulationCounter is implemented by sims that can report how many cells are
// currently alive without the caller scanning Cells.
type PopulationCounter interface {
	LiveCount() int
}

// Snapshotter is implemented by sims that can persist and restore their state.
type Snapshotter interface {
	Save(path string) error
	Load(path string) error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Build looks up the named factory and constructs the simulation.
func Build(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	return f(cfg)
}

// Population returns the live cell count of sim, scanning its cell buffer
// when it does not implement PopulationCounter.
func Population(sim Sim) int {
	if pc, ok := sim.(PopulationCounter); ok {
		return pc.LiveCount()
	}
	total := 0
	for _, c := range sim.Cells() {
		if c != 0 {
			total++
		}
	}
	return total
}

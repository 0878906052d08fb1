package app

import (
	"errors"
	"fmt"

	"mad-life/internal/driver"
	"mad-life/internal/ui"
	"mad-life/pkg/core"
)

// errNoSnapshots is returned when the sim cannot be saved or loaded.
var errNoSnapshots = errors.New("sim does not support snapshots")

// Session tracks generations and population stability for an interactive run.
type Session struct {
	sim        core.Sim
	watcher    *driver.Watcher
	generation int
	population int
	message    string
}

// NewSession wraps sim with a stability watcher.
func NewSession(sim core.Sim) *Session {
	return &Session{
		sim:        sim,
		watcher:    driver.NewWatcher(driver.DefaultStableStreak),
		population: core.Population(sim),
	}
}

// Step advances one generation unless the run is already stable. It reports
// whether the population became stable on this step.
func (s *Session) Step() bool {
	if s.watcher.Stable() {
		return false
	}
	before := core.Population(s.sim)
	s.sim.Step()
	s.generation++
	s.population = core.Population(s.sim)
	stable := s.watcher.Observe(before, s.population)
	if stable {
		s.message = fmt.Sprintf("stable after generation %d", s.generation-s.watcher.Limit())
	}
	return stable
}

// Reset reseeds the sim and restarts counting.
func (s *Session) Reset(seed int64) {
	s.sim.Reset(seed)
	s.restart("reset")
}

// Save writes a snapshot of the sim to path.
func (s *Session) Save(path string) error {
	snap, ok := s.sim.(core.Snapshotter)
	if !ok {
		return errNoSnapshots
	}
	if err := snap.Save(path); err != nil {
		s.message = "save failed"
		return err
	}
	s.message = "saved " + path
	return nil
}

// Load restores a snapshot from path and restarts counting.
func (s *Session) Load(path string) error {
	snap, ok := s.sim.(core.Snapshotter)
	if !ok {
		return errNoSnapshots
	}
	if err := snap.Load(path); err != nil {
		s.message = "load failed"
		return err
	}
	s.restart("loaded " + path)
	return nil
}

func (s *Session) restart(msg string) {
	s.watcher.Reset()
	s.generation = 0
	s.population = core.Population(s.sim)
	s.message = msg
}

// Stable reports whether the population stopped changing.
func (s *Session) Stable() bool { return s.watcher.Stable() }

// Generation returns the number of generations advanced since the last reset.
func (s *Session) Generation() int { return s.generation }

// Stats returns the values shown on the HUD.
func (s *Session) Stats(paused bool) ui.Stats {
	return ui.Stats{
		Generation: s.generation,
		Population: s.population,
		Streak:     s.watcher.Streak(),
		Limit:      s.watcher.Limit(),
		Paused:     paused,
		Stable:     s.watcher.Stable(),
		Message:    s.message,
	}
}

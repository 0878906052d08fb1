package app

import (
	"errors"
	"path/filepath"
	"testing"

	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

func blockSession(t *testing.T) (*Session, *life.Board) {
	t.Helper()
	b, err := life.New(8, 8, 1, 0, core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{3, 3}, {3, 4}, {4, 3}, {4, 4}} {
		b.Set(p[0], p[1], true)
	}
	return NewSession(b), b
}

func TestSessionStopsWhenStable(t *testing.T) {
	s, _ := blockSession(t)
	for i := 1; i < 20; i++ {
		if s.Step() {
			t.Fatalf("stable too early at generation %d", i)
		}
	}
	if !s.Step() {
		t.Fatal("block should be stable after 20 generations")
	}
	if s.Step() || s.Generation() != 20 {
		t.Fatalf("stable session must not advance, generation=%d", s.Generation())
	}
	stats := s.Stats(false)
	if !stats.Stable || stats.Population != 4 || stats.Streak != 20 || stats.Message != "stable after generation 0" {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestSessionSaveLoad(t *testing.T) {
	s, b := blockSession(t)
	path := filepath.Join(t.TempDir(), "state.json")
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	s.Step()
	b.Clear()
	if err := s.Load(path); err != nil {
		t.Fatal(err)
	}
	if b.LiveCount() != 4 || !b.Alive(3, 3) {
		t.Fatal("load should restore the block")
	}
	if s.Generation() != 0 || s.Stats(false).Streak != 0 {
		t.Fatal("load should restart counting")
	}
}

type bareSim struct{}

func (bareSim) Name() string    { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64)     {}
func (bareSim) Step()           {}
func (bareSim) Cells() []uint8  { return []uint8{0} }

func TestSessionWithoutSnapshots(t *testing.T) {
	s := NewSession(bareSim{})
	if err := s.Save("x"); !errors.Is(err, errNoSnapshots) {
		t.Fatalf("expected errNoSnapshots, got %v", err)
	}
}

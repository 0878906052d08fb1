package core

import "testing"

func TestChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) must always succeed")
		}
	}
}

func TestReseedMatchesNewRNG(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(7)
	b.Chance(0.5)
	b.Reseed(42)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("draw %d differs after Reseed", i)
		}
	}
}

func TestByteGridRowMajor(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	if g.Cells()[5] != 7 {
		t.Fatalf("unexpected layout %v", g.Cells())
	}
	if g := NewByteGrid(0, -1); g.W != 1 || g.H != 1 {
		t.Fatalf("non-positive sizes should clamp to 1, got %dx%d", g.W, g.H)
	}
}

type stubSim struct{ cells []uint8 }

func (s stubSim) Name() string   { return "stub" }
func (s stubSim) Size() Size     { return Size{W: len(s.cells), H: 1} }
func (s stubSim) Reset(int64)    {}
func (s stubSim) Step()          {}
func (s stubSim) Cells() []uint8 { return s.cells }

func TestRegistry(t *testing.T) {
	Register("stub", func(map[string]string) (Sim, error) { return stubSim{cells: []uint8{1, 0, 1}}, nil })
	Register("", nil)

	sim, err := Build("stub", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := Population(sim); got != 2 {
		t.Fatalf("Population() = %d, expected 2", got)
	}
	if _, err := Build("missing", nil); err == nil {
		t.Fatal("expected an error for an unknown sim")
	}
	if _, err := Build("", nil); err == nil {
		t.Fatal("empty names must not be registered")
	}
}

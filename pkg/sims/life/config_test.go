package life

import (
	"errors"
	"math"
	"testing"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":         "80",
		"h":         "bogus",
		"cell_size": "4",
		"density":   "0.25",
		"seed":      "-9",
	})
	want := DefaultConfig()
	want.Width = 80
	want.CellSize = 4
	want.LiveDensity = 0.25
	want.Seed = -9
	if c != want {
		t.Fatalf("FromMap = %+v, expected %+v", c, want)
	}
	if c.Columns() != 20 || c.Rows() != 5 {
		t.Fatalf("expected 20x5 cells, got %dx%d", c.Columns(), c.Rows())
	}

	if got := FromMap(map[string]string{"density": "1.5"}); got.LiveDensity != DefaultConfig().LiveDensity {
		t.Fatalf("out of range density should be ignored, got %v", got.LiveDensity)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	c := DefaultConfig()
	c.CellSize = 0
	if err := c.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}

	for _, d := range []float64{-0.1, 1.01, math.NaN()} {
		c := DefaultConfig()
		c.LiveDensity = d
		if err := c.Validate(); !errors.Is(err, ErrInvalidDensity) {
			t.Fatalf("density %v: expected ErrInvalidDensity, got %v", d, err)
		}
	}
}

func TestNewWithConfigSeeded(t *testing.T) {
	c := DefaultConfig()
	c.LiveDensity = 0.5
	c.Seed = 21
	a, err := NewWithConfig(c)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithConfig(c)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < a.Columns(); x++ {
		for y := 0; y < a.Rows(); y++ {
			if a.Alive(x, y) != b.Alive(x, y) {
				t.Fatalf("seeded boards differ at (%d,%d)", x, y)
			}
		}
	}
}

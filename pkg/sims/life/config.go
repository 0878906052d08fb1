package life

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidDimensions reports a cell size or grid size that cannot produce a
// board with at least one column and one row.
var ErrInvalidDimensions = errors.New("life: invalid board dimensions")

// ErrInvalidDensity reports a live density outside [0, 1].
var ErrInvalidDensity = errors.New("life: live density must be within [0, 1]")

// Config holds the parameters used to build a Board.
type Config struct {
	Width       int
	Height      int
	CellSize    int
	LiveDensity float64

	// Seed drives Randomize. Zero selects an unseeded generator.
	Seed int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 20, CellSize: 1, LiveDensity: 0.1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.LiveDensity = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Columns returns the number of columns the config produces.
func (c Config) Columns() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Width / c.CellSize
}

// Rows returns the number of rows the config produces.
func (c Config) Rows() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Height / c.CellSize
}

// Validate reports whether the config can build a board.
func (c Config) Validate() error {
	if err := checkDimensions(c.Width, c.Height, c.CellSize); err != nil {
		return err
	}
	if math.IsNaN(c.LiveDensity) || c.LiveDensity < 0 || c.LiveDensity > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDensity, c.LiveDensity)
	}
	return nil
}

func checkDimensions(width, height, cellSize int) error {
	if cellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidDimensions, cellSize)
	}
	if width/cellSize < 1 || height/cellSize < 1 {
		return fmt.Errorf("%w: %dx%d at cell size %d yields %dx%d cells",
			ErrInvalidDimensions, width, height, cellSize, width/cellSize, height/cellSize)
	}
	return nil
}

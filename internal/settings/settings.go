// Package settings reads the JSON settings document that parameterizes a run.
//
//	{"Width": 50, "Height": 20, "CellSize": 1, "LiveDensity": 0.5}
//
// All four fields are required. An optional integer Seed makes the initial
// board reproducible.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"mad-life/pkg/sims/life"
)

var (
	// ErrMalformed reports a document that is not valid JSON or has a field of
	// the wrong type.
	ErrMalformed = errors.New("settings: malformed document")
	// ErrMissingField reports a required field that is absent or null.
	ErrMissingField = errors.New("settings: missing required field")
)

type document struct {
	Width       *int     `json:"Width"`
	Height      *int     `json:"Height"`
	CellSize    *int     `json:"CellSize"`
	LiveDensity *float64 `json:"LiveDensity"`
	Seed        *int64   `json:"Seed,omitempty"`
}

// Load reads and validates the settings file at path.
func Load(path string) (life.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return life.Config{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()
	cfg, err := Decode(file)
	if err != nil {
		return life.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a settings document and validates the resulting config.
func Decode(r io.Reader) (life.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return life.Config{}, fmt.Errorf("read settings: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return life.Config{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch {
	case doc.Width == nil:
		return life.Config{}, fmt.Errorf("%w: Width", ErrMissingField)
	case doc.Height == nil:
		return life.Config{}, fmt.Errorf("%w: Height", ErrMissingField)
	case doc.CellSize == nil:
		return life.Config{}, fmt.Errorf("%w: CellSize", ErrMissingField)
	case doc.LiveDensity == nil:
		return life.Config{}, fmt.Errorf("%w: LiveDensity", ErrMissingField)
	}

	cfg := life.Config{
		Width:       *doc.Width,
		Height:      *doc.Height,
		CellSize:    *doc.CellSize,
		LiveDensity: *doc.LiveDensity,
	}
	if doc.Seed != nil {
		cfg.Seed = *doc.Seed
	}
	if err := cfg.Validate(); err != nil {
		return life.Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg as a settings document.
func Write(w io.Writer, cfg life.Config) error {
	doc := document{
		Width:       &cfg.Width,
		Height:      &cfg.Height,
		CellSize:    &cfg.CellSize,
		LiveDensity: &cfg.LiveDensity,
	}
	if cfg.Seed != 0 {
		doc.Seed = &cfg.Seed
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

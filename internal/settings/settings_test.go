package settings

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mad-life/pkg/sims/life"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`{"Width": 50, "Height": 20, "CellSize": 2, "LiveDensity": 0.5}`))
	if err != nil {
		t.Fatal(err)
	}
	want := life.Config{Width: 50, Height: 20, CellSize: 2, LiveDensity: 0.5}
	if cfg != want {
		t.Fatalf("Decode() = %+v, expected %+v", cfg, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"not json", `Width=50`, ErrMalformed},
		{"trailing data", `{"Width": 50, "Height": 20, "CellSize": 1, "LiveDensity": 0.5} {"Width": "x"`, ErrMalformed},
		{"null document", `null`, ErrMissingField},
		{"wrong type", `{"Width": "wide", "Height": 20, "CellSize": 1, "LiveDensity": 0.5}`, ErrMalformed},
		{"fractional int", `{"Width": 50.5, "Height": 20, "CellSize": 1, "LiveDensity": 0.5}`, ErrMalformed},
		{"missing width", `{"Height": 20, "CellSize": 1, "LiveDensity": 0.5}`, ErrMissingField},
		{"null density", `{"Width": 50, "Height": 20, "CellSize": 1, "LiveDensity": null}`, ErrMissingField},
		{"zero cell size", `{"Width": 50, "Height": 20, "CellSize": 0, "LiveDensity": 0.5}`, life.ErrInvalidDimensions},
		{"empty grid", `{"Width": 3, "Height": 20, "CellSize": 4, "LiveDensity": 0.5}`, life.ErrInvalidDimensions},
		{"density too high", `{"Width": 50, "Height": 20, "CellSize": 1, "LiveDensity": 2}`, life.ErrInvalidDensity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tc.doc)); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadWriteRoundTrip(t *testing.T) {
	want := life.Config{Width: 64, Height: 32, CellSize: 4, LiveDensity: 0.25, Seed: 8}
	var buf bytes.Buffer
	if err := Write(&buf, want); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("Load() = %+v, expected %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

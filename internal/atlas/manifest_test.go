package atlas

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/OCharnyshevich/blocques/internal/world/block"
)

const sample = `
width: 64
height: 32
tile_size: 16
tiles:
  stone: {col: 0, row: 0}
  grass: {col: 3, row: 1}
  dirt:  {col: 1, row: 0}
`

func TestParseAssignsTilesInNameOrder(t *testing.T) {
	m, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if m.Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.Len())
	}
	for want, name := range []string{"dirt", "grass", "stone"} {
		got, err := m.Tile(name)
		if err != nil {
			t.Fatalf("Tile(%q) error: %v", name, err)
		}
		if got != block.Tile(want) {
			t.Errorf("Tile(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestParseRects(t *testing.T) {
	m, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	stone, _ := m.Tile("stone")
	if got, want := m.Rect(stone), (block.AtlasRect{X: 0, Y: 0.5, Width: 0.25, Height: 0.5}); got != want {
		t.Errorf("stone rect = %+v, want %+v", got, want)
	}
	grass, _ := m.Tile("grass")
	if got, want := m.Rect(grass), (block.AtlasRect{X: 0.75, Y: 0, Width: 0.25, Height: 0.5}); got != want {
		t.Errorf("grass rect = %+v, want %+v", got, want)
	}
	if got, want := m.Rect(block.Tile(99)), block.AtlasRect(block.FullTexture); got != want {
		t.Errorf("unknown tile rect = %+v, want %+v", got, want)
	}
}

func TestManifestIsAtlas(t *testing.T) {
	m, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	var a block.Atlas = m
	dirt, _ := m.Tile("dirt")
	rect, ok := block.Solid(dirt).TextureRect(a)
	if !ok || rect.X != 0.25 {
		t.Errorf("TextureRect = %+v, %v", rect, ok)
	}
}

func TestTileUnknown(t *testing.T) {
	m, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Tile("lava"); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("Tile(lava) error = %v, want ErrUnknownTile", err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"missing tiles":   "width: 16\nheight: 16\ntile_size: 16\n",
		"negative column": "width: 16\nheight: 16\ntile_size: 16\ntiles:\n  a: {col: -1, row: 0}\n",
		"extra key":       "width: 16\nheight: 16\ntile_size: 16\nformat: png\ntiles:\n  a: {col: 0, row: 0}\n",
		"zero tile size":  "width: 16\nheight: 16\ntile_size: 0\ntiles:\n  a: {col: 0, row: 0}\n",
		"out of image":    "width: 16\nheight: 16\ntile_size: 16\ntiles:\n  a: {col: 1, row: 0}\n",
		"not yaml":        "width: [",
	}
	for name, doc := range tests {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: Parse accepted invalid manifest", name)
		}
	}
}

func TestFetchLocalFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "atlas.yaml")
	if err := os.WriteFile(src, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := FetchAndLoad(context.Background(), src)
	if err != nil {
		t.Fatalf("FetchAndLoad error: %v", err)
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
}

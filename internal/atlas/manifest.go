// Package atlas loads the texture-atlas manifest: a YAML document that names
// the square tiles of an atlas image. The image itself is decoded by the
// renderer; this package only computes where each tile lives.
package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/blocques/internal/world/block"
)

// ErrUnknownTile is returned by Manifest.Tile for a name not in the manifest.
var ErrUnknownTile = errors.New("atlas: unknown tile")

const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["width", "height", "tile_size", "tiles"],
  "additionalProperties": false,
  "properties": {
    "width": {"type": "integer", "minimum": 1},
    "height": {"type": "integer", "minimum": 1},
    "tile_size": {"type": "integer", "minimum": 1},
    "tiles": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {
        "type": "object",
        "required": ["col", "row"],
        "additionalProperties": false,
        "properties": {
          "col": {"type": "integer", "minimum": 0},
          "row": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("atlas.schema.json", manifestSchema)

type cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

type document struct {
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	TileSize int             `yaml:"tile_size"`
	Tiles    map[string]cell `yaml:"tiles"`
}

// Manifest maps tile names to atlas rectangles. Tiles are numbered in name
// order, so the same manifest always yields the same block.Tile values.
type Manifest struct {
	names []string
	rects []block.AtlasRect
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read atlas manifest: %w", err)
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse validates raw against the manifest schema and builds a Manifest.
// Rows count down from the top of the image; texture coordinates have their
// origin at the bottom-left.
func Parse(raw []byte) (*Manifest, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse atlas manifest: %w", err)
	}

	names := make([]string, 0, len(doc.Tiles))
	for name := range doc.Tiles {
		names = append(names, name)
	}
	slices.Sort(names)

	w := float32(doc.TileSize) / float32(doc.Width)
	h := float32(doc.TileSize) / float32(doc.Height)
	m := &Manifest{names: names, rects: make([]block.AtlasRect, len(names))}
	for i, name := range names {
		c := doc.Tiles[name]
		if (c.Col+1)*doc.TileSize > doc.Width || (c.Row+1)*doc.TileSize > doc.Height {
			return nil, fmt.Errorf("atlas tile %q at (%d,%d) lies outside the %dx%d image", name, c.Col, c.Row, doc.Width, doc.Height)
		}
		m.rects[i] = block.AtlasRect{
			X:      float32(c.Col) * w,
			Y:      1 - float32(c.Row+1)*h,
			Width:  w,
			Height: h,
		}
	}
	return m, nil
}

// validate checks the YAML document against the JSON schema. The document is
// round-tripped through JSON so the validator sees JSON value types.
func validate(raw []byte) error {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("parse atlas manifest: %w", err)
	}
	js, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("atlas manifest is not JSON-compatible: %w", err)
	}
	var doc any
	if err := json.Unmarshal(js, &doc); err != nil {
		return fmt.Errorf("atlas manifest is not JSON-compatible: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid atlas manifest: %w", err)
	}
	return nil
}

// Tile returns the tile number for name.
func (m *Manifest) Tile(name string) (block.Tile, error) {
	i, ok := slices.BinarySearch(m.names, name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTile, name)
	}
	return block.Tile(i), nil
}

// Rect implements block.Atlas. Tiles the manifest does not name map to the
// whole texture so they stay visible.
func (m *Manifest) Rect(tile block.Tile) block.AtlasRect {
	if int(tile) >= len(m.rects) {
		return block.AtlasRect(block.FullTexture)
	}
	return m.rects[tile]
}

// Len returns the number of tiles.
func (m *Manifest) Len() int {
	return len(m.names)
}

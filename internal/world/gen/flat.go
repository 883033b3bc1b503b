package gen

import (
	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/voxel"
)

// FlatGenerator fills every column from y=0 up to a fixed height.
type FlatGenerator struct {
	height        int
	surface, fill block.Tile
}

// NewFlatGenerator creates a FlatGenerator whose columns are height blocks
// tall. Negative heights are treated as zero.
func NewFlatGenerator(height int, surface, fill block.Tile) *FlatGenerator {
	return &FlatGenerator{height: max(height, 0), surface: surface, fill: fill}
}

func (g *FlatGenerator) Generate(chunkX, chunkY, chunkZ int) *voxel.Grid[block.Block] {
	return fillColumns(chunkX, chunkY, chunkZ, g.HeightAt, g.surface, g.fill)
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.height
}

package gen

import (
	"math"

	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/voxel"
)

// TerrainParams shape the height field.
type TerrainParams struct {
	BaseHeight  float64 // column height where the noise is zero
	Amplitude   float64 // height added at noise = ±1
	Scale       float64 // blocks per noise unit
	Octaves     int
	Persistence float64

	SurfaceTile block.Tile
	FillTile    block.Tile
}

// DefaultTerrainParams gives rolling hills a little under one chunk tall.
func DefaultTerrainParams() TerrainParams {
	return TerrainParams{
		BaseHeight:  8,
		Amplitude:   6,
		Scale:       48,
		Octaves:     4,
		Persistence: 0.5,
		SurfaceTile: 1,
		FillTile:    0,
	}
}

// TerrainGenerator builds a height-map world from 2D simplex noise.
type TerrainGenerator struct {
	noise  *Simplex
	params TerrainParams
}

// NewTerrainGenerator creates a TerrainGenerator from a seed.
func NewTerrainGenerator(seed int64, params TerrainParams) *TerrainGenerator {
	if params.Scale <= 0 {
		params.Scale = 1
	}
	return &TerrainGenerator{
		noise:  NewSimplex(seed),
		params: params,
	}
}

// Height samples the noise field for a world column. The result is in
// [-1, 1].
func (g *TerrainGenerator) Height(blockX, blockZ int) float64 {
	return g.noise.Fractal(
		float64(blockX)/g.params.Scale,
		float64(blockZ)/g.params.Scale,
		g.params.Octaves,
		g.params.Persistence,
	)
}

func (g *TerrainGenerator) HeightAt(blockX, blockZ int) int {
	h := int(math.Floor(g.params.BaseHeight + g.Height(blockX, blockZ)*g.params.Amplitude))
	if h < 0 {
		return 0
	}
	return h
}

func (g *TerrainGenerator) Generate(chunkX, chunkY, chunkZ int) *voxel.Grid[block.Block] {
	return fillColumns(chunkX, chunkY, chunkZ, g.HeightAt, g.params.SurfaceTile, g.params.FillTile)
}

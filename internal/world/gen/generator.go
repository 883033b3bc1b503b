package gen

import (
	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/voxel"
)

// Generator fills chunks deterministically from a seed. The result for a
// chunk never depends on which other chunks were generated before it.
type Generator interface {
	// Generate returns the blocks of the chunk at (chunkX, chunkY, chunkZ).
	// It never stores block.NotGenerated.
	Generate(chunkX, chunkY, chunkZ int) *voxel.Grid[block.Block]
	// HeightAt returns the world y just above the top solid block of the
	// column at (blockX, blockZ). Every block of the column below it is solid.
	HeightAt(blockX, blockZ int) int
}

// EmptyGenerator produces chunks of air.
type EmptyGenerator struct{}

func (EmptyGenerator) Generate(_, _, _ int) *voxel.Grid[block.Block] {
	return voxel.NewGrid[block.Block]()
}

func (EmptyGenerator) HeightAt(_, _ int) int {
	return 0
}

// fillColumns fills each local column up to height(column) measured from the
// chunk's vertical origin and clamped to [0, Size]: chunks entirely below the
// height are solid, chunks entirely above it are air. The block at world y
// height-1 uses surface, the rest fill.
func fillColumns(chunkX, chunkY, chunkZ int, height func(bx, bz int) int, surface, fill block.Tile) *voxel.Grid[block.Block] {
	g := voxel.NewGrid[block.Block]()
	baseY := chunkY * voxel.Size
	for x := 0; x < voxel.Size; x++ {
		for z := 0; z < voxel.Size; z++ {
			h := height(chunkX*voxel.Size+x, chunkZ*voxel.Size+z)
			top := clamp(h-baseY, 0, voxel.Size)
			for y := 0; y < top; y++ {
				tile := fill
				if baseY+y == h-1 {
					tile = surface
				}
				g.Set(voxel.LocalPos{X: uint8(x), Y: uint8(y), Z: uint8(z)}, block.Solid(tile))
			}
		}
	}
	return g
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

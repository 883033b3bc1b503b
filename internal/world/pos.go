package world

import (
	"fmt"

	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/voxel"
)

// ChunkPos identifies a chunk on the chunk grid.
type ChunkPos struct {
	X, Y, Z int
}

func (c ChunkPos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Neighbor returns the chunk adjacent to c across face.
func (c ChunkPos) Neighbor(face block.Face) ChunkPos {
	dx, dy, dz := face.Offset()
	return ChunkPos{c.X + dx, c.Y + dy, c.Z + dz}
}

// Block converts a position local to c into a world position.
func (c ChunkPos) Block(local voxel.LocalPos) BlockPos {
	return BlockPos{
		X: c.X*voxel.Size + int(local.X),
		Y: c.Y*voxel.Size + int(local.Y),
		Z: c.Z*voxel.Size + int(local.Z),
	}
}

// BlockPos is a block position in world space.
type BlockPos struct {
	X, Y, Z int
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Split returns the chunk containing p and p's position inside it. Negative
// coordinates round toward negative infinity, so -1 lands in chunk -1 at
// local 15.
func (p BlockPos) Split() (ChunkPos, voxel.LocalPos) {
	return ChunkPos{
			X: floorDiv(p.X, voxel.Size),
			Y: floorDiv(p.Y, voxel.Size),
			Z: floorDiv(p.Z, voxel.Size),
		}, voxel.LocalPos{
			X: uint8(mod(p.X, voxel.Size)),
			Y: uint8(mod(p.Y, voxel.Size)),
			Z: uint8(mod(p.Z, voxel.Size)),
		}
}

func (p BlockPos) array() [3]int {
	return [3]int{p.X, p.Y, p.Z}
}

func floorDiv(a, b int) int {
	// b > 0
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func mod(a, b int) int {
	// b > 0
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

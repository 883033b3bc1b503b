package world

import (
	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/voxel"
)

// Neighborhood is a snapshot of one chunk and its six face neighbours, taken
// right before meshing. It is only valid until the world is next mutated.
type Neighborhood struct {
	center   *Chunk
	adjacent [6]*Chunk // indexed by block.Face
}

// Neighborhood looks up the chunk at pos and its face neighbours. Missing
// chunks are recorded as nil.
func (w *World) Neighborhood(pos ChunkPos) *Neighborhood {
	n := &Neighborhood{center: w.chunks[pos]}
	for _, f := range block.Faces {
		n.adjacent[f] = w.chunks[pos.Neighbor(f)]
	}
	return n
}

// ResolveFace returns the block across face from local. A lookup that leaves
// the centre chunk reads the facing edge of the neighbour; if that
// neighbour does not exist the result is block.Unknown.
func (n *Neighborhood) ResolveFace(local voxel.LocalPos, face block.Face) block.Block {
	axis := face.Axis()
	v := local.Axis(axis)

	var (
		chunk *Chunk
		pos   voxel.LocalPos
	)
	switch {
	case face.Positive() && v == voxel.Size-1:
		chunk, pos = n.adjacent[face], local.WithAxis(axis, 0)
	case !face.Positive() && v == 0:
		chunk, pos = n.adjacent[face], local.WithAxis(axis, voxel.Size-1)
	case face.Positive():
		chunk, pos = n.center, local.WithAxis(axis, v+1)
	default:
		chunk, pos = n.center, local.WithAxis(axis, v-1)
	}

	if chunk == nil {
		return block.Unknown
	}
	return chunk.Block(pos)
}

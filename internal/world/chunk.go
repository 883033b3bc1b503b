package world

import (
	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/voxel"
)

// Mesh holds the vertices emitted for each block of a chunk.
type Mesh = voxel.Grid[[]block.Vertex]

// Chunk is a Size³ cube of blocks plus the mesh last built from them. A
// chunk never holds references to other chunks.
type Chunk struct {
	pos    ChunkPos
	blocks *voxel.Grid[block.Block]
	mesh   *Mesh
}

// NewChunk returns an all-air chunk at pos with an empty mesh.
func NewChunk(pos ChunkPos) *Chunk {
	return newChunk(pos, voxel.NewGrid[block.Block]())
}

func newChunk(pos ChunkPos, blocks *voxel.Grid[block.Block]) *Chunk {
	return &Chunk{pos: pos, blocks: blocks}
}

// Pos returns the chunk's position on the chunk grid.
func (c *Chunk) Pos() ChunkPos {
	return c.pos
}

// LocalToGlobal converts a position inside c into world space.
func (c *Chunk) LocalToGlobal(local voxel.LocalPos) BlockPos {
	return c.pos.Block(local)
}

// Block returns the block at local.
func (c *Chunk) Block(local voxel.LocalPos) block.Block {
	return *c.blocks.Get(local)
}

// SetBlock replaces the block at local. The mesh is left as it was; call
// RegenerateMesh (or World.RegenerateMeshes) to pick up the change.
//
// Storing block.NotGenerated is a programming error and panics.
func (c *Chunk) SetBlock(local voxel.LocalPos, b block.Block) {
	if b.Kind == block.NotGenerated {
		panic("world: NotGenerated cannot be stored in a chunk")
	}
	c.blocks.Set(local, b)
}

// BuildMesh computes a fresh mesh for c against r without touching c.
func (c *Chunk) BuildMesh(r block.Resolver, atlas block.Atlas) *Mesh {
	return voxel.Map(c.blocks, func(local voxel.LocalPos, b block.Block) []block.Vertex {
		return block.Mesh(b, c.LocalToGlobal(local).array(), local, r, atlas)
	})
}

// CommitMesh replaces c's mesh wholesale.
func (c *Chunk) CommitMesh(m *Mesh) {
	c.mesh = m
}

// RegenerateMesh builds and commits a new mesh in one call.
func (c *Chunk) RegenerateMesh(r block.Resolver, atlas block.Atlas) {
	c.CommitMesh(c.BuildMesh(r, atlas))
}

// Vertices concatenates the mesh in grid order. The result is stable for as
// long as the mesh is not regenerated.
func (c *Chunk) Vertices() []block.Vertex {
	if c.mesh == nil {
		return nil
	}
	var out []block.Vertex
	for _, quads := range c.mesh.All() {
		out = append(out, quads...)
	}
	return out
}

// QuadCount returns the number of quads in the current mesh.
func (c *Chunk) QuadCount() int {
	if c.mesh == nil {
		return 0
	}
	n := 0
	for _, quads := range c.mesh.All() {
		n += len(quads) / block.VerticesPerQuad
	}
	return n
}

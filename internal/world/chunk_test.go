package world

import (
	"testing"

	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/voxel"
)

func TestChunkLocalToGlobal(t *testing.T) {
	c := NewChunk(ChunkPos{-2, 0, 3})
	got := c.LocalToGlobal(voxel.LocalPos{X: 1, Y: 2, Z: 15})
	want := BlockPos{-31, 2, 63}
	if got != want {
		t.Errorf("LocalToGlobal = %v, want %v", got, want)
	}
}

func TestChunkSetBlockLeavesMeshAlone(t *testing.T) {
	w := NewWorld(nil)
	c := w.EnsureChunk(ChunkPos{})
	c.SetBlock(voxel.LocalPos{X: 4, Y: 4, Z: 4}, block.Solid(0))
	w.RegenerateMeshes([]ChunkPos{{}})

	before := c.Vertices()
	c.SetBlock(voxel.LocalPos{X: 8, Y: 8, Z: 8}, block.Solid(0))
	after := c.Vertices()

	if len(before) != len(after) {
		t.Errorf("mesh changed after SetBlock: %d -> %d vertices", len(before), len(after))
	}
	if got := c.Block(voxel.LocalPos{X: 8, Y: 8, Z: 8}); got != block.Solid(0) {
		t.Errorf("Block = %v, want solid", got)
	}
}

func TestChunkRejectsNotGenerated(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("storing NotGenerated should panic")
		}
	}()
	NewChunk(ChunkPos{}).SetBlock(voxel.LocalPos{}, block.Unknown)
}

func TestChunkVerticesBeforeMesh(t *testing.T) {
	c := NewChunk(ChunkPos{})
	if v := c.Vertices(); len(v) != 0 {
		t.Errorf("fresh chunk has %d vertices, want 0", len(v))
	}
	if n := c.QuadCount(); n != 0 {
		t.Errorf("fresh chunk has %d quads, want 0", n)
	}
}

func TestChunkBuildMeshDoesNotCommit(t *testing.T) {
	w := NewWorld(nil)
	c := w.EnsureChunk(ChunkPos{})
	c.SetBlock(voxel.LocalPos{X: 1, Y: 1, Z: 1}, block.Solid(0))

	m := c.BuildMesh(w.Neighborhood(ChunkPos{}), block.FullTexture)
	if c.QuadCount() != 0 {
		t.Fatal("BuildMesh committed the mesh")
	}
	if got := len(*m.Get(voxel.LocalPos{X: 1, Y: 1, Z: 1})); got != 24 {
		t.Errorf("built mesh has %d vertices at the block, want 24", got)
	}

	c.CommitMesh(m)
	if c.QuadCount() != 6 {
		t.Errorf("QuadCount after commit = %d, want 6", c.QuadCount())
	}
}

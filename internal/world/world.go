package world

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/gen"
)

// World is a sparse set of chunks keyed by chunk position. A position with no
// entry has not been generated yet.
//
// A World is owned by a single goroutine; it does no locking.
type World struct {
	chunks    map[ChunkPos]*Chunk
	generator gen.Generator
	atlas     block.Atlas
	log       *slog.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger routes debug output to log.
func WithLogger(log *slog.Logger) Option {
	return func(w *World) { w.log = log }
}

// WithAtlas sets the atlas used to texture meshes. The default maps every
// tile to the full texture.
func WithAtlas(atlas block.Atlas) Option {
	return func(w *World) { w.atlas = atlas }
}

// NewWorld creates an empty World that fills new chunks with generator. A
// nil generator produces all-air chunks.
func NewWorld(generator gen.Generator, opts ...Option) *World {
	if generator == nil {
		generator = gen.EmptyGenerator{}
	}
	w := &World{
		chunks:    make(map[ChunkPos]*Chunk),
		generator: generator,
		atlas:     block.FullTexture,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Chunk returns the chunk at pos if it has been generated.
func (w *World) Chunk(pos ChunkPos) (*Chunk, bool) {
	c, ok := w.chunks[pos]
	return c, ok
}

// EnsureChunk returns the chunk at pos, generating it first if needed.
func (w *World) EnsureChunk(pos ChunkPos) *Chunk {
	if c, ok := w.chunks[pos]; ok {
		return c
	}
	c := newChunk(pos, w.generator.Generate(pos.X, pos.Y, pos.Z))
	w.chunks[pos] = c
	w.log.Debug("chunk generated", "chunk", pos)
	return c
}

// EnsureRadius generates every chunk within radius chunks of center
// horizontally and within vertical chunks of it on the Y axis. It returns
// all positions in the area, x-major, and the number that were new.
func (w *World) EnsureRadius(center ChunkPos, radius, vertical int) ([]ChunkPos, int) {
	var (
		area    []ChunkPos
		created int
	)
	for x := center.X - radius; x <= center.X+radius; x++ {
		for y := center.Y - vertical; y <= center.Y+vertical; y++ {
			for z := center.Z - radius; z <= center.Z+radius; z++ {
				pos := ChunkPos{x, y, z}
				if _, ok := w.chunks[pos]; !ok {
					created++
				}
				w.EnsureChunk(pos)
				area = append(area, pos)
			}
		}
	}
	return area, created
}

// Evict drops the chunk at pos. Its neighbours keep their meshes until
// they are regenerated.
func (w *World) Evict(pos ChunkPos) bool {
	if _, ok := w.chunks[pos]; !ok {
		return false
	}
	delete(w.chunks, pos)
	w.log.Debug("chunk evicted", "chunk", pos)
	return true
}

// LoadedChunks returns the positions of every generated chunk in x, y, z
// order.
func (w *World) LoadedChunks() []ChunkPos {
	keys := make([]ChunkPos, 0, len(w.chunks))
	for k := range w.chunks {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b ChunkPos) int {
		return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y), cmp.Compare(a.Z, b.Z))
	})
	return keys
}

// GetBlock returns the block at pos, or block.Air if its chunk has not been
// generated.
func (w *World) GetBlock(pos BlockPos) block.Block {
	cp, local := pos.Split()
	c, ok := w.chunks[cp]
	if !ok {
		return block.Air
	}
	return c.Block(local)
}

// SetBlock stores b at pos, generating the chunk first if needed. No mesh is
// regenerated.
func (w *World) SetBlock(pos BlockPos, b block.Block) {
	cp, local := pos.Split()
	w.EnsureChunk(cp).SetBlock(local, b)
}

// GenerateVertices builds the mesh for the chunk at pos from the current
// state of it and its neighbours without committing it. ok is false if the
// chunk does not exist.
func (w *World) GenerateVertices(pos ChunkPos) (m *Mesh, ok bool) {
	c, ok := w.chunks[pos]
	if !ok {
		return nil, false
	}
	return c.BuildMesh(w.Neighborhood(pos), w.atlas), true
}

// RegenerateMeshes rebuilds the meshes of the listed chunks. Every mesh is
// computed before any is committed. Missing chunks are skipped.
func (w *World) RegenerateMeshes(positions []ChunkPos) {
	type pending struct {
		chunk *Chunk
		mesh  *Mesh
	}
	built := make([]pending, 0, len(positions))
	for _, pos := range positions {
		m, ok := w.GenerateVertices(pos)
		if !ok {
			continue
		}
		built = append(built, pending{chunk: w.chunks[pos], mesh: m})
	}

	debug := w.log.Enabled(context.Background(), slog.LevelDebug)
	for _, p := range built {
		p.chunk.CommitMesh(p.mesh)
		if debug {
			w.log.Debug("mesh regenerated", "chunk", p.chunk.Pos(), "quads", p.chunk.QuadCount())
		}
	}
}

// FlattenMeshes concatenates the meshes of the listed chunks in the order
// given. Missing chunks contribute nothing.
func (w *World) FlattenMeshes(positions []ChunkPos) []block.Vertex {
	var out []block.Vertex
	for _, pos := range positions {
		if c, ok := w.chunks[pos]; ok {
			out = append(out, c.Vertices()...)
		}
	}
	return out
}

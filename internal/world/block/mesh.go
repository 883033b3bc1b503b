package block

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/blocques/internal/world/voxel"
)

// Vertex is one corner of an emitted quad.
type Vertex struct {
	Position  mgl32.Vec3
	TexCoords mgl32.Vec2
}

// VerticesPerQuad is the number of vertices emitted per visible face.
const VerticesPerQuad = 4

// Resolver answers what lies across a face of a block inside one chunk,
// following the lookup into a neighbouring chunk at the boundary.
type Resolver interface {
	ResolveFace(local voxel.LocalPos, face Face) Block
}

// Mesh emits one quad for every face of b that borders a transparent block.
// global is the world position of b and positions the quads; local is its
// position inside its chunk and is what r is queried with. Transparent
// blocks produce no vertices.
func Mesh(b Block, global [3]int, local voxel.LocalPos, r Resolver, atlas Atlas) []Vertex {
	rect, ok := b.TextureRect(atlas)
	if !ok {
		return nil
	}

	origin := mgl32.Vec3{float32(global[0]), float32(global[1]), float32(global[2])}
	var out []Vertex
	for _, f := range Faces {
		if !r.ResolveFace(local, f).Transparent() {
			continue
		}
		q := f.Quad(origin, rect)
		out = append(out, q[:]...)
	}
	return out
}

package block

import "github.com/go-gl/mathgl/mgl32"

// Face is one of the six sides of a cube.
type Face uint8

const (
	XNeg Face = iota
	XPos
	YNeg
	YPos
	ZNeg
	ZPos
)

// Faces lists every face in mesh emission order.
var Faces = [6]Face{XNeg, XPos, YNeg, YPos, ZNeg, ZPos}

var faceNames = [6]string{"x-", "x+", "y-", "y+", "z-", "z+"}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "invalid"
}

// Axis returns 0, 1 or 2 for the X, Y or Z axis.
func (f Face) Axis() int {
	return int(f) / 2
}

// Positive reports whether the face points along the positive axis.
func (f Face) Positive() bool {
	return f%2 == 1
}

// Opposite returns the face pointing the other way on the same axis.
func (f Face) Opposite() Face {
	return f ^ 1
}

// Offset is the unit step from a cell to its neighbour across f.
func (f Face) Offset() (dx, dy, dz int) {
	var d [3]int
	if f.Positive() {
		d[f.Axis()] = 1
	} else {
		d[f.Axis()] = -1
	}
	return d[0], d[1], d[2]
}

// Normal is the outward unit normal of f.
func (f Face) Normal() mgl32.Vec3 {
	dx, dy, dz := f.Offset()
	return mgl32.Vec3{float32(dx), float32(dy), float32(dz)}
}

// Quad corners are listed top-right, bottom-right, bottom-left, top-left as
// seen from outside the cube looking at the face, which is clockwise:
//
//	3 <-- 0
//	|     ^
//	v     |
//	2 --> 1
//
// Each row was derived from the face's outward normal n and an (up, right)
// pair with right × up = n, so every face winds the same way.
var corners = [6][4]mgl32.Vec3{
	XNeg: {{0, 1, 1}, {0, 0, 1}, {0, 0, 0}, {0, 1, 0}}, // right +z, up +y
	XPos: {{1, 1, 0}, {1, 0, 0}, {1, 0, 1}, {1, 1, 1}}, // right -z, up +y
	YNeg: {{1, 0, 1}, {1, 0, 0}, {0, 0, 0}, {0, 0, 1}}, // right +x, up +z
	YPos: {{1, 1, 0}, {1, 1, 1}, {0, 1, 1}, {0, 1, 0}}, // right +x, up -z
	ZNeg: {{0, 1, 0}, {0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, // right -x, up +y
	ZPos: {{1, 1, 1}, {1, 0, 1}, {0, 0, 1}, {0, 1, 1}}, // right +x, up +y
}

// Corners returns the four corner offsets of f relative to the cube's
// minimum corner.
func (f Face) Corners() [4]mgl32.Vec3 {
	return corners[f]
}

// Quad builds the four vertices of f for the cube whose minimum corner is
// origin, textured with the whole of rect.
func (f Face) Quad(origin mgl32.Vec3, rect AtlasRect) [4]Vertex {
	uv := [4]mgl32.Vec2{
		{rect.X + rect.Width, rect.Y + rect.Height},
		{rect.X + rect.Width, rect.Y},
		{rect.X, rect.Y},
		{rect.X, rect.Y + rect.Height},
	}
	var q [4]Vertex
	for i, c := range corners[f] {
		q[i] = Vertex{Position: origin.Add(c), TexCoords: uv[i]}
	}
	return q
}

package voxel

import (
	"errors"
	"fmt"
	"iter"
)

// Size is the edge length of a chunk in blocks. Storage, meshing and
// coordinate conversion all use it.
const Size = 16

// Volume is the number of cells in a Grid.
const Volume = Size * Size * Size

// ErrIndexOutOfRange is matched by the value a Grid panics with when it is
// indexed outside [0, Size) on any axis.
var ErrIndexOutOfRange = errors.New("voxel: index out of range")

// LocalPos is a block position inside a single chunk.
type LocalPos struct {
	X, Y, Z uint8
}

// InBounds reports whether every component of p is in [0, Size).
func (p LocalPos) InBounds() bool {
	return p.X < Size && p.Y < Size && p.Z < Size
}

// Axis returns the X, Y or Z component for axis 0, 1 or 2.
func (p LocalPos) Axis(axis int) uint8 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// WithAxis returns p with the component on axis replaced by v.
func (p LocalPos) WithAxis(axis int, v uint8) LocalPos {
	switch axis {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
	return p
}

func (p LocalPos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// IndexError is the panic value for an out-of-range LocalPos.
type IndexError struct {
	Pos LocalPos
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("voxel: index %s out of range [0,%d)", e.Pos, Size)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Grid is a fixed Size×Size×Size container. The zero value of T is the
// default for every cell.
type Grid[T any] struct {
	cells [Volume]T
}

// NewGrid returns a grid with every cell set to the zero value of T.
func NewGrid[T any]() *Grid[T] {
	return &Grid[T]{}
}

// index lays cells out x-major, then y, then z.
func index(p LocalPos) int {
	if !p.InBounds() {
		panic(&IndexError{Pos: p})
	}
	return int(p.X)*Size*Size + int(p.Y)*Size + int(p.Z)
}

func posAt(i int) LocalPos {
	return LocalPos{
		X: uint8(i / (Size * Size)),
		Y: uint8(i / Size % Size),
		Z: uint8(i % Size),
	}
}

// Get returns a pointer to the cell at p. It panics with an *IndexError if p
// is out of range.
func (g *Grid[T]) Get(p LocalPos) *T {
	return &g.cells[index(p)]
}

// Set stores v at p. It panics with an *IndexError if p is out of range.
func (g *Grid[T]) Set(p LocalPos, v T) {
	g.cells[index(p)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// All yields every cell with its position. The order is fixed: x outermost,
// z innermost.
func (g *Grid[T]) All() iter.Seq2[LocalPos, T] {
	return func(yield func(LocalPos, T) bool) {
		for i := range g.cells {
			if !yield(posAt(i), g.cells[i]) {
				return
			}
		}
	}
}

// Map builds a new grid of the same shape by applying f to every cell.
func Map[T, U any](g *Grid[T], f func(LocalPos, T) U) *Grid[U] {
	out := NewGrid[U]()
	for i := range g.cells {
		out.cells[i] = f(posAt(i), g.cells[i])
	}
	return out
}

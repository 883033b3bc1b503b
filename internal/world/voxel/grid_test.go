package voxel

import (
	"errors"
	"testing"
)

func TestGridDefaultZero(t *testing.T) {
	g := NewGrid[int]()
	for p, v := range g.All() {
		if v != 0 {
			t.Fatalf("cell %s = %d, want 0", p, v)
		}
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid[int]()
	p := LocalPos{X: 3, Y: 15, Z: 0}
	g.Set(p, 42)
	if got := *g.Get(p); got != 42 {
		t.Errorf("Get(%s) = %d, want 42", p, got)
	}
	if got := *g.Get(LocalPos{X: 3, Y: 15, Z: 1}); got != 0 {
		t.Errorf("neighbouring cell = %d, want 0", got)
	}

	*g.Get(p) = 7
	if got := *g.Get(p); got != 7 {
		t.Errorf("Get after pointer write = %d, want 7", got)
	}
}

func TestGridAllVisitsEveryCellOnce(t *testing.T) {
	g := NewGrid[int]()
	seen := make(map[LocalPos]bool, Volume)
	for p := range g.All() {
		if !p.InBounds() {
			t.Fatalf("All yielded out-of-range %s", p)
		}
		if seen[p] {
			t.Fatalf("All yielded %s twice", p)
		}
		seen[p] = true
	}
	if len(seen) != Volume {
		t.Errorf("All yielded %d cells, want %d", len(seen), Volume)
	}
}

func TestGridAllOrderStable(t *testing.T) {
	g := NewGrid[int]()
	var first, second []LocalPos
	for p := range g.All() {
		first = append(first, p)
	}
	for p := range g.All() {
		second = append(second, p)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order differs at %d: %s vs %s", i, first[i], second[i])
		}
	}
	if first[0] != (LocalPos{}) || first[1] != (LocalPos{Z: 1}) {
		t.Errorf("iteration should start at origin with z innermost, got %s, %s", first[0], first[1])
	}
}

func TestGridAllEarlyStop(t *testing.T) {
	g := NewGrid[int]()
	n := 0
	for range g.All() {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Errorf("visited %d cells, want 10", n)
	}
}

func TestMapPreservesShape(t *testing.T) {
	g := NewGrid[int]()
	g.Set(LocalPos{X: 1, Y: 2, Z: 3}, 5)

	out := Map(g, func(p LocalPos, v int) bool {
		return v > 0 || p == LocalPos{X: 15, Y: 15, Z: 15}
	})

	count := 0
	for p, v := range out.All() {
		if v {
			count++
			if p != (LocalPos{X: 1, Y: 2, Z: 3}) && p != (LocalPos{X: 15, Y: 15, Z: 15}) {
				t.Errorf("unexpected true at %s", p)
			}
		}
	}
	if count != 2 {
		t.Errorf("Map produced %d true cells, want 2", count)
	}
	if *g.Get(LocalPos{X: 1, Y: 2, Z: 3}) != 5 {
		t.Error("Map mutated its input")
	}
}

func TestGridFill(t *testing.T) {
	g := NewGrid[int]()
	g.Fill(9)
	for p, v := range g.All() {
		if v != 9 {
			t.Fatalf("cell %s = %d after Fill, want 9", p, v)
		}
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	tests := []LocalPos{
		{X: Size, Y: 0, Z: 0},
		{X: 0, Y: Size, Z: 0},
		{X: 0, Y: 0, Z: 255},
	}
	for _, p := range tests {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("Get(%s) panicked with %v, want error", p, r)
				}
				if !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("panic %v does not match ErrIndexOutOfRange", err)
				}
			}()
			NewGrid[int]().Get(p)
		}()
	}
}

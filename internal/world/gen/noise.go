package gen

import "math"

// Simplex is a seeded 2D simplex noise source. Samples lie in [-1, 1] and
// depend only on the seed and the sample point.
type Simplex struct {
	perm [512]uint8
}

// gradients for the 2D case: the eight compass directions.
var gradients2 = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// NewSimplex builds the permutation table for seed.
func NewSimplex(seed int64) *Simplex {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	state := uint64(seed)
	for i := len(p) - 1; i > 0; i-- {
		state = splitmix64(state)
		j := int(state % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	s := &Simplex{}
	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

// splitmix64 advances a 64-bit state and returns the mixed value.
func splitmix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
)

// At samples the noise field at (x, y).
func (s *Simplex) At(x, y float64) float64 {
	k := (x + y) * skew2
	i := int(math.Floor(x + k))
	j := int(math.Floor(y + k))

	u := float64(i+j) * unskew2
	x0 := x - (float64(i) - u)
	y0 := y - (float64(j) - u)

	// Lower or upper triangle of the skewed cell.
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := i & 255
	jj := j & 255

	n := s.corner(ii, jj, x0, y0) +
		s.corner(ii+i1, jj+j1, x1, y1) +
		s.corner(ii+1, jj+1, x2, y2)

	// 70 scales the sum of three kernels to roughly [-1, 1].
	v := 70 * n
	return math.Max(-1, math.Min(1, v))
}

func (s *Simplex) corner(i, j int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	g := gradients2[s.perm[i+int(s.perm[j])]&7]
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

// Fractal sums octaves of s, doubling frequency and scaling amplitude by
// persistence each time. The result is normalised back to [-1, 1].
func (s *Simplex) Fractal(x, y float64, octaves int, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var sum, norm float64
	freq, amp := 1.0, 1.0
	for range octaves {
		sum += s.At(x*freq, y*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	return sum / norm
}

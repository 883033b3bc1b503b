package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/blocques/internal/world/block"
)

// WriteOBJ writes verts as a Wavefront OBJ mesh of quads. verts must hold a
// whole number of quads. It returns the number of faces written.
func WriteOBJ(w io.Writer, verts []block.Vertex) (int, error) {
	if len(verts)%block.VerticesPerQuad != 0 {
		return 0, fmt.Errorf("export: %d vertices is not a whole number of quads", len(verts))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# blocques mesh: %d quads\n", len(verts)/block.VerticesPerQuad)
	for _, v := range verts {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range verts {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoords[0], v.TexCoords[1])
	}

	faces := 0
	for i := 0; i < len(verts); i += block.VerticesPerQuad {
		// Quads are clockwise from outside; OBJ front faces are
		// counter-clockwise, so list the corners in reverse. Indices are
		// 1-based.
		a, b, c, d := i+4, i+3, i+2, i+1
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d %d/%d\n", a, a, b, b, c, c, d, d)
		faces++
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("write obj: %w", err)
	}
	return faces, nil
}

// Create opens path for writing. Paths ending in ".zst" are zstd-compressed.
// Closing the returned writer flushes and closes the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	return &zstdFile{enc: enc, f: f}, nil
}

type zstdFile struct {
	enc *zstd.Encoder
	f   *os.File
}

func (z *zstdFile) Write(p []byte) (int, error) {
	return z.enc.Write(p)
}

func (z *zstdFile) Close() error {
	if err := z.enc.Close(); err != nil {
		_ = z.f.Close()
		return err
	}
	return z.f.Close()
}

// WriteFile exports verts to path, compressing when the path ends in ".zst".
func WriteFile(path string, verts []block.Vertex) (int, error) {
	w, err := Create(path)
	if err != nil {
		return 0, err
	}
	faces, err := WriteOBJ(w, verts)
	if err != nil {
		_ = w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}
	return faces, nil
}

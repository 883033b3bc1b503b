package viewer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/blocques/internal/atlas"
	"github.com/OCharnyshevich/blocques/internal/config"
	"github.com/OCharnyshevich/blocques/internal/export"
	"github.com/OCharnyshevich/blocques/internal/world"
	"github.com/OCharnyshevich/blocques/internal/world/block"
	"github.com/OCharnyshevich/blocques/internal/world/gen"
)

// Viewer drives one frame of the block world: it loads the chunks around the
// origin, meshes them and hands the vertex stream to the renderer.
type Viewer struct {
	cfg   *config.Config
	log   *slog.Logger
	world *world.World
}

// Stats summarises a Frame.
type Stats struct {
	Chunks    int // chunks in view
	Generated int // chunks generated during the frame
	Quads     int
	Vertices  int
	Indices   int // two triangles per quad
}

// New creates a Viewer. If cfg names an atlas manifest it is fetched and
// the terrain tiles are resolved against it.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Viewer, error) {
	var (
		tex           block.Atlas = block.FullTexture
		surface, fill block.Tile
	)
	if cfg.AtlasSource != "" {
		m, err := atlas.FetchAndLoad(ctx, cfg.AtlasSource)
		if err != nil {
			return nil, err
		}
		if surface, err = m.Tile(cfg.Terrain.SurfaceTile); err != nil {
			return nil, fmt.Errorf("surface tile: %w", err)
		}
		if fill, err = m.Tile(cfg.Terrain.FillTile); err != nil {
			return nil, fmt.Errorf("fill tile: %w", err)
		}
		tex = m
		log.Info("loaded atlas manifest", "source", cfg.AtlasSource, "tiles", m.Len())
	}

	var generator gen.Generator
	switch cfg.GeneratorType {
	case "flat":
		generator = gen.NewFlatGenerator(cfg.FlatHeight, surface, fill)
	case "empty":
		generator = gen.EmptyGenerator{}
	default:
		generator = gen.NewTerrainGenerator(cfg.Seed, gen.TerrainParams{
			BaseHeight:  cfg.Terrain.BaseHeight,
			Amplitude:   cfg.Terrain.Amplitude,
			Scale:       cfg.Terrain.Scale,
			Octaves:     cfg.Terrain.Octaves,
			Persistence: cfg.Terrain.Persistence,
			SurfaceTile: surface,
			FillTile:    fill,
		})
	}

	return &Viewer{
		cfg:   cfg,
		log:   log,
		world: world.NewWorld(generator, world.WithLogger(log), world.WithAtlas(tex)),
	}, nil
}

// World exposes the world for editing between frames.
func (v *Viewer) World() *world.World {
	return v.world
}

// Frame makes sure every chunk within the configured radius of center
// exists, remeshes them all and returns the concatenated vertex stream.
func (v *Viewer) Frame(center world.ChunkPos) ([]block.Vertex, Stats) {
	area, created := v.world.EnsureRadius(center, v.cfg.ViewRadius, v.cfg.VerticalRadius)
	v.world.RegenerateMeshes(area)
	verts := v.world.FlattenMeshes(area)

	quads := len(verts) / block.VerticesPerQuad
	return verts, Stats{
		Chunks:    len(area),
		Generated: created,
		Quads:     quads,
		Vertices:  len(verts),
		Indices:   quads * 6,
	}
}

// Run renders one frame at the origin, logs its statistics and exports the
// mesh if an export path is configured.
func (v *Viewer) Run(ctx context.Context) (Stats, error) {
	verts, stats := v.Frame(world.ChunkPos{})
	v.log.Info("frame meshed",
		"chunks", stats.Chunks,
		"generated", stats.Generated,
		"quads", stats.Quads,
		"vertices", stats.Vertices,
		"indices", stats.Indices,
	)

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if v.cfg.ExportPath == "" {
		return stats, nil
	}
	faces, err := export.WriteFile(v.cfg.ExportPath, verts)
	if err != nil {
		return stats, fmt.Errorf("export mesh: %w", err)
	}
	v.log.Info("mesh exported", "path", v.cfg.ExportPath, "faces", faces)
	return stats, nil
}

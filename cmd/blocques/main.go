package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/blocques/internal/config"
	"github.com/OCharnyshevich/blocques/internal/viewer"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "terrain seed")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, `chunk generator: "terrain", "flat" or "empty"`)
	flag.IntVar(&cfg.ViewRadius, "view-radius", cfg.ViewRadius, "horizontal load radius in chunks")
	flag.IntVar(&cfg.VerticalRadius, "vertical-radius", cfg.VerticalRadius, "vertical load radius in chunks")
	flag.StringVar(&cfg.AtlasSource, "atlas", cfg.AtlasSource, "atlas manifest: path, URL or go-getter address")
	flag.StringVar(&cfg.ExportPath, "export", cfg.ExportPath, "write the mesh as OBJ (.obj or .obj.zst)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			slog.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	v, err := viewer.New(ctx, cfg, log)
	if err != nil {
		log.Error("start viewer", "error", err)
		os.Exit(1)
	}
	if _, err := v.Run(ctx); err != nil {
		log.Error("viewer error", "error", err)
		os.Exit(1)
	}
}

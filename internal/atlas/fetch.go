package atlas

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Fetch copies the manifest at src into dir and returns the local path. src
// is anything go-getter understands: a local path, an http(s) URL, or a
// forced getter such as "git::https://host/repo.git//atlas.yaml".
func Fetch(ctx context.Context, src, dir string) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	dst := filepath.Join(dir, "atlas.yaml")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch atlas manifest %s: %w", src, err)
	}
	return dst, nil
}

// FetchAndLoad fetches src into a temporary directory and parses it.
func FetchAndLoad(ctx context.Context, src string) (*Manifest, error) {
	dir, err := os.MkdirTemp("", "blocques-atlas-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path, err := Fetch(ctx, src, dir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

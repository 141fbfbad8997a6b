package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/aw88/picross/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// newLoader returns a loader over the embedded configs directory.
func newLoader() (*config.Loader, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

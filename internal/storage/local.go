package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BuildForSDG/Team-083-Backend/internal/config"
)

// AssetStore abstracts the file storage used for uploaded avatars so the
// account lifecycle can release assets during cascading deletion.
type AssetStore interface {
	// DiskPath maps a public asset path like /assets/images/x.png to the
	// location on disk a new upload should be written to.
	DiskPath(publicPath string) string
	// Release removes the asset behind a public path. Releasing a path that
	// no longer exists is not an error.
	Release(publicPath string) error
}

type localStore struct {
	publicDir string
}

// NewLocalStore serves assets from a public directory on local disk.
func NewLocalStore(cfg config.StorageConfig) AssetStore {
	return &localStore{publicDir: cfg.PublicDir}
}

func (s *localStore) DiskPath(publicPath string) string {
	return filepath.Join(s.publicDir, filepath.FromSlash(strings.TrimPrefix(publicPath, "/")))
}

func (s *localStore) Release(publicPath string) error {
	if publicPath == "" {
		return nil
	}
	if err := os.Remove(s.DiskPath(publicPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("release asset %s: %w", publicPath, err)
	}
	return nil
}

// Package assets implements ports.AssetSource over a directory tree or a
// remote asset server.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

var _ ports.AssetSource = (*FS)(nil)

// FS serves assets from a file system. Refs are slash-separated paths
// relative to its root.
type FS struct {
	fsys fs.FS
}

// NewFS returns a source reading from fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// NewDir returns a source rooted at dir on the local disk.
func NewDir(dir string) *FS {
	return &FS{fsys: os.DirFS(dir)}
}

// Fetch reads ref. Refs that are absolute or climb out of the root are
// rejected as not found.
func (s *FS) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.TrimPrefix(ref, "./")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("asset %q: invalid path: %w", ref, domain.ErrNotFound)
	}

	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("asset %q: %w", ref, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading asset %q: %w", ref, err)
	}
	return data, nil
}

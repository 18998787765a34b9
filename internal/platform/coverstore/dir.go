// Package coverstore answers whether a book's cover file exists, either in a
// local directory or in an S3-compatible bucket.
package coverstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultDir is where cover files live unless configured otherwise.
const DefaultDir = "data"

// Dir looks covers up under a root directory.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	if root == "" {
		root = DefaultDir
	}
	return &Dir{root: root}
}

// Exists reports whether name is a regular file under the root. Names that
// are empty or would escape the root never exist.
func (d *Dir) Exists(ctx context.Context, name string) (bool, error) {
	if name == "" || !filepath.IsLocal(name) {
		return false, nil
	}
	info, err := os.Stat(filepath.Join(d.root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat cover %s: %w", name, err)
	}
	return info.Mode().IsRegular(), nil
}

package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploaded files into a media directory. Stored names are
// uuid-prefixed so concurrent uploads with the same original filename
// cannot overwrite each other.
type Store struct {
	dir string
}

// New creates the media directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save streams src into the store and returns the relative path of the
// stored file. The original filename is reduced to its base name before use.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + "_" + filepath.Base(originalName)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file %s: %w", path, err)
	}

	return path, nil
}

// Remove deletes a stored file. A missing file is not an error: the row is
// authoritative and the file may already be gone.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file %s: %w", path, err)
	}
	return nil
}

package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore writes output files atomically: data goes to a uniquely named
// temporary file in the destination directory, which is then renamed over the
// destination.
type FileStore struct {
	perm os.FileMode
}

func NewFileStore() *FileStore {
	return &FileStore{perm: 0644}
}

// WriteFile replaces path with data. The destination is either untouched or
// fully written.
func (s *FileStore) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmpPath, data, s.perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

package storage

import (
	"os"
	"path/filepath"
)

// FileStorage stores cover pictures under generated names and hands back
// the reference the article keeps.
type FileStorage interface {
	Save(name string, data []byte) (string, error)
	Remove(name string) error
}

type DiskStorage struct {
	baseDir string
}

func NewDiskStorage(baseDir string) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStorage{baseDir: baseDir}, nil
}

func (s *DiskStorage) Save(name string, data []byte) (string, error) {
	// filepath.Base keeps callers from writing outside the upload dir
	stored := filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.baseDir, stored), data, 0o644); err != nil {
		return "", err
	}
	return stored, nil
}

func (s *DiskStorage) Remove(name string) error {
	return os.Remove(filepath.Join(s.baseDir, filepath.Base(name)))
}

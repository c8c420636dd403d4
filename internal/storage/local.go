package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists uploaded file contents and returns the name they were
// stored under. The name is a bare file name; callers decide how it maps
// onto URLs.
type Store interface {
	Save(filename string, data []byte) (string, error)
}

// LocalStore writes uploads to a directory on local disk.
type LocalStore struct {
	root string
}

// Ensure LocalStore implements Store
var _ Store = (*LocalStore)(nil)

// NewLocalStore creates the upload directory if needed and returns a store
// rooted there.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Save writes data under a collision-free name derived from the original
// filename and returns that name, e.g. "3f5c..._photo.jpg". The name never
// contains path separators, wherever the store root happens to live.
func (s *LocalStore) Save(filename string, data []byte) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename))
	dest := filepath.Join(s.root, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	return name, nil
}

// ContentHash returns the hex-encoded SHA-256 of data. Media rows carry it
// so duplicate uploads are detectable before they earn tokens.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

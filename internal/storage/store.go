package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"praxida/internal/models"
)

// Store is the transient staging area for uploaded files. Each file lives
// under a collision-resistant name and is removed again before the request
// that created it completes.
type Store struct {
	dir string
}

// New creates the upload directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the staging directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the upload to disk under a unique generated name. Uniqueness
// comes from the millisecond timestamp plus a random suffix, so concurrent
// uploads need no coordination.
func (s *Store) Save(r io.Reader, originalName, mimeType string) (*models.StoredFile, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	size, err := io.Copy(dst, r)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	return &models.StoredFile{
		OriginalName: filepath.Base(originalName),
		StoredPath:   path,
		MimeType:     mimeType,
		Size:         size,
	}, nil
}

// Remove deletes a staged file. Deletion is best-effort: failures are logged
// and never escalate to the request that triggered them.
func (s *Store) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("remove upload %s failed: %v", path, err)
	}
}

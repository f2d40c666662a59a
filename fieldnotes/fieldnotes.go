// Package fieldnotes persists free-text annotations about the ad hoc
// fields admins discover on news documents. The notes live in a small JSON
// side file next to the config, not in the database.
package fieldnotes

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const DefaultFileName = "field-comments.json"

// Store reads and writes the side file. Concurrent request handlers share
// one Store, so file access is serialized with a mutex.
type Store struct {
	mu   sync.Mutex
	path string
}

// File is the on-disk shape of the side file.
type File struct {
	Comments  map[string]string `json:"comments"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Load returns the saved comments. A missing file is an empty map, not an
// error.
func (s *Store) Load() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Comments == nil {
		f.Comments = map[string]string{}
	}
	return f.Comments, nil
}

// Save overwrites the side file with the given comments. The write goes
// through a temp file and rename so a crash never leaves a torn file.
func (s *Store) Save(comments map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if comments == nil {
		comments = map[string]string{}
	}
	f := File{Comments: comments, UpdatedAt: time.Now()}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".field-comments-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Package history keeps a journal of successful generation runs using JSON
// file storage.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/eqdomains/eqdomains/internal/domain"
)

const historyFile = ".eqdomains/history/runs.json"

// FileHistory implements domain.RunHistory on the local filesystem.
type FileHistory struct{}

var _ domain.RunHistory = (*FileHistory)(nil)

// New creates a FileHistory.
func New() *FileHistory {
	return &FileHistory{}
}

// Save appends entry to the journal under dir, creating it when needed.
func (h *FileHistory) Save(dir string, entry domain.RunEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	path := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Load reads the journal under dir. A missing journal is an empty one.
func (h *FileHistory) Load(dir string) ([]domain.RunEntry, error) {
	data, err := os.ReadFile(filepath.Join(dir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

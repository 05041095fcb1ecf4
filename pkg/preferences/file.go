package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the preferences document written under the settings directory
const FileName = "preferences.json"

type fileDocument struct {
	Theme Theme `json:"theme"`
}

// FileStore keeps the preference in a small JSON document
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore stores preferences in dir/preferences.json. The directory is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, FileName)}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) GetTheme() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return ThemeNone, err
	}
	return doc.Theme, nil
}

func (s *FileStore) SetTheme(theme Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		// a corrupt document is replaced rather than blocking the save
		doc = fileDocument{}
	}
	doc.Theme = theme

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func (s *FileStore) load() (fileDocument, error) {
	var doc fileDocument

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fileDocument{}, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return doc, nil
}

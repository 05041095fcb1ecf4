package preferences

import "sync"

// Store persists the theme preference.
// GetTheme returns ThemeNone when nothing has been saved yet.
type Store interface {
	GetTheme() (Theme, error)
	SetTheme(theme Theme) error
}

// MemoryStore keeps the preference in process memory
type MemoryStore struct {
	mu    sync.RWMutex
	theme Theme
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetTheme() (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme, nil
}

func (s *MemoryStore) SetTheme(theme Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}

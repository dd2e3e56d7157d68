package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// PersistedState is the preference subset that survives restarts.
// Session identity and derived data are deliberately excluded.
type PersistedState struct {
	DemoMode         bool   `json:"demoMode"`
	CurrentRegion    string `json:"currentRegion"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
}

// Persister loads and saves the preference subset
type Persister interface {
	Load() (*PersistedState, error)
	Save(PersistedState) error
}

// FilePersister stores preferences as JSON on disk
type FilePersister struct {
	mu   sync.Mutex
	path string
}

// NewFilePersister creates a file-backed persister at the given path
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Load reads the persisted preferences. A missing file is not an error
// and yields nil state.
func (p *FilePersister) Load() (*PersistedState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save writes the preferences atomically via a temp file rename
func (p *FilePersister) Save(state PersistedState) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	tmp, err := os.CreateTemp(dir, ".canvas-state-*")
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
	return os.Rename(tmpName, p.path)
}

// MemoryPersister keeps preferences in memory only
type MemoryPersister struct {
	mu    sync.Mutex
	state *PersistedState
}

// NewMemoryPersister creates an in-memory persister
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// Load returns the last saved preferences, nil before any save
func (p *MemoryPersister) Load() (*PersistedState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == nil {
		return nil, nil
	}
	copied := *p.state
	return &copied, nil
}

// Save records the preferences
func (p *MemoryPersister) Save(state PersistedState) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = &state
	return nil
}

// Package store holds the canvas session state shared by the controller
// and the HTTP layer. A small subset of the state survives restarts
// through a pluggable Persister.
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// Snapshot represents the full session state at one point in time
type Snapshot struct {
	DemoMode               bool         `json:"demo_mode"`
	AWSConnected           bool         `json:"aws_connected"`
	Authenticated          bool         `json:"authenticated"`
	User                   *models.User `json:"user,omitempty"`
	OverallComplianceScore float64      `json:"overall_compliance_score"`
	CurrentRegion          string       `json:"current_region"`
	SidebarCollapsed       bool         `json:"sidebar_collapsed"`
	ActiveTab              string       `json:"active_tab"`

	// UpstreamToken authorizes upstream API calls. It never leaves the
	// process: excluded from JSON responses and from persistence.
	UpstreamToken string `json:"-"`
}

// Listener receives the new snapshot after every mutation
type Listener func(Snapshot)

// Store represents the mutable session state with change notification
type Store struct {
	mu        sync.Mutex
	state     Snapshot
	listeners map[int]Listener
	nextID    int
	persister Persister
	logger    *zap.Logger
}

// New creates a store seeded from the persister. Missing or unreadable
// persisted state falls back to the provided defaults.
func New(persister Persister, defaults Snapshot, logger *zap.Logger) *Store {
	s := &Store{
		state:     defaults,
		listeners: make(map[int]Listener),
		persister: persister,
		logger:    logger,
	}

	if persister != nil {
		persisted, err := persister.Load()
		if err != nil {
			logger.Warn("Failed to load persisted state, using defaults", zap.Error(err))
		} else if persisted != nil {
			s.state.DemoMode = persisted.DemoMode
			if persisted.CurrentRegion != "" {
				s.state.CurrentRegion = persisted.CurrentRegion
			}
			s.state.SidebarCollapsed = persisted.SidebarCollapsed
		}
	}

	return s
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener called after every mutation. The
// returned function removes the listener.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetDemoMode switches between demo and live data sources
func (s *Store) SetDemoMode(enabled bool) {
	s.mutate(func(st *Snapshot) {
		st.DemoMode = enabled
	})
}

// SetAWSConnected records whether live AWS data is reachable
func (s *Store) SetAWSConnected(connected bool) {
	s.mutate(func(st *Snapshot) {
		st.AWSConnected = connected
	})
}

// SetUser records a successful authentication
func (s *Store) SetUser(user models.User) {
	s.mutate(func(st *Snapshot) {
		u := user
		st.User = &u
		st.Authenticated = true
	})
}

// SetUpstreamToken records the upstream session token attached to
// outbound API calls
func (s *Store) SetUpstreamToken(token string) {
	s.mutate(func(st *Snapshot) {
		st.UpstreamToken = token
	})
}

// UpstreamToken returns the current upstream session token, empty when
// no upstream session exists
func (s *Store) UpstreamToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UpstreamToken
}

// SetComplianceScore records the latest overall compliance score
func (s *Store) SetComplianceScore(score float64) {
	s.mutate(func(st *Snapshot) {
		st.OverallComplianceScore = score
	})
}

// SetCurrentRegion switches the region scope for subsequent loads
func (s *Store) SetCurrentRegion(region string) {
	s.mutate(func(st *Snapshot) {
		st.CurrentRegion = region
	})
}

// SetSidebarCollapsed records the sidebar layout preference
func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.mutate(func(st *Snapshot) {
		st.SidebarCollapsed = collapsed
	})
}

// SetActiveTab records the page currently displayed
func (s *Store) SetActiveTab(tab string) {
	s.mutate(func(st *Snapshot) {
		st.ActiveTab = tab
	})
}

// Logout clears the authenticated identity and derived data while
// preserving the demo mode and region preferences
func (s *Store) Logout() {
	s.mutate(func(st *Snapshot) {
		st.User = nil
		st.Authenticated = false
		st.AWSConnected = false
		st.OverallComplianceScore = 0
		st.ActiveTab = ""
		st.UpstreamToken = ""
	})
}

// mutate applies fn under the lock, persists the preference subset and
// notifies listeners outside the lock
func (s *Store) mutate(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	if s.persister != nil {
		if err := s.persister.Save(PersistedState{
			DemoMode:         snapshot.DemoMode,
			CurrentRegion:    snapshot.CurrentRegion,
			SidebarCollapsed: snapshot.SidebarCollapsed,
		}); err != nil {
			s.logger.Warn("Failed to persist state", zap.Error(err))
		}
	}

	for _, l := range listeners {
		l(snapshot)
	}
}

package store

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(NewMemoryPersister(), Snapshot{
		DemoMode:      true,
		CurrentRegion: "us-east-1",
	}, zap.NewNop())
}

func TestStoreDefaults(t *testing.T) {
	s := newTestStore(t)
	snap := s.Snapshot()

	assert.True(t, snap.DemoMode)
	assert.Equal(t, "us-east-1", snap.CurrentRegion)
	assert.False(t, snap.Authenticated)
	assert.Nil(t, snap.User)
}

func TestLogoutPreservesPreferences(t *testing.T) {
	s := newTestStore(t)

	s.SetUser(models.User{ID: "u1", Email: "admin@cloudcanvas.io"})
	s.SetDemoMode(false)
	s.SetCurrentRegion("eu-west-1")
	s.SetComplianceScore(88)
	s.SetAWSConnected(true)
	s.SetActiveTab("finops")

	s.Logout()
	snap := s.Snapshot()

	assert.Nil(t, snap.User)
	assert.False(t, snap.Authenticated)
	assert.False(t, snap.AWSConnected)
	assert.Equal(t, 0.0, snap.OverallComplianceScore)
	assert.Empty(t, snap.ActiveTab)

	// Preferences survive logout
	assert.False(t, snap.DemoMode)
	assert.Equal(t, "eu-west-1", snap.CurrentRegion)
}

func TestUpstreamToken(t *testing.T) {
	s := newTestStore(t)

	s.SetUpstreamToken("sess-abc")
	assert.Equal(t, "sess-abc", s.UpstreamToken())

	t.Run("Excluded from serialized snapshots", func(t *testing.T) {
		raw, err := json.Marshal(s.Snapshot())
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "sess-abc")
	})

	t.Run("Cleared on logout", func(t *testing.T) {
		s.Logout()
		assert.Empty(t, s.UpstreamToken())
	})
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := newTestStore(t)

	var got []Snapshot
	unsub := s.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	s.SetDemoMode(false)
	require.Len(t, got, 1)
	assert.False(t, got[0].DemoMode)

	unsub()
	s.SetDemoMode(true)
	assert.Len(t, got, 1)
}

func TestPersistedSubset(t *testing.T) {
	persister := NewMemoryPersister()
	s := New(persister, Snapshot{DemoMode: true, CurrentRegion: "us-east-1"}, zap.NewNop())

	s.SetUser(models.User{ID: "u1"})
	s.SetDemoMode(false)
	s.SetSidebarCollapsed(true)
	s.SetCurrentRegion("ap-southeast-1")

	saved, err := persister.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.False(t, saved.DemoMode)
	assert.True(t, saved.SidebarCollapsed)
	assert.Equal(t, "ap-southeast-1", saved.CurrentRegion)
}

func TestStoreRestoresPersistedState(t *testing.T) {
	persister := NewMemoryPersister()
	require.NoError(t, persister.Save(PersistedState{
		DemoMode:         false,
		CurrentRegion:    "eu-central-1",
		SidebarCollapsed: true,
	}))

	s := New(persister, Snapshot{DemoMode: true, CurrentRegion: "us-east-1"}, zap.NewNop())
	snap := s.Snapshot()

	assert.False(t, snap.DemoMode)
	assert.Equal(t, "eu-central-1", snap.CurrentRegion)
	assert.True(t, snap.SidebarCollapsed)
}

func TestFilePersisterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud-compliance-canvas-storage.json")
	p := NewFilePersister(path)

	t.Run("Missing file yields nil state", func(t *testing.T) {
		state, err := p.Load()
		require.NoError(t, err)
		assert.Nil(t, state)
	})

	t.Run("Save then load", func(t *testing.T) {
		require.NoError(t, p.Save(PersistedState{
			DemoMode:         true,
			CurrentRegion:    "us-west-2",
			SidebarCollapsed: true,
		}))

		state, err := p.Load()
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.True(t, state.DemoMode)
		assert.Equal(t, "us-west-2", state.CurrentRegion)
		assert.True(t, state.SidebarCollapsed)
	})

	t.Run("Overwrites replace previous state", func(t *testing.T) {
		require.NoError(t, p.Save(PersistedState{DemoMode: false}))

		state, err := p.Load()
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.False(t, state.DemoMode)
		assert.Empty(t, state.CurrentRegion)
	})
}

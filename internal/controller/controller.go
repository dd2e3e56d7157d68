// Package controller drives page loading. Each page moves through a
// small state machine (idle, loading, ready, error) and is filled from
// either the demo generator or the live upstream depending on the
// session's demo mode.
package controller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/cache"
	"github.com/cloudcanvas/compliance-canvas/internal/client"
	"github.com/cloudcanvas/compliance-canvas/internal/demo"
	"github.com/cloudcanvas/compliance-canvas/internal/store"
)

// Phase represents a page's position in the loading state machine
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

// Page identifies one canvas page
type Page string

const (
	PageDashboard       Page = "dashboard"
	PageSecurity        Page = "security"
	PageCompliance      Page = "compliance"
	PageFinOps          Page = "finops"
	PageVulnerabilities Page = "vulnerabilities"
	PageGuardrails      Page = "guardrails"
	PageRemediation     Page = "remediation"
	PageAccounts        Page = "accounts"
	PageAI              Page = "ai"
	PageIntegrations    Page = "integrations"
)

// Pages lists every page in display order
var Pages = []Page{
	PageDashboard,
	PageSecurity,
	PageCompliance,
	PageFinOps,
	PageVulnerabilities,
	PageGuardrails,
	PageRemediation,
	PageAccounts,
	PageAI,
	PageIntegrations,
}

// Valid reports whether the page is one of the known pages
func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// PageState represents one page's current loading state and view
type PageState struct {
	Phase     Phase       `json:"phase"`
	View      interface{} `json:"view,omitempty"`
	Error     string      `json:"error,omitempty"`
	UpdatedAt time.Time   `json:"updated_at,omitempty"`
}

// UpdateFunc receives page state transitions, used by the realtime hub
type UpdateFunc func(Page, PageState)

// Controller coordinates page loads against the store's session state
type Controller struct {
	mu         sync.Mutex
	api        *client.Client
	demo       *demo.Generator
	store      *store.Store
	cache      *cache.Cache
	logger     *zap.Logger
	trendDays  int
	pages      map[Page]PageState
	generation uint64
	demoMode   bool
	onUpdate   UpdateFunc
	ctx        context.Context
	cancel     context.CancelFunc
	unsub      func()
}

// Option configures optional controller behavior
type Option func(*Controller)

// WithTrendDays overrides the default trend window length
func WithTrendDays(days int) Option {
	return func(c *Controller) {
		if days > 0 {
			c.trendDays = days
		}
	}
}

// WithOnUpdate registers a callback invoked after every page transition
func WithOnUpdate(fn UpdateFunc) Option {
	return func(c *Controller) {
		c.onUpdate = fn
	}
}

// New creates a controller and subscribes it to demo mode changes. A
// mode change invalidates everything loaded so far and reloads the
// pages that had data.
func New(api *client.Client, gen *demo.Generator, st *store.Store, pageCache *cache.Cache, logger *zap.Logger, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		api:       api,
		demo:      gen,
		store:     st,
		cache:     pageCache,
		logger:    logger,
		trendDays: 30,
		pages:     make(map[Page]PageState),
		demoMode:  st.Snapshot().DemoMode,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, p := range Pages {
		c.pages[p] = PageState{Phase: PhaseIdle}
	}

	c.unsub = st.Subscribe(c.onStoreChange)
	return c
}

// Close unsubscribes from the store and cancels in-flight loads
func (c *Controller) Close() {
	if c.unsub != nil {
		c.unsub()
	}
	c.cancel()
}

// State returns the current state of one page
func (c *Controller) State(page Page) PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pages[page]
}

// States returns the current state of every page
func (c *Controller) States() map[Page]PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Page]PageState, len(c.pages))
	for p, s := range c.pages {
		out[p] = s
	}
	return out
}

// Load fetches a page's data and transitions it through loading to
// ready or error. A failed load keeps no partial view.
func (c *Controller) Load(ctx context.Context, page Page) PageState {
	c.mu.Lock()
	gen := c.generation
	demoMode := c.demoMode
	c.transitionLocked(page, PageState{Phase: PhaseLoading, View: c.pages[page].View})
	c.mu.Unlock()

	view, err := c.loadView(ctx, page, demoMode)

	c.mu.Lock()

	// A mode switch during the load makes this result stale
	if c.generation != gen {
		state := c.pages[page]
		c.mu.Unlock()
		return state
	}

	if err != nil {
		c.logger.Warn("Page load failed",
			zap.String("page", string(page)),
			zap.Error(err))
		c.transitionLocked(page, PageState{
			Phase:     PhaseError,
			Error:     err.Error(),
			UpdatedAt: time.Now(),
		})
	} else {
		c.transitionLocked(page, PageState{
			Phase:     PhaseReady,
			View:      view,
			UpdatedAt: time.Now(),
		})
	}
	state := c.pages[page]
	c.mu.Unlock()

	if !demoMode {
		c.store.SetAWSConnected(err == nil)
	}
	return state
}

// RefreshAll reloads every page that previously had data or an error
func (c *Controller) RefreshAll(ctx context.Context) {
	c.mu.Lock()
	stale := make([]Page, 0, len(c.pages))
	for p, s := range c.pages {
		if s.Phase != PhaseIdle {
			stale = append(stale, p)
		}
	}
	c.mu.Unlock()

	for _, p := range stale {
		c.Load(ctx, p)
	}
}

// onStoreChange reacts to session state mutations. Only a demo mode
// change forces a reload.
func (c *Controller) onStoreChange(snapshot store.Snapshot) {
	c.mu.Lock()
	changed := snapshot.DemoMode != c.demoMode
	if changed {
		c.demoMode = snapshot.DemoMode
		c.generation++
	}
	c.mu.Unlock()

	if !changed {
		return
	}

	c.logger.Info("Demo mode changed, reloading pages",
		zap.Bool("demo_mode", snapshot.DemoMode))

	if c.cache != nil {
		keys := make([]string, 0, len(Pages))
		for _, p := range Pages {
			keys = append(keys, cache.PageKey(string(p), snapshot.CurrentRegion))
		}
		c.cache.Invalidate(c.ctx, keys...)
	}

	go c.RefreshAll(c.ctx)
}

// transitionLocked records a page state and notifies the update hook.
// Callers hold c.mu.
func (c *Controller) transitionLocked(page Page, state PageState) {
	c.pages[page] = state
	if c.onUpdate != nil {
		go c.onUpdate(page, state)
	}
}

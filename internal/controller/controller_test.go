package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/cache"
	"github.com/cloudcanvas/compliance-canvas/internal/client"
	"github.com/cloudcanvas/compliance-canvas/internal/demo"
	"github.com/cloudcanvas/compliance-canvas/internal/models"
	"github.com/cloudcanvas/compliance-canvas/internal/store"
	"github.com/cloudcanvas/compliance-canvas/internal/viewmodel"
)

// testFixture wires a controller against a counting upstream stub
type testFixture struct {
	ctrl     *Controller
	store    *store.Store
	requests *atomic.Int64
	server   *httptest.Server
}

func newFixture(t *testing.T, demoMode bool, handler http.HandlerFunc) *testFixture {
	t.Helper()

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	logger := zap.NewNop()
	api := client.New(srv.URL, 5*time.Second, logger)
	gen := demo.New(42)
	st := store.New(store.NewMemoryPersister(), store.Snapshot{
		DemoMode:      demoMode,
		CurrentRegion: "us-east-1",
	}, logger)

	ctrl := New(api, gen, st, cache.New(nil, 0, logger), logger)
	t.Cleanup(ctrl.Close)

	return &testFixture{ctrl: ctrl, store: st, requests: &requests, server: srv}
}

func failingUpstream(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`{"error":"upstream down"}`))
}

func dashboardUpstream(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"success":true,"data":{
		"compliance_score": 84.5,
		"key_metrics": [{"id":"total-findings","title":"Total Findings","value":900,"change":-3}],
		"findings": {"critical":20,"high":90,"medium":300,"low":450,"informational":200},
		"trend": {"dates":["2026-08-28"],"critical":[10],"high":[30],"medium":[45]}
	}}`))
}

func TestDemoModeMakesNoHTTPCalls(t *testing.T) {
	f := newFixture(t, true, failingUpstream)

	for _, page := range Pages {
		state := f.ctrl.Load(context.Background(), page)
		assert.Equal(t, PhaseReady, state.Phase, "page %s", page)
		assert.NotNil(t, state.View, "page %s", page)
		assert.Empty(t, state.Error, "page %s", page)
	}

	assert.Equal(t, int64(0), f.requests.Load())
}

func TestDemoFinOpsIncludesUnitEconomicsAndSustainability(t *testing.T) {
	f := newFixture(t, true, failingUpstream)

	state := f.ctrl.Load(context.Background(), PageFinOps)
	require.Equal(t, PhaseReady, state.Phase)

	view, ok := state.View.(viewmodel.FinOpsView)
	require.True(t, ok)
	assert.Greater(t, view.UnitEconomics.CostPerCustomer, 0.0)
	assert.Equal(t, "USD", view.UnitEconomics.Currency)
	assert.Greater(t, view.Sustainability.CarbonEmissionsKg, 0.0)
	assert.Len(t, view.Sustainability.TopRegions, 3)
}

func TestLiveFailureYieldsErrorState(t *testing.T) {
	f := newFixture(t, false, failingUpstream)

	state := f.ctrl.Load(context.Background(), PageDashboard)

	assert.Equal(t, PhaseError, state.Phase)
	assert.Nil(t, state.View)
	assert.NotEmpty(t, state.Error)
	assert.False(t, f.store.Snapshot().AWSConnected)
}

func TestLiveSuccessYieldsReadyState(t *testing.T) {
	f := newFixture(t, false, dashboardUpstream)

	state := f.ctrl.Load(context.Background(), PageDashboard)

	require.Equal(t, PhaseReady, state.Phase)
	view, ok := state.View.(viewmodel.DashboardView)
	require.True(t, ok)
	assert.Equal(t, 84.5, view.ComplianceScore)
	assert.True(t, f.store.Snapshot().AWSConnected)
	assert.Equal(t, 84.5, f.store.Snapshot().OverallComplianceScore)
}

func TestIdlePagesStayIdle(t *testing.T) {
	f := newFixture(t, true, failingUpstream)

	f.ctrl.Load(context.Background(), PageDashboard)

	states := f.ctrl.States()
	assert.Equal(t, PhaseReady, states[PageDashboard].Phase)
	assert.Equal(t, PhaseIdle, states[PageSecurity].Phase)
}

func TestModeToggleReloadsLoadedPages(t *testing.T) {
	f := newFixture(t, false, failingUpstream)

	state := f.ctrl.Load(context.Background(), PageDashboard)
	require.Equal(t, PhaseError, state.Phase)

	// Switching to demo mode must clear the failure without the network
	f.store.SetDemoMode(true)

	require.Eventually(t, func() bool {
		return f.ctrl.State(PageDashboard).Phase == PhaseReady
	}, 2*time.Second, 10*time.Millisecond)

	assert.NotNil(t, f.ctrl.State(PageDashboard).View)
}

func TestUnrelatedStoreChangesDoNotReload(t *testing.T) {
	f := newFixture(t, true, failingUpstream)

	f.ctrl.Load(context.Background(), PageDashboard)
	before := f.ctrl.State(PageDashboard).UpdatedAt

	f.store.SetSidebarCollapsed(true)
	f.store.SetActiveTab("security")
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, before, f.ctrl.State(PageDashboard).UpdatedAt)
}

func TestActionsShortCircuitInDemoMode(t *testing.T) {
	f := newFixture(t, true, failingUpstream)
	ctx := context.Background()

	deploy, err := f.ctrl.DeployGuardrail(ctx, models.GuardrailDeployRequest{PolicyID: "scp-1", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "VALIDATED", deploy.Status)

	code, err := f.ctrl.GenerateRemediationCode(ctx, models.RemediationCodeRequest{FindingID: "f-1", Language: "python"})
	require.NoError(t, err)
	assert.NotEmpty(t, code.Code)

	batch, err := f.ctrl.ExecuteBatchRemediation(ctx, models.BatchRemediationRequest{FindingIDs: []string{"f-1", "f-2"}})
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Submitted)

	provision, err := f.ctrl.ProvisionAccount(ctx, models.ProvisionRequest{AccountName: "sandbox-7"})
	require.NoError(t, err)
	assert.NotEmpty(t, provision.RequestID)

	chat, err := f.ctrl.Chat(ctx, models.ChatRequest{Messages: []models.ChatMessage{{Role: "user", Content: "status?"}}})
	require.NoError(t, err)
	assert.Equal(t, "assistant", chat.Message.Role)

	ticket, err := f.ctrl.CreateJiraTicket(ctx, models.IntegrationTicketRequest{Title: "Fix finding"})
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)

	assert.Equal(t, int64(0), f.requests.Load())
}

func TestActionsPassThroughInLiveMode(t *testing.T) {
	f := newFixture(t, false, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/guardrails/deploy", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"deployment_id":"dep-1","status":"DEPLOYED","message":"ok"}}`))
	})

	result, err := f.ctrl.DeployGuardrail(context.Background(), models.GuardrailDeployRequest{PolicyID: "scp-1"})
	require.NoError(t, err)
	assert.Equal(t, "dep-1", result.DeploymentID)
	assert.Equal(t, int64(1), f.requests.Load())
}

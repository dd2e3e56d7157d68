package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"healthy","version":"1.0.0"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop(), WithTokenSource(func() string {
		return "test-token"
	}))

	_, err := c.FetchHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.FetchHealth(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestEnvelopeUnwrapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"compliance_score":87.5,"key_metrics":[{"id":"mtd-cost","value":125000}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop())
	data, err := c.FetchDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 87.5, data.ComplianceScore)
	require.Len(t, data.KeyMetrics, 1)
	assert.Equal(t, "mtd-cost", data.KeyMetrics[0].ID)
}

func TestAzureLoginReturnsSessionToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/azure", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"token":"upstream-sess-1","user":{"id":"u1","email":"admin@cloudcanvas.io"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop())
	session, err := c.LoginWithAzure(context.Background(), "azure-id-token")
	require.NoError(t, err)

	assert.Equal(t, "upstream-sess-1", session.Token)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, "admin@cloudcanvas.io", session.User.Email)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"token expired"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.FetchDashboard(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestServerErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"database unavailable"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.FetchThreats(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthorized))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "database unavailable", apiErr.Message)
}

func TestQueryParamsEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "CRITICAL", r.URL.Query().Get("severity"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop())
	findings, err := c.FetchSecurityFindings(context.Background(), FindingFilter{
		Severity: "CRITICAL",
		Limit:    25,
	})
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestPostBodyAndResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/remediation/batch", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"batch_id":"batch-1","submitted":3,"status":"QUEUED"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop())
	result, err := c.ExecuteBatchRemediation(context.Background(), models.BatchRemediationRequest{
		FindingIDs: []string{"f1", "f2", "f3"},
		Action:     "auto_remediate",
	})
	require.NoError(t, err)
	assert.Equal(t, "batch-1", result.BatchID)
	assert.Equal(t, 3, result.Submitted)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.FetchDashboard(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

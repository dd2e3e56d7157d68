package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

func TestNormalizeDashboard(t *testing.T) {
	t.Run("Zero value payload is safe", func(t *testing.T) {
		view := NormalizeDashboard(models.DashboardData{})
		assert.Equal(t, 0.0, view.ComplianceScore)
		assert.Empty(t, view.Metrics)
		assert.NotNil(t, view.Trend.Dates)
		assert.NotNil(t, view.Trend.Critical)
		assert.NotNil(t, view.Trend.High)
		assert.NotNil(t, view.Trend.Medium)
	})

	t.Run("Metric categories resolve by id", func(t *testing.T) {
		view := NormalizeDashboard(models.DashboardData{
			KeyMetrics: []models.KeyMetric{
				{ID: "mtd-cost", Title: "MTD Cost", Value: 200000, Change: 5},
				{ID: "compliance-score", Title: "Compliance", Value: 88, Change: 2},
				{ID: "something-new", Title: "New", Value: 1, Change: 9},
			},
		})
		require.Len(t, view.Metrics, 3)
		assert.Equal(t, SentimentUnfavorable, view.Metrics[0].Sentiment)
		assert.Equal(t, SentimentFavorable, view.Metrics[1].Sentiment)
		assert.Equal(t, SentimentNeutral, view.Metrics[2].Sentiment)
	})

	t.Run("Negative counts and overshoot scores are corrected", func(t *testing.T) {
		view := NormalizeDashboard(models.DashboardData{
			ComplianceScore: 140,
			Findings:        models.FindingCounts{Critical: -3, High: 7},
		})
		assert.Equal(t, 100.0, view.ComplianceScore)
		assert.Equal(t, 0, view.Findings.Critical)
		assert.Equal(t, 7, view.Findings.High)
	})

	t.Run("Idempotent on clean input", func(t *testing.T) {
		raw := models.DashboardData{
			ComplianceScore: 85,
			KeyMetrics:      []models.KeyMetric{{ID: "total-findings", Value: 100, Change: -4}},
			Findings:        models.FindingCounts{Critical: 2, High: 10},
			Trend:           models.TrendSeries{Dates: []string{"2026-08-28"}, Critical: []int{2}, High: []int{10}, Medium: []int{20}},
		}
		first := NormalizeDashboard(raw)
		second := NormalizeDashboard(raw)
		assert.Equal(t, first, second)
	})
}

func TestNormalizeSecurity(t *testing.T) {
	t.Run("Total falls back to breakdown sum", func(t *testing.T) {
		view := NormalizeSecurity(models.SecurityHubSummary{
			Critical: 3, High: 10, Medium: 20,
		}, nil, nil, models.ConfigCompliance{})
		assert.Equal(t, 33, view.TotalFindings)
	})

	t.Run("Pass rates use safe division", func(t *testing.T) {
		view := NormalizeSecurity(models.SecurityHubSummary{}, nil, nil, models.ConfigCompliance{})
		assert.Equal(t, 0.0, view.PassRate)
		assert.Equal(t, 0.0, view.ConfigPassRate)
	})

	t.Run("Top findings exclude resolved and sort by severity", func(t *testing.T) {
		hub := models.SecurityHubSummary{
			Findings: []models.SecurityFinding{
				{ID: "f1", Severity: models.SeverityLow},
				{ID: "f2", Severity: models.SeverityCritical, Status: models.FindingResolved},
				{ID: "f3", Severity: models.SeverityHigh},
				{ID: "f4", Severity: models.SeverityCritical},
			},
		}
		view := NormalizeSecurity(hub, nil, nil, models.ConfigCompliance{})
		require.Len(t, view.TopFindings, 3)
		assert.Equal(t, "f4", view.TopFindings[0].ID)
		assert.Equal(t, "f3", view.TopFindings[1].ID)
		assert.Equal(t, "f1", view.TopFindings[2].ID)
	})

	t.Run("Nil slices become empty", func(t *testing.T) {
		view := NormalizeSecurity(models.SecurityHubSummary{}, nil, nil, models.ConfigCompliance{})
		assert.NotNil(t, view.GuardDuty)
		assert.NotNil(t, view.Inspector)
		assert.NotNil(t, view.EnabledStandards)
	})
}

func TestNormalizeCompliance(t *testing.T) {
	t.Run("Frameworks sorted by score descending", func(t *testing.T) {
		view := NormalizeCompliance(models.ComplianceScore{OverallScore: 80}, []models.ComplianceFramework{
			{ID: "pci", Score: 72},
			{ID: "soc2", Score: 95},
			{ID: "hipaa", Score: 85},
		}, nil)
		require.Len(t, view.Frameworks, 3)
		assert.Equal(t, "soc2", view.Frameworks[0].ID)
		assert.Equal(t, "pci", view.Frameworks[2].ID)
	})

	t.Run("Overall falls back to framework average", func(t *testing.T) {
		view := NormalizeCompliance(models.ComplianceScore{}, []models.ComplianceFramework{
			{ID: "a", Score: 80},
			{ID: "b", Score: 90},
		}, nil)
		assert.InDelta(t, 85.0, view.OverallScore, 0.001)
	})

	t.Run("Empty trend becomes stable", func(t *testing.T) {
		view := NormalizeCompliance(models.ComplianceScore{}, nil, nil)
		assert.Equal(t, "stable", view.Trend)
		assert.NotNil(t, view.History)
	})

	t.Run("Framework sentiment bands", func(t *testing.T) {
		view := NormalizeCompliance(models.ComplianceScore{}, []models.ComplianceFramework{
			{ID: "great", Score: 94},
			{ID: "ok", Score: 80},
			{ID: "poor", Score: 60},
		}, nil)
		assert.Equal(t, SentimentFavorable, view.Frameworks[0].Sentiment)
		assert.Equal(t, SentimentNeutral, view.Frameworks[1].Sentiment)
		assert.Equal(t, SentimentUnfavorable, view.Frameworks[2].Sentiment)
	})
}

func TestNormalizeFinOps(t *testing.T) {
	t.Run("Potential savings sums positive recommendations", func(t *testing.T) {
		view := NormalizeFinOps(models.CostOverview{}, nil, nil, []models.SavingsRecommendation{
			{MonthlySavings: 1200},
			{MonthlySavings: 300},
			{MonthlySavings: -50},
		}, models.CostForecast{}, models.UnitEconomics{}, models.Sustainability{})
		assert.Equal(t, 1500.0, view.PotentialSavings)
	})

	t.Run("Cost metrics carry bad-is-up polarity", func(t *testing.T) {
		view := NormalizeFinOps(models.CostOverview{
			CurrentMonthCost:  200000,
			MonthOverMonthPct: 12,
		}, nil, nil, nil, models.CostForecast{}, models.UnitEconomics{}, models.Sustainability{})
		require.NotEmpty(t, view.Metrics)
		assert.Equal(t, "current-month", view.Metrics[0].ID)
		assert.Equal(t, SentimentUnfavorable, view.Metrics[0].Sentiment)
	})

	t.Run("Top services truncated to six", func(t *testing.T) {
		services := make([]models.ServiceCost, 9)
		for i := range services {
			services[i] = models.ServiceCost{Service: "svc", Cost: float64(i)}
		}
		view := NormalizeFinOps(models.CostOverview{TopServices: services}, nil, nil, nil,
			models.CostForecast{}, models.UnitEconomics{}, models.Sustainability{})
		assert.Len(t, view.TopServices, 6)
		assert.Equal(t, 8.0, view.TopServices[0].Cost)
	})

	t.Run("Zero current cost yields zero forecast change", func(t *testing.T) {
		view := NormalizeFinOps(models.CostOverview{ForecastedMonthCost: 100}, nil, nil, nil,
			models.CostForecast{}, models.UnitEconomics{}, models.Sustainability{})
		assert.Equal(t, SentimentNeutral, view.Metrics[1].Sentiment)
	})

	t.Run("Unit economics and sustainability carried through", func(t *testing.T) {
		view := NormalizeFinOps(models.CostOverview{}, nil, nil, nil, models.CostForecast{},
			models.UnitEconomics{CostPerCustomer: 3.2, Currency: "USD"},
			models.Sustainability{CarbonEmissionsKg: 12000, RenewablePct: 80})
		assert.Equal(t, 3.2, view.UnitEconomics.CostPerCustomer)
		assert.Equal(t, "USD", view.UnitEconomics.Currency)
		assert.Equal(t, 12000.0, view.Sustainability.CarbonEmissionsKg)
		assert.Equal(t, 80.0, view.Sustainability.RenewablePct)
	})
}

func TestNormalizeVulnerabilities(t *testing.T) {
	view := NormalizeVulnerabilities(models.VulnerabilityOverview{
		Critical: 4, High: 10, PatchablePct: 130,
	}, nil, nil, nil)
	assert.Equal(t, 14, view.Total)
	assert.Equal(t, 100.0, view.PatchablePct)
	assert.NotNil(t, view.EKS)
	assert.NotNil(t, view.Containers)
}

func TestNormalizeGuardrails(t *testing.T) {
	view := NormalizeGuardrails([]models.SCPPolicy{
		{ID: "p1", Status: "ATTACHED"},
		{ID: "p2", Status: "detached"},
		{ID: "p3", Status: "active"},
	}, nil, models.KICSSummary{TotalIssues: 7}, []models.GuardrailViolation{{ID: "v1"}})
	assert.Equal(t, 2, view.AttachedSCPs)
	assert.Equal(t, 1, view.TotalViolations)
	assert.Equal(t, 7, view.KICS.TotalIssues)
	assert.NotNil(t, view.OPAPolicies)
}

func TestNormalizeRemediation(t *testing.T) {
	t.Run("Success rate covers finished records only", func(t *testing.T) {
		view := NormalizeRemediation(nil, []models.RemediationRecord{
			{Status: "completed"},
			{Status: "COMPLETED"},
			{Status: "failed"},
			{Status: "in_progress"},
		})
		assert.InDelta(t, 66.67, view.SuccessRate, 0.01)
		assert.Equal(t, 1, view.InProgress)
	})

	t.Run("Auto fixable threat count", func(t *testing.T) {
		view := NormalizeRemediation([]models.Threat{
			{ID: "t1", AutoFixable: true},
			{ID: "t2"},
			{ID: "t3", AutoFixable: true},
		}, nil)
		assert.Equal(t, 2, view.AutoFixable)
	})

	t.Run("Empty history yields zero rate", func(t *testing.T) {
		view := NormalizeRemediation(nil, nil)
		assert.Equal(t, 0.0, view.SuccessRate)
	})
}

func TestNormalizeAccounts(t *testing.T) {
	view := NormalizeAccounts([]models.AWSAccount{
		{ID: "1", Status: "ACTIVE", Environment: "production", MonthlyCost: 10000},
		{ID: "2", Status: "active", Environment: "production", MonthlyCost: 5000},
		{ID: "3", Status: "suspended", Environment: "development", MonthlyCost: 2000},
		{ID: "4", Status: "active", MonthlyCost: -10},
	}, nil)
	assert.Equal(t, 4, view.TotalAccounts)
	assert.Equal(t, 3, view.ActiveCount)
	assert.Equal(t, 2, view.ByEnvironment["production"])
	assert.Equal(t, 1, view.ByEnvironment["unknown"])
	assert.Equal(t, 17000.0, view.TotalMonthlyCost)
	assert.NotNil(t, view.Templates)
}

func TestNormalizeAI(t *testing.T) {
	view := NormalizeAI(models.ExecutiveDashboard{RiskScore: 112}, nil, []models.ProactiveAlert{
		{Priority: "critical"},
		{Priority: "HIGH"},
		{Priority: "medium"},
	})
	assert.Equal(t, 100.0, view.Executive.RiskScore)
	assert.Equal(t, 2, view.HighPriority)
	assert.NotNil(t, view.Executive.KeyInsights)
	assert.NotNil(t, view.Predictions)
}

func TestNormalizeIntegrations(t *testing.T) {
	view := NormalizeIntegrations([]models.IntegrationStatus{
		{Name: "Jira", Connected: true},
		{Name: "Slack", Connected: false},
	}, models.GitHubSecuritySummary{OpenAlerts: 4})
	assert.Equal(t, 1, view.Connected)
	assert.Equal(t, 4, view.GitHub.OpenAlerts)
}

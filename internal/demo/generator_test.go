package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := New(42, WithClock(fixedClock()))
	b := New(42, WithClock(fixedClock()))

	assert.Equal(t, a.Dashboard(30), b.Dashboard(30))
	assert.Equal(t, a.SecurityHub(), b.SecurityHub())
	assert.Equal(t, a.CostOverview(30), b.CostOverview(30))
	assert.Equal(t, a.ComplianceScore(), b.ComplianceScore())
}

func TestGeneratorSeedsDiffer(t *testing.T) {
	a := New(1, WithClock(fixedClock()))
	b := New(2, WithClock(fixedClock()))
	assert.NotEqual(t, a.Dashboard(30), b.Dashboard(30))
}

func TestDateSeries(t *testing.T) {
	g := New(7, WithClock(fixedClock()))
	trend := g.FindingsTrend(14)

	require.Len(t, trend.Dates, 14)
	require.Len(t, trend.Critical, 14)
	require.Len(t, trend.High, 14)
	require.Len(t, trend.Medium, 14)

	assert.Equal(t, "2026-08-28", trend.Dates[13])
	assert.Equal(t, "2026-08-15", trend.Dates[0])

	// Consecutive calendar days
	for i := 1; i < len(trend.Dates); i++ {
		prev, _ := time.Parse("2006-01-02", trend.Dates[i-1])
		cur, _ := time.Parse("2006-01-02", trend.Dates[i])
		assert.Equal(t, 24*time.Hour, cur.Sub(prev))
	}
}

func TestDashboardShape(t *testing.T) {
	g := New(99, WithClock(fixedClock()))
	data := g.Dashboard(30)

	require.Len(t, data.KeyMetrics, 5)
	ids := make([]string, 0, 5)
	for _, m := range data.KeyMetrics {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"total-findings", "critical-issues", "compliance-score", "aws-accounts", "mtd-cost"}, ids)

	total := data.Findings.Critical + data.Findings.High + data.Findings.Medium +
		data.Findings.Low + data.Findings.Informational
	assert.Equal(t, float64(total), data.KeyMetrics[0].Value)
	assert.Equal(t, data.ComplianceScore, data.KeyMetrics[2].Value)
}

func TestSecurityHubRanges(t *testing.T) {
	g := New(7)
	for i := 0; i < 20; i++ {
		hub := g.SecurityHub()
		assert.GreaterOrEqual(t, hub.Critical, 15)
		assert.LessOrEqual(t, hub.Critical, 35)
		assert.GreaterOrEqual(t, hub.High, 60)
		assert.LessOrEqual(t, hub.High, 120)
		assert.GreaterOrEqual(t, hub.ComplianceScore, 70.0)
		assert.LessOrEqual(t, hub.ComplianceScore, 95.0)
		assert.NotEmpty(t, hub.EnabledStandards)
		for _, f := range hub.Findings {
			assert.True(t, f.Severity.Valid())
		}
	}
}

func TestCostOverviewRanges(t *testing.T) {
	g := New(11)
	for i := 0; i < 20; i++ {
		overview := g.CostOverview(30)
		assert.GreaterOrEqual(t, overview.CurrentMonthCost, 150000.0)
		assert.LessOrEqual(t, overview.CurrentMonthCost, 300000.0)
		assert.Greater(t, overview.ForecastedMonthCost, overview.CurrentMonthCost)
		assert.Greater(t, overview.BudgetAmount, overview.CurrentMonthCost)
		assert.Len(t, overview.DailyCosts, 30)
		for _, d := range overview.DailyCosts {
			assert.GreaterOrEqual(t, d.Amount, 4000.0)
			assert.LessOrEqual(t, d.Amount, 6000.0)
		}
	}
}

func TestUnitEconomicsAndSustainabilityRanges(t *testing.T) {
	g := New(17)
	for i := 0; i < 20; i++ {
		unit := g.UnitEconomics()
		assert.GreaterOrEqual(t, unit.CostPerCustomer, 1.5)
		assert.LessOrEqual(t, unit.CostPerCustomer, 6.0)
		assert.Greater(t, unit.CostPerTransaction, 0.0)
		assert.Greater(t, unit.CostPerRequest, 0.0)
		assert.Equal(t, "USD", unit.Currency)

		s := g.Sustainability()
		assert.GreaterOrEqual(t, s.CarbonEmissionsKg, 8000.0)
		assert.LessOrEqual(t, s.CarbonEmissionsKg, 20000.0)
		assert.GreaterOrEqual(t, s.RenewablePct, 60.0)
		assert.LessOrEqual(t, s.RenewablePct, 95.0)
		assert.Len(t, s.TopRegions, 3)
	}
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 3.46, round2(3.456), 1e-9)
	assert.InDelta(t, -7.30, round2(-7.299), 1e-9)
	assert.InDelta(t, -0.01, round2(-0.013), 1e-9)
	assert.InDelta(t, 0.0, round2(0), 1e-9)
}

func TestComplianceScoreBands(t *testing.T) {
	g := New(23)
	score := g.ComplianceScore()

	require.Len(t, score.Frameworks, 8)
	soc2, ok := score.Frameworks["SOC 2"]
	require.True(t, ok)
	assert.GreaterOrEqual(t, soc2, 75.0)
	assert.LessOrEqual(t, soc2, 98.0)
	assert.GreaterOrEqual(t, score.OverallScore, 0.0)
	assert.LessOrEqual(t, score.OverallScore, 100.0)
	assert.Contains(t, []string{"improving", "stable", "declining"}, score.Trend)
}

func TestComplianceHistoryBounds(t *testing.T) {
	g := New(31, WithClock(fixedClock()))
	history := g.ComplianceHistory(90)

	require.Len(t, history, 90)
	assert.Equal(t, "2026-08-28", history[89].Date)
	for _, p := range history {
		assert.GreaterOrEqual(t, p.Score, 0.0)
		assert.LessOrEqual(t, p.Score, 100.0)
	}
}

func TestWeightedSeverityDistribution(t *testing.T) {
	g := New(5)
	counts := make(map[models.Severity]int)
	for i := 0; i < 2000; i++ {
		s := g.weightedSeverity()
		require.True(t, s.Valid())
		counts[s]++
	}

	// Critical carries a 5% weight, medium 30%; with 2000 draws the
	// ordering is stable for any seed
	assert.Less(t, counts[models.SeverityCritical], counts[models.SeverityMedium])
	assert.Less(t, counts[models.SeverityCritical], counts[models.SeverityHigh])
}

func TestAccountsShape(t *testing.T) {
	g := New(13)
	accounts := g.Accounts(12)

	require.Len(t, accounts, 12)
	for _, a := range accounts {
		assert.Len(t, a.ID, 12)
		assert.NotEmpty(t, a.Name)
		assert.GreaterOrEqual(t, a.MonthlyCost, 5000.0)
		assert.LessOrEqual(t, a.MonthlyCost, 50000.0)
	}

	templates := g.AccountTemplates()
	assert.Len(t, templates, 3)
}

func TestGuardrailDeployResultDryRun(t *testing.T) {
	g := New(17)

	dry := g.GuardrailDeployResult(models.GuardrailDeployRequest{PolicyID: "scp-1", DryRun: true})
	assert.Equal(t, "VALIDATED", dry.Status)

	applied := g.GuardrailDeployResult(models.GuardrailDeployRequest{PolicyID: "scp-1"})
	assert.Equal(t, "DEPLOYED", applied.Status)
	assert.NotEmpty(t, applied.DeploymentID)
}

func TestChatResponseMentionsCost(t *testing.T) {
	g := New(19)
	resp := g.ChatResponse(models.ChatRequest{Messages: []models.ChatMessage{
		{Role: "user", Content: "Why did our cost spike this month?"},
	}})
	assert.Equal(t, "assistant", resp.Message.Role)
	assert.NotEmpty(t, resp.Message.Content)
}

package demo

import "github.com/cloudcanvas/compliance-canvas/internal/models"

// Dashboard generates the aggregated dashboard payload
func (g *Generator) Dashboard(trendDays int) models.DashboardData {
	findings := models.FindingCounts{
		Critical:      g.between(15, 35),
		High:          g.between(60, 120),
		Medium:        g.between(250, 400),
		Low:           g.between(400, 700),
		Informational: g.between(150, 350),
	}
	total := findings.Critical + findings.High + findings.Medium + findings.Low + findings.Informational
	score := round2(g.uniform(75, 95))

	return models.DashboardData{
		KeyMetrics: []models.KeyMetric{
			{ID: "total-findings", Title: "Total Findings", Value: float64(total), Change: round2(g.uniform(-15, 5))},
			{ID: "critical-issues", Title: "Critical Issues", Value: float64(findings.Critical), Change: round2(g.uniform(-5, 3))},
			{ID: "compliance-score", Title: "Compliance Score", Value: score, Unit: "%", Change: round2(g.uniform(-2, 6))},
			{ID: "aws-accounts", Title: "AWS Accounts", Value: float64(g.between(40, 60)), Change: 0},
			{ID: "mtd-cost", Title: "MTD Cost", Value: round2(g.uniform(100000, 160000)), Unit: "USD", Change: round2(g.uniform(-5, 12))},
		},
		ComplianceScore: score,
		Findings:        findings,
		Trend:           g.FindingsTrend(trendDays),
	}
}

// FindingsTrend generates a severity trend over exactly days calendar days
func (g *Generator) FindingsTrend(days int) models.TrendSeries {
	trend := models.TrendSeries{Dates: g.dateSeries(days)}
	for range trend.Dates {
		trend.Critical = append(trend.Critical, g.between(5, 15))
		trend.High = append(trend.High, g.between(20, 40))
		trend.Medium = append(trend.Medium, g.between(30, 60))
	}
	return trend
}

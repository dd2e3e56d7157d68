package viewmodel

import "github.com/cloudcanvas/compliance-canvas/internal/models"

// metricCategories maps the backend's key metric identifiers to their
// polarity categories
var metricCategories = map[string]Category{
	"total-findings":   CategoryFindings,
	"critical-issues":  CategoryFindings,
	"compliance-score": CategoryScore,
	"mtd-cost":         CategoryCost,
	"aws-accounts":     CategoryNeutral,
}

// NormalizeDashboard reshapes the raw dashboard payload into the
// executive dashboard view
func NormalizeDashboard(raw models.DashboardData) DashboardView {
	metrics := make([]Metric, 0, len(raw.KeyMetrics))
	for _, m := range raw.KeyMetrics {
		category, ok := metricCategories[m.ID]
		if !ok {
			category = CategoryNeutral
		}
		metrics = append(metrics, NewMetric(m.ID, m.Title, m.Value, m.Unit, m.Change, category))
	}

	trend := raw.Trend
	if trend.Dates == nil {
		trend.Dates = []string{}
	}
	if trend.Critical == nil {
		trend.Critical = []int{}
	}
	if trend.High == nil {
		trend.High = []int{}
	}
	if trend.Medium == nil {
		trend.Medium = []int{}
	}

	return DashboardView{
		ComplianceScore: clampScore(raw.ComplianceScore),
		Metrics:         metrics,
		Findings: SeverityBreakdown{
			Critical:      max0(raw.Findings.Critical),
			High:          max0(raw.Findings.High),
			Medium:        max0(raw.Findings.Medium),
			Low:           max0(raw.Findings.Low),
			Informational: max0(raw.Findings.Informational),
		},
		Trend: trend,
	}
}

// max0 floors negative upstream counts at zero
func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

package viewmodel

import "github.com/cloudcanvas/compliance-canvas/internal/models"

// NormalizeFinOps reshapes the raw cost payloads into the FinOps view
func NormalizeFinOps(
	overview models.CostOverview,
	budgets []models.Budget,
	anomalies []models.CostAnomaly,
	recommendations []models.SavingsRecommendation,
	forecast models.CostForecast,
	unitEconomics models.UnitEconomics,
	sustainability models.Sustainability,
) FinOpsView {
	var potential float64
	for _, r := range recommendations {
		if r.MonthlySavings > 0 {
			potential += r.MonthlySavings
		}
	}

	metrics := []Metric{
		NewMetric("current-month", "Month-to-Date Cost", nonNeg(overview.CurrentMonthCost), "USD",
			overview.MonthOverMonthPct, CategoryCost),
		NewMetric("forecasted-month", "Forecasted Month Cost", nonNeg(overview.ForecastedMonthCost), "USD",
			forecastChange(overview), CategoryCost),
		NewMetric("budget-used", "Budget Used", clampScore(overview.BudgetUsedPercent), "%",
			0, CategoryNeutral),
		NewMetric("potential-savings", "Potential Monthly Savings", potential, "USD",
			0, CategorySavings),
	}

	return FinOpsView{
		Metrics:          metrics,
		TopServices:      TopServiceCosts(overview.TopServices, 6),
		TopAccounts:      TopAccountCosts(overview.TopAccounts, 5),
		DailyCosts:       nonNil(overview.DailyCosts),
		Budgets:          nonNil(budgets),
		Anomalies:        nonNil(anomalies),
		Recommendations:  nonNil(recommendations),
		PotentialSavings: potential,
		Forecast:         forecast,
		UnitEconomics:    unitEconomics,
		Sustainability:   sustainability,
	}
}

// forecastChange computes the forecast's deviation from current spend as
// a percentage, 0 when current spend is unknown
func forecastChange(overview models.CostOverview) float64 {
	if overview.CurrentMonthCost <= 0 {
		return 0
	}
	return (overview.ForecastedMonthCost - overview.CurrentMonthCost) / overview.CurrentMonthCost * 100
}

// nonNeg floors a currency amount at zero
func nonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

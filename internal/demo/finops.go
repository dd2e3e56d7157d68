package demo

import (
	"fmt"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// CostOverview generates the FinOps overview payload. Month-to-date
// spend lands in the 150k-300k band the live backend reports, with the
// usual EC2-heavy service split.
func (g *Generator) CostOverview(days int) models.CostOverview {
	mtd := g.uniform(150000, 300000)
	previous := mtd / (1 + g.uniform(-0.1, 0.15))
	budget := round2(mtd * g.uniform(1.2, 1.8))

	overview := models.CostOverview{
		CurrentMonthCost:    round2(mtd),
		PreviousMonthCost:   round2(previous),
		ForecastedMonthCost: round2(mtd * g.uniform(1.3, 1.6)),
		MonthOverMonthPct:   round2((mtd - previous) / previous * 100),
		YearToDateCost:      round2(mtd * g.uniform(8, 11)),
		BudgetAmount:        budget,
		BudgetUsedPercent:   round2(mtd / budget * 100),
		TopServices:         g.ServiceCosts(),
		TopAccounts:         g.AccountCosts(),
		DailyCosts:          g.DailyCosts(days),
	}
	return overview
}

// ServiceCosts generates the per-service spend split
func (g *Generator) ServiceCosts() []models.ServiceCost {
	mtd := g.uniform(150000, 300000)
	split := []struct {
		service string
		share   float64
		loChg   float64
		hiChg   float64
	}{
		{"Amazon EC2", 0.35, -10, 15},
		{"Amazon RDS", 0.20, -5, 10},
		{"Amazon S3", 0.12, -8, 12},
		{"Amazon EKS", 0.10, -5, 20},
		{"AWS Lambda", 0.08, -20, 30},
		{"Amazon CloudWatch", 0.05, -5, 10},
	}

	costs := make([]models.ServiceCost, 0, len(split))
	for _, s := range split {
		costs = append(costs, models.ServiceCost{
			Service:    s.service,
			Cost:       round2(mtd * s.share),
			Percentage: round2(s.share * 100),
			Change:     round2(g.uniform(s.loChg, s.hiChg)),
		})
	}
	return costs
}

// AccountCosts generates the per-account spend split
func (g *Generator) AccountCosts() []models.AccountCost {
	environments := []string{"production", "staging", "development", "sandbox"}
	costs := make([]models.AccountCost, 0, len(accountNames))
	remaining := 100.0
	for i, name := range accountNames {
		share := remaining / float64(len(accountNames)-i) * g.uniform(0.8, 1.2)
		if share > remaining {
			share = remaining
		}
		remaining -= share
		costs = append(costs, models.AccountCost{
			AccountID:   g.accountID(),
			AccountName: name,
			Cost:        round2(g.uniform(5000, 50000)),
			Percentage:  round2(share),
			Change:      round2(g.uniform(-15, 25)),
			Environment: g.choice(environments),
		})
	}
	return costs
}

// DailyCosts generates exactly days consecutive daily cost points ending today
func (g *Generator) DailyCosts(days int) []models.CostPoint {
	points := make([]models.CostPoint, 0, days)
	for _, date := range g.dateSeries(days) {
		points = append(points, models.CostPoint{
			Date:     date,
			Amount:   round2(g.uniform(4000, 6000)),
			Currency: "USD",
		})
	}
	return points
}

// Budgets generates cost budgets
func (g *Generator) Budgets() []models.Budget {
	overall := g.uniform(180000, 250000)
	spent := overall * g.uniform(0.5, 0.85)
	team := g.uniform(30000, 60000)
	teamSpent := team * g.uniform(0.4, 0.95)

	return []models.Budget{
		{
			ID:              "budget-overall",
			Name:            "Overall AWS Budget",
			Amount:          round2(overall),
			ActualSpend:     round2(spent),
			ForecastedSpend: round2(spent * 1.4),
			PercentUsed:     round2(spent / overall * 100),
			Period:          "MONTHLY",
			AlertThresholds: []float64{50, 80, 100},
			AlertsTriggered: g.intn(3),
		},
		{
			ID:              "budget-platform",
			Name:            "Platform Engineering",
			Amount:          round2(team),
			ActualSpend:     round2(teamSpent),
			ForecastedSpend: round2(teamSpent * 1.3),
			PercentUsed:     round2(teamSpent / team * 100),
			Period:          "MONTHLY",
			AlertThresholds: []float64{80, 100},
			AlertsTriggered: g.intn(2),
		},
	}
}

// CostAnomalies generates unexpected spend deviations
func (g *Generator) CostAnomalies() []models.CostAnomaly {
	count := g.between(1, 3)
	services := []string{"Amazon RDS", "Amazon EC2", "AWS Lambda", "Amazon OpenSearch"}
	anomalies := make([]models.CostAnomaly, 0, count)
	for i := 0; i < count; i++ {
		expected := g.uniform(1000, 8000)
		impact := g.uniform(500, 4000)
		anomalies = append(anomalies, models.CostAnomaly{
			ID:        fmt.Sprintf("anomaly-%03d", i+1),
			AccountID: g.accountID(),
			Service:   g.choice(services),
			Region:    g.choice(regions),
			Expected:  round2(expected),
			Actual:    round2(expected + impact),
			Impact:    round2(impact),
			ImpactPct: round2(impact / expected * 100),
			StartDate: g.isoDaysAgo(10),
			Status:    g.choice([]string{"ONGOING", "RESOLVED"}),
		})
	}
	return anomalies
}

// SavingsRecommendations generates cost optimization opportunities
func (g *Generator) SavingsRecommendations() []models.SavingsRecommendation {
	plans := []struct {
		recType string
		title   string
		lo      float64
		hi      float64
	}{
		{"SAVINGS_PLAN", "Compute Savings Plan", 8000, 15000},
		{"RIGHTSIZING", "EC2 Rightsizing", 2500, 6000},
		{"IDLE_RESOURCE", "Unattached EBS Volumes", 400, 1500},
		{"RESERVED_INSTANCE", "RDS Reserved Instances", 3000, 7000},
	}

	recs := make([]models.SavingsRecommendation, 0, len(plans))
	for i, p := range plans {
		monthly := round2(g.uniform(p.lo, p.hi))
		current := round2(monthly * g.uniform(2, 4))
		recs = append(recs, models.SavingsRecommendation{
			ID:              fmt.Sprintf("rec-%03d", i+1),
			Type:            p.recType,
			Title:           p.title,
			Description:     "Identified from 30 days of utilization data.",
			MonthlySavings:  monthly,
			AnnualSavings:   round2(monthly * 12),
			CurrentCost:     current,
			RecommendedCost: round2(current - monthly),
			Effort:          g.choice([]string{"LOW", "MEDIUM", "HIGH"}),
			Impact:          g.choice([]string{"LOW", "MEDIUM", "HIGH"}),
		})
	}
	return recs
}

// CostForecast generates the next-month spend forecast
func (g *Generator) CostForecast() models.CostForecast {
	return models.CostForecast{
		NextMonth:  round2(g.uniform(160000, 220000)),
		Confidence: round2(g.uniform(70, 95)),
		Trend:      g.choice([]string{"increasing", "stable", "decreasing"}),
	}
}

// UnitEconomics generates cost-per-unit business metrics
func (g *Generator) UnitEconomics() models.UnitEconomics {
	return models.UnitEconomics{
		CostPerCustomer:    round2(g.uniform(1.5, 6)),
		CostPerTransaction: round4(g.uniform(0.002, 0.02)),
		CostPerRequest:     round4(g.uniform(0.0001, 0.001)),
		Currency:           "USD",
	}
}

// Sustainability generates carbon footprint estimates
func (g *Generator) Sustainability() models.Sustainability {
	s := models.Sustainability{
		CarbonEmissionsKg: round2(g.uniform(8000, 20000)),
		ChangePct:         round2(g.uniform(-10, 5)),
		RenewablePct:      round2(g.uniform(60, 95)),
	}
	for _, region := range regions[:3] {
		s.TopRegions = append(s.TopRegions, struct {
			Region      string  `json:"region"`
			EmissionsKg float64 `json:"emissions_kg"`
		}{Region: region, EmissionsKg: round2(g.uniform(1000, 8000))})
	}
	return s
}

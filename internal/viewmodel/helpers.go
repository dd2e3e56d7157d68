package viewmodel

import (
	"sort"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// increaseFavorable maps each metric category to its polarity: whether a
// positive change is good news. Cost and finding counts going up is bad;
// compliance and score going up is good. Call sites must consult this
// table instead of hardcoding colors.
var increaseFavorable = map[Category]bool{
	CategoryCost:       false,
	CategoryFindings:   false,
	CategoryCompliance: true,
	CategoryScore:      true,
	CategorySavings:    true,
}

// Percent computes passed/total as a percentage, returning 0 when total
// is zero rather than NaN
func Percent(passed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(passed) / float64(total) * 100
}

// Classify maps a change value to a trend direction
func Classify(change float64) Direction {
	switch {
	case change > 0:
		return DirectionUp
	case change < 0:
		return DirectionDown
	default:
		return DirectionStable
	}
}

// SentimentFor resolves the good/bad polarity of a change for a metric
// category using the polarity table
func SentimentFor(category Category, change float64) Sentiment {
	if change == 0 {
		return SentimentNeutral
	}
	favorable, ok := increaseFavorable[category]
	if !ok {
		return SentimentNeutral
	}
	if (change > 0) == favorable {
		return SentimentFavorable
	}
	return SentimentUnfavorable
}

// ColorFor maps a change's sentiment to a display color
func ColorFor(category Category, change float64) string {
	switch SentimentFor(category, change) {
	case SentimentFavorable:
		return "green"
	case SentimentUnfavorable:
		return "red"
	default:
		return "gray"
	}
}

// NewMetric builds a display-ready metric with its trend classification
func NewMetric(id, title string, value float64, unit string, change float64, category Category) Metric {
	return Metric{
		ID:        id,
		Title:     title,
		Value:     value,
		Unit:      unit,
		Change:    change,
		Direction: Classify(change),
		Sentiment: SentimentFor(category, change),
		Color:     ColorFor(category, change),
	}
}

// CountSeverities buckets a flat severity list into the fixed categories.
// Unknown severities are ignored rather than invented.
func CountSeverities(severities []models.Severity) SeverityBreakdown {
	var b SeverityBreakdown
	for _, s := range severities {
		switch s {
		case models.SeverityCritical:
			b.Critical++
		case models.SeverityHigh:
			b.High++
		case models.SeverityMedium:
			b.Medium++
		case models.SeverityLow:
			b.Low++
		case models.SeverityInformational:
			b.Informational++
		}
	}
	return b
}

// BucketFindings buckets security findings by their severity field
func BucketFindings(findings []models.SecurityFinding) SeverityBreakdown {
	severities := make([]models.Severity, 0, len(findings))
	for _, f := range findings {
		severities = append(severities, f.Severity)
	}
	return CountSeverities(severities)
}

// TopServiceCosts returns the n most expensive services, descending
func TopServiceCosts(costs []models.ServiceCost, n int) []models.ServiceCost {
	out := make([]models.ServiceCost, len(costs))
	copy(out, costs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cost > out[j].Cost
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopAccountCosts returns the n most expensive accounts, descending
func TopAccountCosts(costs []models.AccountCost, n int) []models.AccountCost {
	out := make([]models.AccountCost, len(costs))
	copy(out, costs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cost > out[j].Cost
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// clampScore bounds a percentage score to [0,100]
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// nonNil returns the slice or an empty one, never nil, so empty states
// render as empty lists instead of null
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

func TestPercent(t *testing.T) {
	t.Run("Zero total yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Percent(0, 0))
		assert.Equal(t, 0.0, Percent(5, 0))
		assert.Equal(t, 0.0, Percent(5, -1))
	})

	t.Run("Normal ratios", func(t *testing.T) {
		assert.Equal(t, 90.0, Percent(45, 50))
		assert.Equal(t, 100.0, Percent(10, 10))
		assert.Equal(t, 0.0, Percent(0, 10))
	})
}

func TestClassify(t *testing.T) {
	assert.Equal(t, DirectionUp, Classify(0.1))
	assert.Equal(t, DirectionDown, Classify(-3))
	assert.Equal(t, DirectionStable, Classify(0))
}

func TestSentimentFor(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		change   float64
		want     Sentiment
	}{
		{"Cost increase is bad", CategoryCost, 12.5, SentimentUnfavorable},
		{"Cost decrease is good", CategoryCost, -8, SentimentFavorable},
		{"Findings increase is bad", CategoryFindings, 3, SentimentUnfavorable},
		{"Findings decrease is good", CategoryFindings, -3, SentimentFavorable},
		{"Compliance increase is good", CategoryCompliance, 2, SentimentFavorable},
		{"Compliance decrease is bad", CategoryCompliance, -2, SentimentUnfavorable},
		{"Score increase is good", CategoryScore, 1, SentimentFavorable},
		{"Savings increase is good", CategorySavings, 100, SentimentFavorable},
		{"No change is neutral", CategoryCost, 0, SentimentNeutral},
		{"Unknown category is neutral", Category("weather"), 5, SentimentNeutral},
		{"Neutral category is neutral", CategoryNeutral, 5, SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SentimentFor(tt.category, tt.change))
		})
	}
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "red", ColorFor(CategoryCost, 10))
	assert.Equal(t, "green", ColorFor(CategoryCost, -10))
	assert.Equal(t, "green", ColorFor(CategoryScore, 10))
	assert.Equal(t, "red", ColorFor(CategoryScore, -10))
	assert.Equal(t, "gray", ColorFor(CategoryScore, 0))
}

func TestCountSeverities(t *testing.T) {
	t.Run("Buckets counts", func(t *testing.T) {
		got := CountSeverities([]models.Severity{
			models.SeverityCritical,
			models.SeverityHigh,
			models.SeverityHigh,
		})
		assert.Equal(t, SeverityBreakdown{Critical: 1, High: 2}, got)
		assert.Equal(t, 3, got.Total())
	})

	t.Run("Unknown severities are ignored", func(t *testing.T) {
		got := CountSeverities([]models.Severity{"BOGUS", models.SeverityLow})
		assert.Equal(t, SeverityBreakdown{Low: 1}, got)
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Equal(t, SeverityBreakdown{}, CountSeverities(nil))
	})
}

func TestBucketFindings(t *testing.T) {
	findings := []models.SecurityFinding{
		{Severity: models.SeverityCritical},
		{Severity: models.SeverityMedium},
		{Severity: models.SeverityMedium},
	}
	got := BucketFindings(findings)
	assert.Equal(t, SeverityBreakdown{Critical: 1, Medium: 2}, got)
}

func TestTopServiceCosts(t *testing.T) {
	costs := []models.ServiceCost{
		{Service: "S3", Cost: 100},
		{Service: "EC2", Cost: 900},
		{Service: "RDS", Cost: 400},
	}

	t.Run("Sorted descending and truncated", func(t *testing.T) {
		top := TopServiceCosts(costs, 2)
		assert.Len(t, top, 2)
		assert.Equal(t, "EC2", top[0].Service)
		assert.Equal(t, "RDS", top[1].Service)
	})

	t.Run("Input is not mutated", func(t *testing.T) {
		TopServiceCosts(costs, 1)
		assert.Equal(t, "S3", costs[0].Service)
	})

	t.Run("Zero n keeps everything", func(t *testing.T) {
		assert.Len(t, TopServiceCosts(costs, 0), 3)
	})
}

func TestNewMetric(t *testing.T) {
	m := NewMetric("mtd-cost", "MTD Cost", 125000, "USD", 8.2, CategoryCost)
	assert.Equal(t, DirectionUp, m.Direction)
	assert.Equal(t, SentimentUnfavorable, m.Sentiment)
	assert.Equal(t, "red", m.Color)
	assert.Equal(t, 125000.0, m.Value)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(-5))
	assert.Equal(t, 100.0, clampScore(104.2))
	assert.Equal(t, 87.5, clampScore(87.5))
}

package viewmodel

import (
	"sort"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// NormalizeCompliance reshapes the raw compliance payloads into the
// compliance view. The overall score falls back to the framework average
// when the score endpoint returned nothing usable.
func NormalizeCompliance(
	score models.ComplianceScore,
	frameworks []models.ComplianceFramework,
	history []models.ComplianceHistoryPoint,
) ComplianceView {
	rows := make([]FrameworkScore, 0, len(frameworks))
	for _, f := range frameworks {
		fScore := clampScore(f.Score)
		rows = append(rows, FrameworkScore{
			ID:       f.ID,
			Name:     f.Name,
			Score:    fScore,
			Passed:   max0(f.PassedControls),
			Failed:   max0(f.FailedControls),
			PassRate: Percent(f.PassedControls, f.PassedControls+f.FailedControls),
			Sentiment: frameworkSentiment(fScore),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	overall := clampScore(score.OverallScore)
	if overall == 0 && len(rows) > 0 {
		var sum float64
		for _, r := range rows {
			sum += r.Score
		}
		overall = sum / float64(len(rows))
	}

	trend := score.Trend
	if trend == "" {
		trend = "stable"
	}

	return ComplianceView{
		OverallScore: overall,
		Trend:        trend,
		Frameworks:   rows,
		History:      nonNil(history),
	}
}

// frameworkSentiment grades a framework score for display
func frameworkSentiment(score float64) Sentiment {
	switch {
	case score >= 90:
		return SentimentFavorable
	case score < 70:
		return SentimentUnfavorable
	default:
		return SentimentNeutral
	}
}

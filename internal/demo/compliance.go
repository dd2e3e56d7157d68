package demo

import (
	"time"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// frameworkBands mirrors the score bands the live backend reports per
// framework
var frameworkBands = []struct {
	id   string
	name string
	lo   float64
	hi   float64
}{
	{"soc2", "SOC 2", 75, 98},
	{"pci-dss", "PCI-DSS", 70, 95},
	{"hipaa", "HIPAA", 72, 96},
	{"gdpr", "GDPR", 68, 94},
	{"iso-27001", "ISO 27001", 74, 97},
	{"nist-800-53", "NIST 800-53", 70, 95},
	{"cis-aws", "CIS AWS Foundations", 65, 92},
	{"well-architected", "AWS Well-Architected", 72, 96},
}

// ComplianceScore generates the overall compliance score payload
func (g *Generator) ComplianceScore() models.ComplianceScore {
	frameworks := make(map[string]float64, len(frameworkBands))
	var sum float64
	for _, band := range frameworkBands {
		score := round2(g.uniform(band.lo, band.hi))
		frameworks[band.name] = score
		sum += score
	}

	return models.ComplianceScore{
		OverallScore: round2(sum / float64(len(frameworkBands))),
		Trend:        g.choice([]string{"improving", "stable", "declining"}),
		Frameworks:   frameworks,
		AssessedAt:   g.now().Format(time.RFC3339),
	}
}

// ComplianceFrameworks generates per-framework assessments
func (g *Generator) ComplianceFrameworks() []models.ComplianceFramework {
	frameworks := make([]models.ComplianceFramework, 0, len(frameworkBands))
	for _, band := range frameworkBands {
		controls := g.between(40, 220)
		score := g.uniform(band.lo, band.hi)
		passed := int(float64(controls) * score / 100)
		frameworks = append(frameworks, models.ComplianceFramework{
			ID:             band.id,
			Name:           band.name,
			Description:    "Continuous assessment against the framework control set.",
			Version:        g.choice([]string{"1.2", "2.0", "3.2.1", "2023-10"}),
			ControlCount:   controls,
			PassedControls: passed,
			FailedControls: controls - passed,
			Score:          round2(score),
			LastAssessment: g.isoDaysAgo(7),
		})
	}
	return frameworks
}

// ComplianceHistory generates exactly days daily score points ending today
func (g *Generator) ComplianceHistory(days int) []models.ComplianceHistoryPoint {
	points := make([]models.ComplianceHistoryPoint, 0, days)
	score := g.uniform(78, 88)
	for _, date := range g.dateSeries(days) {
		// random walk bounded to [0,100]
		score += g.uniform(-1.5, 1.8)
		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}
		points = append(points, models.ComplianceHistoryPoint{
			Date:  date,
			Score: round2(score),
		})
	}
	return points
}

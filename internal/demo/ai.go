package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// AIPredictions generates AI forecasts, optionally filtered by type
func (g *Generator) AIPredictions(predictionType string) []models.AIPrediction {
	seeds := []struct {
		ptype      string
		title      string
		prediction string
	}{
		{"cost", "Monthly Cost Prediction", "Spend is projected to rise roughly 15% next month, driven by EC2 and RDS growth."},
		{"security", "Security Risk Forecast", "Low likelihood of new critical findings; high-severity backlog expected to shrink."},
		{"compliance", "Compliance Drift Forecast", "CIS AWS score likely to dip if the current config-rule failure rate persists."},
		{"capacity", "Capacity Forecast", "EKS prod cluster approaches 80% memory utilization within three weeks."},
	}

	predictions := make([]models.AIPrediction, 0, len(seeds))
	for i, s := range seeds {
		if predictionType != "" && !strings.EqualFold(predictionType, s.ptype) {
			continue
		}
		predictions = append(predictions, models.AIPrediction{
			ID:          fmt.Sprintf("pred-%03d", i+1),
			Type:        strings.ToUpper(s.ptype),
			Title:       s.title,
			Description: "Model output from 90 days of telemetry.",
			Prediction:  s.prediction,
			Confidence:  round2(g.uniform(0.6, 0.95)),
			Timeframe:   g.choice([]string{"7 days", "30 days", "90 days"}),
			Impact:      g.choice([]string{"LOW", "MEDIUM", "HIGH"}),
			Recommendations: []string{
				"Review the affected accounts before the forecast window.",
				"Enable auto-remediation for the dominant finding class.",
			},
			GeneratedAt: g.now().Format(time.RFC3339),
		})
	}
	return predictions
}

// ProactiveAlerts generates AI-surfaced early warnings
func (g *Generator) ProactiveAlerts() []models.ProactiveAlert {
	seeds := []struct {
		priority string
		title    string
		rec      string
	}{
		{"HIGH", "Budget threshold approaching", "Review top spending services before the 80% budget alert fires."},
		{"MEDIUM", "New critical CVE affecting your images", "Rebuild affected container images with the patched base layer."},
		{"MEDIUM", "Compliance score trending down", "Triage the failing config rules in production accounts."},
	}

	alerts := make([]models.ProactiveAlert, 0, len(seeds))
	for i, s := range seeds {
		alerts = append(alerts, models.ProactiveAlert{
			ID:             fmt.Sprintf("alert-%03d", i+1),
			Type:           g.choice([]string{"cost", "security", "compliance"}),
			Priority:       s.priority,
			Title:          s.title,
			Description:    "Raised by continuous trend analysis.",
			Recommendation: s.rec,
			AffectedResources: []string{
				fmt.Sprintf("resource-%d", g.between(1000, 9999)),
			},
			CreatedAt: g.isoDaysAgo(3),
		})
	}
	return alerts
}

// ExecutiveDashboard generates the AI executive summary
func (g *Generator) ExecutiveDashboard() models.ExecutiveDashboard {
	return models.ExecutiveDashboard{
		Summary:   "Overall posture is stable. Critical findings are down month over month while spend grows within forecast.",
		RiskScore: round2(g.uniform(20, 60)),
		KeyInsights: []string{
			"Critical findings decreased in production accounts.",
			"RDS spend anomaly resolved after rightsizing.",
			"PCI-DSS score needs attention before the next audit window.",
		},
		TopPriorities: []string{
			"Close the remaining public S3 findings.",
			"Apply the pending compute savings plan.",
		},
		GeneratedAt: g.now().Format(time.RFC3339),
	}
}

// ChatResponse generates a canned AI chat reply for demo mode
func (g *Generator) ChatResponse(req models.ChatRequest) models.ChatResponse {
	last := ""
	if len(req.Messages) > 0 {
		last = req.Messages[len(req.Messages)-1].Content
	}
	reply := "In demo mode I answer from sample data. Your environment shows a healthy posture with a small critical backlog."
	if strings.Contains(strings.ToLower(last), "cost") {
		reply = "Month-to-date spend is tracking within budget; EC2 and RDS dominate. Consider the open savings plan recommendation."
	}
	return models.ChatResponse{
		Message:   models.ChatMessage{Role: "assistant", Content: reply},
		Timestamp: g.now().Format(time.RFC3339),
	}
}

// IntegrationResult generates the outcome of a demo integration action
func (g *Generator) IntegrationResult(kind string) models.IntegrationResult {
	return models.IntegrationResult{
		ID:     fmt.Sprintf("%s-%d", kind, g.between(10000, 99999)),
		Status: "CREATED",
		URL:    fmt.Sprintf("https://example.com/%s/%d", kind, g.between(10000, 99999)),
	}
}

// IntegrationStatuses generates third-party integration health
func (g *Generator) IntegrationStatuses() []models.IntegrationStatus {
	names := []string{"Jira", "Slack", "ServiceNow", "PagerDuty", "GitHub"}
	statuses := make([]models.IntegrationStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, models.IntegrationStatus{
			Name:      name,
			Connected: g.intn(100) < 85,
			LastSync:  g.isoDaysAgo(2),
		})
	}
	return statuses
}

// GitHubSecurity generates GitHub security alert totals
func (g *Generator) GitHubSecurity() models.GitHubSecuritySummary {
	return models.GitHubSecuritySummary{
		OpenAlerts:         g.between(5, 40),
		DependabotAlerts:   g.between(3, 25),
		CodeScanningAlerts: g.between(0, 10),
		SecretAlerts:       g.between(0, 5),
	}
}

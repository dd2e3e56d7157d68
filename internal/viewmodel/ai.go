package viewmodel

import (
	"strings"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// NormalizeAI reshapes the AI payloads into the predictions view
func NormalizeAI(
	executive models.ExecutiveDashboard,
	predictions []models.AIPrediction,
	alerts []models.ProactiveAlert,
) AIView {
	high := 0
	for _, a := range alerts {
		switch strings.ToLower(a.Priority) {
		case "critical", "high":
			high++
		}
	}

	executive.RiskScore = clampScore(executive.RiskScore)
	if executive.KeyInsights == nil {
		executive.KeyInsights = []string{}
	}
	if executive.TopPriorities == nil {
		executive.TopPriorities = []string{}
	}

	return AIView{
		Executive:    executive,
		Predictions:  nonNil(predictions),
		Alerts:       nonNil(alerts),
		HighPriority: high,
	}
}

// NormalizeIntegrations reshapes the integration payloads into the
// integrations view
func NormalizeIntegrations(statuses []models.IntegrationStatus, github models.GitHubSecuritySummary) IntegrationsView {
	connected := 0
	for _, s := range statuses {
		if s.Connected {
			connected++
		}
	}

	return IntegrationsView{
		Integrations: nonNil(statuses),
		Connected:    connected,
		GitHub:       github,
	}
}

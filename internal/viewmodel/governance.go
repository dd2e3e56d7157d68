package viewmodel

import (
	"strings"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// NormalizeGuardrails reshapes the raw guardrail payloads into the
// guardrails view
func NormalizeGuardrails(
	scps []models.SCPPolicy,
	opas []models.OPAPolicy,
	kics models.KICSSummary,
	violations []models.GuardrailViolation,
) GuardrailsView {
	attached := 0
	for _, p := range scps {
		if strings.EqualFold(p.Status, "attached") || strings.EqualFold(p.Status, "active") {
			attached++
		}
	}

	return GuardrailsView{
		SCPPolicies:     nonNil(scps),
		OPAPolicies:     nonNil(opas),
		KICS:            kics,
		Violations:      nonNil(violations),
		AttachedSCPs:    attached,
		TotalViolations: len(violations),
	}
}

// NormalizeRemediation reshapes the raw remediation payloads into the
// remediation view. Success rate covers only finished records.
func NormalizeRemediation(threats []models.Threat, history []models.RemediationRecord) RemediationView {
	autoFixable := 0
	for _, t := range threats {
		if t.AutoFixable {
			autoFixable++
		}
	}

	var succeeded, finished, inProgress int
	for _, r := range history {
		switch strings.ToLower(r.Status) {
		case "completed", "success", "succeeded":
			succeeded++
			finished++
		case "failed", "rolled_back":
			finished++
		case "in_progress", "pending", "running":
			inProgress++
		}
	}

	return RemediationView{
		Threats:     nonNil(threats),
		AutoFixable: autoFixable,
		History:     nonNil(history),
		SuccessRate: Percent(succeeded, finished),
		InProgress:  inProgress,
	}
}

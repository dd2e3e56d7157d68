package viewmodel

import (
	"sort"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// severityRank orders severities for top-findings selection
var severityRank = map[models.Severity]int{
	models.SeverityCritical:      0,
	models.SeverityHigh:          1,
	models.SeverityMedium:        2,
	models.SeverityLow:           3,
	models.SeverityInformational: 4,
}

// NormalizeSecurity reshapes the raw security payloads into the security
// posture view. Any of the inputs may be zero-valued.
func NormalizeSecurity(
	hub models.SecurityHubSummary,
	guardduty []models.GuardDutyFinding,
	inspector []models.InspectorFinding,
	configCompliance models.ConfigCompliance,
) SecurityView {
	breakdown := SeverityBreakdown{
		Critical:      max0(hub.Critical),
		High:          max0(hub.High),
		Medium:        max0(hub.Medium),
		Low:           max0(hub.Low),
		Informational: max0(hub.Informational),
	}

	total := hub.TotalFindings
	if total <= 0 {
		total = breakdown.Total()
	}

	configTotal := configCompliance.Compliant + configCompliance.NonCompliant

	return SecurityView{
		Breakdown:        breakdown,
		TotalFindings:    total,
		PassedChecks:     max0(hub.PassedChecks),
		FailedChecks:     max0(hub.FailedChecks),
		PassRate:         Percent(hub.PassedChecks, hub.PassedChecks+hub.FailedChecks),
		ComplianceScore:  clampScore(hub.ComplianceScore),
		EnabledStandards: nonNil(hub.EnabledStandards),
		TopFindings:      topFindings(hub.Findings, 10),
		GuardDuty:        nonNil(guardduty),
		Inspector:        nonNil(inspector),
		ConfigCompliance: configCompliance,
		ConfigPassRate:   Percent(configCompliance.Compliant, configTotal),
	}
}

// topFindings returns the n most severe active findings
func topFindings(findings []models.SecurityFinding, n int) []models.SecurityFinding {
	active := make([]models.SecurityFinding, 0, len(findings))
	for _, f := range findings {
		if f.Status == models.FindingResolved {
			continue
		}
		active = append(active, f)
	}
	sort.SliceStable(active, func(i, j int) bool {
		return severityRank[active[i].Severity] < severityRank[active[j].Severity]
	})
	if n > 0 && len(active) > n {
		active = active[:n]
	}
	return active
}

// NormalizeVulnerabilities reshapes the raw vulnerability payloads into
// the vulnerabilities view
func NormalizeVulnerabilities(
	overview models.VulnerabilityOverview,
	inspector []models.InspectorFinding,
	eks []models.EKSVulnerability,
	containers []models.ContainerVulnerability,
) VulnerabilityView {
	breakdown := SeverityBreakdown{
		Critical: max0(overview.Critical),
		High:     max0(overview.High),
		Medium:   max0(overview.Medium),
		Low:      max0(overview.Low),
	}

	total := overview.Total
	if total <= 0 {
		total = breakdown.Total()
	}

	return VulnerabilityView{
		Breakdown:    breakdown,
		Total:        total,
		PatchablePct: clampScore(overview.PatchablePct),
		MeanTimeDays: overview.MeanTimeDays,
		Inspector:    nonNil(inspector),
		EKS:          nonNil(eks),
		Containers:   nonNil(containers),
	}
}

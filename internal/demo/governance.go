package demo

import (
	"fmt"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// SCPPolicies generates service control policies
func (g *Generator) SCPPolicies() []models.SCPPolicy {
	policies := []struct {
		id   string
		name string
		desc string
	}{
		{"scp-001", "Deny Root Account Actions", "Blocks all actions performed by the root user."},
		{"scp-002", "Require Encryption", "Denies creation of unencrypted storage resources."},
		{"scp-003", "Restrict Regions", "Limits resource creation to approved regions."},
		{"scp-004", "Block Public S3", "Denies S3 public access configuration changes."},
	}

	out := make([]models.SCPPolicy, 0, len(policies))
	for _, p := range policies {
		status := "ATTACHED"
		if g.intn(100) < 15 {
			status = "DETACHED"
		}
		out = append(out, models.SCPPolicy{
			ID:          p.id,
			Name:        p.name,
			Description: p.desc,
			Targets:     []string{"ou-production", "ou-staging"},
			Status:      status,
			UpdatedAt:   g.isoDaysAgo(60),
		})
	}
	return out
}

// OPAPolicies generates Open Policy Agent policies
func (g *Generator) OPAPolicies() []models.OPAPolicy {
	policies := []struct {
		id         string
		name       string
		policyType string
	}{
		{"opa-001", "Require Tags", "TERRAFORM"},
		{"opa-002", "Block Privileged Containers", "KUBERNETES"},
		{"opa-003", "Enforce IMDSv2", "AWS"},
		{"opa-004", "Deny Latest Image Tag", "DOCKER"},
	}

	out := make([]models.OPAPolicy, 0, len(policies))
	for _, p := range policies {
		violations := g.intn(16)
		policy := models.OPAPolicy{
			ID:            p.id,
			Name:          p.name,
			Description:   "Evaluated on every plan and admission request.",
			PolicyType:    p.policyType,
			Status:        "ACTIVE",
			Violations:    violations,
			LastEvaluated: g.isoDaysAgo(1),
		}
		for i := 0; i < violations && i < 3; i++ {
			policy.Details = append(policy.Details, models.OPAViolation{
				Resource:  fmt.Sprintf("resource-%d", g.between(1000, 9999)),
				Issue:     "Policy condition not satisfied",
				Severity:  g.weightedSeverity(),
				Timestamp: g.isoDaysAgo(7),
			})
		}
		out = append(out, policy)
	}
	return out
}

// KICSResults generates infrastructure-as-code scan results
func (g *Generator) KICSResults() models.KICSSummary {
	critical := g.between(0, 5)
	high := g.between(3, 12)
	medium := g.between(5, 20)
	low := g.between(1, 8)

	summary := models.KICSSummary{
		TotalIssues: critical + high + medium + low,
		Critical:    critical,
		High:        high,
		Medium:      medium,
		Low:         low,
	}

	repos := []string{"infra-live", "terraform-modules", "k8s-manifests"}
	for i := 0; i < 5; i++ {
		summary.Findings = append(summary.Findings, models.KICSFinding{
			ID:         fmt.Sprintf("kics-%03d", i+1),
			Title:      g.choice([]string{"Hardcoded secret", "Open security group", "Missing encryption", "Public subnet for database"}),
			Severity:   g.weightedSeverity(),
			Category:   g.choice([]string{"Encryption", "Networking", "Secrets", "Access Control"}),
			Repository: g.choice(repos),
			FilePath:   fmt.Sprintf("modules/%s/main.tf", g.choice([]string{"vpc", "rds", "eks", "s3"})),
			LineNumber: g.between(5, 300),
			Resource:   g.choice(resourceTypes),
		})
	}
	return summary
}

// GuardrailViolations generates active guardrail violations
func (g *Generator) GuardrailViolations(count int) []models.GuardrailViolation {
	violations := make([]models.GuardrailViolation, 0, count)
	for i := 0; i < count; i++ {
		violations = append(violations, models.GuardrailViolation{
			ID:         fmt.Sprintf("viol-%03d", i+1),
			PolicyID:   fmt.Sprintf("scp-%03d", g.between(1, 4)),
			PolicyType: g.choice([]string{"SCP", "OPA", "KICS"}),
			AccountID:  g.accountID(),
			Resource:   fmt.Sprintf("resource-%d", g.between(1000, 9999)),
			Severity:   g.weightedSeverity(),
			DetectedAt: g.isoDaysAgo(14),
		})
	}
	return violations
}

// GuardrailDeployResult generates the outcome of a demo deployment
func (g *Generator) GuardrailDeployResult(req models.GuardrailDeployRequest) models.GuardrailDeployResult {
	status := "DEPLOYED"
	message := "Guardrail deployed (demo mode, no policy changed)."
	if req.DryRun {
		status = "VALIDATED"
		message = "Dry run passed, no changes applied."
	}
	return models.GuardrailDeployResult{
		DeploymentID: fmt.Sprintf("deploy-%d", g.now().Unix()),
		Status:       status,
		Message:      message,
	}
}

// Threats generates active threats awaiting remediation
func (g *Generator) Threats(count int) []models.Threat {
	threats := make([]models.Threat, 0, count)
	for i := 0; i < count; i++ {
		threats = append(threats, models.Threat{
			ID:          fmt.Sprintf("threat-%03d", i+1),
			FindingID:   fmt.Sprintf("finding-%04d", g.between(1000, 9999)),
			Title:       g.choice(findingTitles),
			Severity:    g.weightedSeverity(),
			Resource:    fmt.Sprintf("resource-%d", g.between(1000, 9999)),
			AccountID:   g.accountID(),
			AutoFixable: g.intn(100) < 60,
			DetectedAt:  g.isoDaysAgo(7),
		})
	}
	return threats
}

// RemediationCode generates sample remediation code for a finding
func (g *Generator) RemediationCode(req models.RemediationCodeRequest) models.RemediationCode {
	lang := req.Language
	if lang == "" {
		lang = "PYTHON"
	}
	return models.RemediationCode{
		FindingID: req.FindingID,
		Language:  lang,
		Code:      "# Generated remediation\n# Review before execution\nblock_public_access(bucket)\n",
		Rollback:  "# Rollback\nrestore_previous_policy(bucket)\n",
	}
}

// BatchRemediationResult generates the outcome of a demo batch submission
func (g *Generator) BatchRemediationResult(submitted int) models.BatchRemediationResult {
	return models.BatchRemediationResult{
		BatchID:   fmt.Sprintf("batch-%d", g.now().Unix()),
		Submitted: submitted,
		Status:    "QUEUED",
	}
}

// RemediationHistory generates completed and in-flight remediations
func (g *Generator) RemediationHistory(count int) []models.RemediationRecord {
	statuses := []string{"COMPLETED", "COMPLETED", "COMPLETED", "IN_PROGRESS", "FAILED", "ROLLED_BACK"}
	records := make([]models.RemediationRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, models.RemediationRecord{
			ID:         fmt.Sprintf("rem-%03d", i+1),
			FindingID:  fmt.Sprintf("finding-%04d", g.between(1000, 9999)),
			Title:      g.choice(findingTitles),
			Type:       g.choice([]string{"AUTOMATED", "MANUAL", "SEMI_AUTOMATED"}),
			Status:     g.choice(statuses),
			ExecutedBy: g.choice([]string{"auto-remediation", "security-team", "platform-team"}),
			ExecutedAt: g.isoDaysAgo(30),
			Confidence: round2(g.uniform(0.6, 0.99)),
			RiskLevel:  g.choice([]string{"LOW", "MEDIUM", "HIGH"}),
		})
	}
	return records
}

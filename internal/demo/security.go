package demo

import (
	"fmt"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

var accountNames = []string{
	"Production-Retail",
	"Production-Payments",
	"Dev-Healthcare",
	"Staging-Analytics",
	"Sandbox-Platform",
}

var findingTitles = []string{
	"S3 bucket allows public read access",
	"IAM root account has active access keys",
	"Security group allows unrestricted SSH",
	"RDS instance is not encrypted at rest",
	"CloudTrail logging is disabled in region",
	"EBS snapshot is publicly restorable",
	"Lambda function has overly permissive role",
	"EKS cluster endpoint is publicly accessible",
}

// SecurityFindings generates count security findings
func (g *Generator) SecurityFindings(count int) []models.SecurityFinding {
	findings := make([]models.SecurityFinding, 0, count)
	for i := 0; i < count; i++ {
		severity := g.weightedSeverity()
		status := models.FindingActive
		switch pick := g.intn(100); {
		case pick >= 95:
			status = models.FindingSuppressed
		case pick >= 70:
			status = models.FindingResolved
		}
		findings = append(findings, models.SecurityFinding{
			ID:               fmt.Sprintf("finding-%04d", g.between(1000, 9999)),
			Title:            g.choice(findingTitles),
			Description:      "Detected by automated posture scanning across organization accounts.",
			Severity:         severity,
			Status:           status,
			AccountID:        g.accountID(),
			AccountName:      g.choice(accountNames),
			Region:           g.choice(regions),
			ResourceType:     g.choice(resourceTypes),
			ResourceID:       fmt.Sprintf("resource-%d", g.between(1000, 9999)),
			ComplianceStatus: g.choice([]string{"PASSED", "FAILED", "NOT_AVAILABLE"}),
			CreatedAt:        g.isoDaysAgo(30),
			UpdatedAt:        g.isoDaysAgo(7),
		})
	}
	return findings
}

// SecurityHub generates the aggregated Security Hub summary
func (g *Generator) SecurityHub() models.SecurityHubSummary {
	critical := g.between(15, 35)
	high := g.between(60, 120)
	medium := g.between(250, 400)
	low := g.between(400, 700)
	info := g.between(150, 350)
	passed := g.between(1200, 1800)
	failed := critical + high + medium

	return models.SecurityHubSummary{
		Critical:        critical,
		High:            high,
		Medium:          medium,
		Low:             low,
		Informational:   info,
		TotalFindings:   critical + high + medium + low + info,
		PassedChecks:    passed,
		FailedChecks:    failed,
		ComplianceScore: g.uniform(70, 95),
		EnabledStandards: []string{
			"AWS Foundational Security Best Practices",
			"CIS AWS Foundations Benchmark",
			"PCI-DSS",
		},
		Findings: g.SecurityFindings(25),
	}
}

var threatTypes = []string{
	"Trojan:EC2/DriveBySourceTraffic!DNS",
	"Recon:EC2/PortProbeUnprotectedPort",
	"UnauthorizedAccess:IAMUser/ConsoleLoginSuccess.B",
	"CryptoCurrency:EC2/BitcoinTool.B!DNS",
	"Persistence:IAMUser/AnomalousBehavior",
}

// GuardDutyFindings generates count GuardDuty threat detections
func (g *Generator) GuardDutyFindings(count int) []models.GuardDutyFinding {
	findings := make([]models.GuardDutyFinding, 0, count)
	for i := 0; i < count; i++ {
		threat := g.choice(threatTypes)
		findings = append(findings, models.GuardDutyFinding{
			ID:            fmt.Sprintf("gd-%03d", i+1),
			Type:          threat,
			Title:         fmt.Sprintf("GuardDuty finding - %s detected", threat),
			Description:   "Anomalous activity observed by continuous threat detection.",
			Severity:      round2(g.uniform(1, 8.9)),
			Region:        g.choice(regions),
			AccountID:     g.accountID(),
			ResourceType:  "Instance",
			ResourceID:    fmt.Sprintf("i-%08x", g.between(0x1000000, 0x7fffffff)),
			ThreatType:    threat,
			ThreatPurpose: g.choice([]string{"Recon", "Trojan", "UnauthorizedAccess", "Persistence"}),
			CreatedAt:     g.isoDaysAgo(14),
		})
	}
	return findings
}

// InspectorFindings generates count Inspector vulnerability findings
func (g *Generator) InspectorFindings(count int) []models.InspectorFinding {
	findings := make([]models.InspectorFinding, 0, count)
	for i := 0; i < count; i++ {
		findings = append(findings, models.InspectorFinding{
			ID:               fmt.Sprintf("ins-%03d", i+1),
			Title:            fmt.Sprintf("CVE-%d-%04d", g.between(2021, 2025), g.between(1000, 9999)),
			Description:      "Known vulnerability detected in installed package.",
			Severity:         g.weightedSeverity(),
			Status:           "ACTIVE",
			ResourceType:     g.choice(resourceTypes),
			ResourceID:       fmt.Sprintf("resource-%d", g.between(1000, 9999)),
			AccountID:        g.accountID(),
			Region:           g.choice(regions),
			VulnerabilityID:  fmt.Sprintf("CVE-%d-%04d", g.between(2021, 2025), g.between(1000, 9999)),
			CVSS:             round2(g.uniform(2, 9.8)),
			ExploitAvailable: g.intn(100) < 20,
			FixAvailable:     g.intn(100) < 80,
			PackageName:      g.choice([]string{"openssl", "log4j-core", "glibc", "curl", "linux-kernel"}),
		})
	}
	return findings
}

// ConfigCompliance generates AWS Config rule evaluation totals
func (g *Generator) ConfigCompliance() models.ConfigCompliance {
	return models.ConfigCompliance{
		Compliant:     g.between(120, 180),
		NonCompliant:  g.between(10, 40),
		NotApplicable: g.between(5, 20),
	}
}

// VulnerabilityOverview generates vulnerability totals
func (g *Generator) VulnerabilityOverview() models.VulnerabilityOverview {
	critical := g.between(5, 20)
	high := g.between(30, 80)
	medium := g.between(100, 250)
	low := g.between(150, 400)
	return models.VulnerabilityOverview{
		Critical:     critical,
		High:         high,
		Medium:       medium,
		Low:          low,
		Total:        critical + high + medium + low,
		PatchablePct: round2(g.uniform(60, 95)),
		MeanTimeDays: round2(g.uniform(3, 21)),
	}
}

// ContainerVulnerabilities generates count vulnerable container images
func (g *Generator) ContainerVulnerabilities(count int) []models.ContainerVulnerability {
	images := []string{"api-gateway", "payment-service", "auth-service", "batch-worker", "report-engine"}
	vulns := make([]models.ContainerVulnerability, 0, count)
	for i := 0; i < count; i++ {
		vulns = append(vulns, models.ContainerVulnerability{
			ID:       fmt.Sprintf("cnt-%03d", i+1),
			Image:    g.choice(images),
			Tag:      fmt.Sprintf("v1.%d.%d", g.intn(10), g.intn(20)),
			Registry: "123456789012.dkr.ecr.us-east-1.amazonaws.com",
			Severity: g.weightedSeverity(),
			CVE:      fmt.Sprintf("CVE-%d-%04d", g.between(2022, 2025), g.between(1000, 9999)),
			CVSS:     round2(g.uniform(2, 9.8)),
		})
	}
	return vulns
}

// EKSVulnerabilities generates count vulnerable EKS workloads
func (g *Generator) EKSVulnerabilities(count int) []models.EKSVulnerability {
	clusters := []string{"prod-cluster", "staging-cluster", "data-cluster"}
	namespaces := []string{"default", "payments", "ingest", "kube-system"}
	vulns := make([]models.EKSVulnerability, 0, count)
	for i := 0; i < count; i++ {
		vulns = append(vulns, models.EKSVulnerability{
			ID:        fmt.Sprintf("eks-%03d", i+1),
			Cluster:   g.choice(clusters),
			Namespace: g.choice(namespaces),
			Workload:  fmt.Sprintf("deployment/%s", g.choice([]string{"api", "worker", "scheduler", "frontend"})),
			Severity:  g.weightedSeverity(),
			CVE:       fmt.Sprintf("CVE-%d-%04d", g.between(2022, 2025), g.between(1000, 9999)),
		})
	}
	return vulns
}

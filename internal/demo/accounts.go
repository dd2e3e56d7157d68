package demo

import (
	"fmt"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// Accounts generates organization member accounts
func (g *Generator) Accounts(count int) []models.AWSAccount {
	environments := []string{"production", "staging", "development", "sandbox"}
	owners := []string{"platform-team", "payments-team", "data-team", "security-team"}
	accounts := make([]models.AWSAccount, 0, count)
	for i := 0; i < count; i++ {
		env := g.choice(environments)
		name := g.choice(accountNames)
		status := "ACTIVE"
		switch pick := g.intn(100); {
		case pick >= 95:
			status = "PENDING_CLOSURE"
		case pick >= 90:
			status = "SUSPENDED"
		}
		accounts = append(accounts, models.AWSAccount{
			ID:                 g.accountID(),
			Name:               name,
			Email:              fmt.Sprintf("aws+%s-%d@example.com", env, i+1),
			Status:             status,
			Environment:        env,
			OrganizationalUnit: fmt.Sprintf("ou-%s", env),
			Owner:              g.choice(owners),
			CostCenter:         fmt.Sprintf("CC-%04d", g.between(1000, 9999)),
			ComplianceScore:    round2(g.uniform(65, 98)),
			MonthlyCost:        round2(g.uniform(5000, 50000)),
			FindingCount:       g.intn(51),
			JoinedAt:           g.isoDaysAgo(900),
		})
	}
	return accounts
}

// AccountTemplates generates provisioning blueprints
func (g *Generator) AccountTemplates() []models.AccountTemplate {
	return []models.AccountTemplate{
		{
			ID:          "tpl-production",
			Name:        "Production Account",
			Description: "Hardened baseline with full guardrail coverage.",
			Environment: "production",
			Features:    []string{"guardduty", "security-hub", "config", "cloudtrail", "backup"},
			SCPs:        []string{"deny-root-actions", "require-encryption", "restrict-regions"},
		},
		{
			ID:          "tpl-development",
			Name:        "Development Account",
			Description: "Developer sandbox with cost guardrails.",
			Environment: "development",
			Features:    []string{"guardduty", "config", "budget-alerts"},
			SCPs:        []string{"deny-root-actions", "block-expensive-instances"},
		},
		{
			ID:          "tpl-sandbox",
			Name:        "Sandbox Account",
			Description: "Short-lived experimentation account, auto-decommissioned.",
			Environment: "sandbox",
			Features:    []string{"budget-alerts", "auto-cleanup"},
			SCPs:        []string{"deny-root-actions"},
		},
	}
}

// ProvisionResult generates the outcome of a demo provisioning request
func (g *Generator) ProvisionResult() models.ProvisionResult {
	return models.ProvisionResult{
		RequestID: fmt.Sprintf("prov-%d", g.now().Unix()),
		Status:    "PENDING",
		Message:   "Provisioning request accepted (demo mode, no account created).",
	}
}

package viewmodel

import (
	"strings"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// NormalizeAccounts reshapes the raw organization payloads into the
// accounts view
func NormalizeAccounts(accounts []models.AWSAccount, templates []models.AccountTemplate) AccountsView {
	byEnv := make(map[string]int)
	active := 0
	var totalCost float64
	for _, a := range accounts {
		env := a.Environment
		if env == "" {
			env = "unknown"
		}
		byEnv[env]++
		if strings.EqualFold(a.Status, "active") {
			active++
		}
		if a.MonthlyCost > 0 {
			totalCost += a.MonthlyCost
		}
	}

	return AccountsView{
		Accounts:         nonNil(accounts),
		Templates:        nonNil(templates),
		TotalAccounts:    len(accounts),
		ActiveCount:      active,
		ByEnvironment:    byEnv,
		TotalMonthlyCost: totalCost,
	}
}

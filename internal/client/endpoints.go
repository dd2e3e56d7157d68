package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// envelope is the standard upstream response wrapper
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// getData issues a GET and unwraps the standard response envelope
func getData[T any](ctx context.Context, c *Client, path string, params url.Values) (T, error) {
	var env envelope[T]
	if err := c.Get(ctx, path, params, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// postData issues a POST and unwraps the standard response envelope
func postData[T any](ctx context.Context, c *Client, path string, body interface{}) (T, error) {
	var env envelope[T]
	if err := c.Post(ctx, path, body, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// Configuration & mode

// FetchHealth retrieves upstream service health
func (c *Client) FetchHealth(ctx context.Context) (models.HealthStatus, error) {
	var health models.HealthStatus
	err := c.Get(ctx, "/health", nil, &health)
	return health, err
}

// FetchConfig retrieves the upstream runtime configuration
func (c *Client) FetchConfig(ctx context.Context) (models.BackendConfig, error) {
	var cfg models.BackendConfig
	err := c.Get(ctx, "/config", nil, &cfg)
	return cfg, err
}

// SetDemoMode toggles demo mode on the upstream
func (c *Client) SetDemoMode(ctx context.Context, demoMode bool) error {
	body := map[string]bool{"demo_mode": demoMode}
	return c.Post(ctx, "/config/mode", body, nil)
}

// Dashboard

// FetchDashboard retrieves the aggregated dashboard payload
func (c *Client) FetchDashboard(ctx context.Context) (models.DashboardData, error) {
	return getData[models.DashboardData](ctx, c, "/dashboard", nil)
}

// Accounts

// AccountFilter narrows the account listing
type AccountFilter struct {
	Environment string
	Status      string
	Limit       int
}

// FetchAccounts retrieves organization member accounts
func (c *Client) FetchAccounts(ctx context.Context, filter AccountFilter) ([]models.AWSAccount, error) {
	params := url.Values{}
	if filter.Environment != "" {
		params.Set("environment", filter.Environment)
	}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}
	return getData[[]models.AWSAccount](ctx, c, "/accounts", params)
}

// FetchAccountTemplates retrieves provisioning templates
func (c *Client) FetchAccountTemplates(ctx context.Context) ([]models.AccountTemplate, error) {
	return getData[[]models.AccountTemplate](ctx, c, "/accounts/templates", nil)
}

// FetchAccountDetails retrieves a single account
func (c *Client) FetchAccountDetails(ctx context.Context, accountID string) (models.AWSAccount, error) {
	return getData[models.AWSAccount](ctx, c, fmt.Sprintf("/accounts/%s", accountID), nil)
}

// ProvisionAccount submits an account provisioning request
func (c *Client) ProvisionAccount(ctx context.Context, req models.ProvisionRequest) (models.ProvisionResult, error) {
	return postData[models.ProvisionResult](ctx, c, "/accounts/provision", req)
}

// DecommissionAccount submits an account decommission request
func (c *Client) DecommissionAccount(ctx context.Context, req models.DecommissionRequest) (models.ProvisionResult, error) {
	return postData[models.ProvisionResult](ctx, c, "/accounts/decommission", req)
}

// Security

// FindingFilter narrows the security finding listing
type FindingFilter struct {
	Severity string
	Status   string
	Limit    int
}

// FetchSecurityFindings retrieves security findings
func (c *Client) FetchSecurityFindings(ctx context.Context, filter FindingFilter) ([]models.SecurityFinding, error) {
	params := url.Values{}
	if filter.Severity != "" {
		params.Set("severity", filter.Severity)
	}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}
	return getData[[]models.SecurityFinding](ctx, c, "/security/findings", params)
}

// FetchSecurityHub retrieves the Security Hub summary
func (c *Client) FetchSecurityHub(ctx context.Context, limit int) (models.SecurityHubSummary, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return getData[models.SecurityHubSummary](ctx, c, "/security/security-hub", params)
}

// FetchGuardDutyFindings retrieves GuardDuty threat detections
func (c *Client) FetchGuardDutyFindings(ctx context.Context, limit int) ([]models.GuardDutyFinding, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return getData[[]models.GuardDutyFinding](ctx, c, "/security/guardduty", params)
}

// FetchConfigRules retrieves AWS Config compliance totals
func (c *Client) FetchConfigRules(ctx context.Context) (models.ConfigCompliance, error) {
	return getData[models.ConfigCompliance](ctx, c, "/security/config", nil)
}

// FetchInspectorFindings retrieves Inspector findings
func (c *Client) FetchInspectorFindings(ctx context.Context) ([]models.InspectorFinding, error) {
	return getData[[]models.InspectorFinding](ctx, c, "/security/inspector", nil)
}

// Compliance

// FetchComplianceScore retrieves the overall compliance score
func (c *Client) FetchComplianceScore(ctx context.Context) (models.ComplianceScore, error) {
	return getData[models.ComplianceScore](ctx, c, "/compliance/score", nil)
}

// FetchUnifiedCompliance retrieves the cross-framework compliance view
func (c *Client) FetchUnifiedCompliance(ctx context.Context) (models.ComplianceScore, error) {
	return getData[models.ComplianceScore](ctx, c, "/compliance/unified", nil)
}

// FetchComplianceFrameworks retrieves per-framework assessments
func (c *Client) FetchComplianceFrameworks(ctx context.Context) ([]models.ComplianceFramework, error) {
	return getData[[]models.ComplianceFramework](ctx, c, "/compliance/frameworks", nil)
}

// FetchComplianceHistory retrieves the compliance score history
func (c *Client) FetchComplianceHistory(ctx context.Context, days int) ([]models.ComplianceHistoryPoint, error) {
	params := url.Values{}
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}
	return getData[[]models.ComplianceHistoryPoint](ctx, c, "/compliance/history", params)
}

// Vulnerabilities

// FetchVulnerabilitiesOverview retrieves vulnerability totals
func (c *Client) FetchVulnerabilitiesOverview(ctx context.Context) (models.VulnerabilityOverview, error) {
	return getData[models.VulnerabilityOverview](ctx, c, "/vulnerabilities/overview", nil)
}

// FetchInspectorVulnerabilities retrieves Inspector vulnerability detail
func (c *Client) FetchInspectorVulnerabilities(ctx context.Context) ([]models.InspectorFinding, error) {
	return getData[[]models.InspectorFinding](ctx, c, "/vulnerabilities/inspector", nil)
}

// FetchEKSVulnerabilities retrieves EKS workload vulnerabilities
func (c *Client) FetchEKSVulnerabilities(ctx context.Context) ([]models.EKSVulnerability, error) {
	return getData[[]models.EKSVulnerability](ctx, c, "/vulnerabilities/eks", nil)
}

// FetchContainerVulnerabilities retrieves container image vulnerabilities
func (c *Client) FetchContainerVulnerabilities(ctx context.Context) ([]models.ContainerVulnerability, error) {
	return getData[[]models.ContainerVulnerability](ctx, c, "/vulnerabilities/containers", nil)
}

// Guardrails

// FetchSCPPolicies retrieves service control policies
func (c *Client) FetchSCPPolicies(ctx context.Context) ([]models.SCPPolicy, error) {
	return getData[[]models.SCPPolicy](ctx, c, "/guardrails/scp", nil)
}

// FetchOPAPolicies retrieves OPA policies
func (c *Client) FetchOPAPolicies(ctx context.Context) ([]models.OPAPolicy, error) {
	return getData[[]models.OPAPolicy](ctx, c, "/guardrails/opa", nil)
}

// FetchKICSResults retrieves infrastructure-as-code scan results
func (c *Client) FetchKICSResults(ctx context.Context) (models.KICSSummary, error) {
	return getData[models.KICSSummary](ctx, c, "/guardrails/kics", nil)
}

// FetchGuardrailViolations retrieves active guardrail violations
func (c *Client) FetchGuardrailViolations(ctx context.Context) ([]models.GuardrailViolation, error) {
	return getData[[]models.GuardrailViolation](ctx, c, "/guardrails/violations", nil)
}

// DeployGuardrail submits a guardrail deployment
func (c *Client) DeployGuardrail(ctx context.Context, req models.GuardrailDeployRequest) (models.GuardrailDeployResult, error) {
	return postData[models.GuardrailDeployResult](ctx, c, "/guardrails/deploy", req)
}

// Remediation

// FetchThreats retrieves active threats awaiting remediation
func (c *Client) FetchThreats(ctx context.Context) ([]models.Threat, error) {
	return getData[[]models.Threat](ctx, c, "/remediation/threats", nil)
}

// GenerateRemediationCode requests generated remediation code for a finding
func (c *Client) GenerateRemediationCode(ctx context.Context, req models.RemediationCodeRequest) (models.RemediationCode, error) {
	return postData[models.RemediationCode](ctx, c, "/remediation/generate-code", req)
}

// ExecuteBatchRemediation submits a batch remediation
func (c *Client) ExecuteBatchRemediation(ctx context.Context, req models.BatchRemediationRequest) (models.BatchRemediationResult, error) {
	return postData[models.BatchRemediationResult](ctx, c, "/remediation/batch", req)
}

// FetchRemediationHistory retrieves completed and in-flight remediations
func (c *Client) FetchRemediationHistory(ctx context.Context, limit int) ([]models.RemediationRecord, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return getData[[]models.RemediationRecord](ctx, c, "/remediation/history", params)
}

// RollbackRemediation reverts a completed remediation
func (c *Client) RollbackRemediation(ctx context.Context, remediationID string) (models.BatchRemediationResult, error) {
	body := map[string]string{"remediation_id": remediationID}
	return postData[models.BatchRemediationResult](ctx, c, "/remediation/rollback", body)
}

// FinOps

// FetchFinOpsOverview retrieves the cost overview
func (c *Client) FetchFinOpsOverview(ctx context.Context) (models.CostOverview, error) {
	return getData[models.CostOverview](ctx, c, "/finops/overview", nil)
}

// FetchCostByService retrieves per-service spend
func (c *Client) FetchCostByService(ctx context.Context) ([]models.ServiceCost, error) {
	return getData[[]models.ServiceCost](ctx, c, "/finops/by-service", nil)
}

// FetchCostByAccount retrieves per-account spend
func (c *Client) FetchCostByAccount(ctx context.Context) ([]models.AccountCost, error) {
	return getData[[]models.AccountCost](ctx, c, "/finops/by-account", nil)
}

// FetchBudgets retrieves cost budgets
func (c *Client) FetchBudgets(ctx context.Context) ([]models.Budget, error) {
	return getData[[]models.Budget](ctx, c, "/finops/budgets", nil)
}

// FetchCostAnomalies retrieves unexpected spend deviations
func (c *Client) FetchCostAnomalies(ctx context.Context) ([]models.CostAnomaly, error) {
	return getData[[]models.CostAnomaly](ctx, c, "/finops/anomalies", nil)
}

// FetchSavingsRecommendations retrieves cost optimization opportunities
func (c *Client) FetchSavingsRecommendations(ctx context.Context) ([]models.SavingsRecommendation, error) {
	return getData[[]models.SavingsRecommendation](ctx, c, "/finops/savings", nil)
}

// FetchCostForecast retrieves the next-month spend forecast
func (c *Client) FetchCostForecast(ctx context.Context) (models.CostForecast, error) {
	return getData[models.CostForecast](ctx, c, "/finops/forecast", nil)
}

// FetchUnitEconomics retrieves cost-per-unit metrics
func (c *Client) FetchUnitEconomics(ctx context.Context) (models.UnitEconomics, error) {
	return getData[models.UnitEconomics](ctx, c, "/finops/unit-economics", nil)
}

// FetchSustainability retrieves carbon footprint estimates
func (c *Client) FetchSustainability(ctx context.Context) (models.Sustainability, error) {
	return getData[models.Sustainability](ctx, c, "/finops/sustainability", nil)
}

// AI

// FetchExecutiveDashboard retrieves the AI executive summary
func (c *Client) FetchExecutiveDashboard(ctx context.Context) (models.ExecutiveDashboard, error) {
	return getData[models.ExecutiveDashboard](ctx, c, "/ai/executive-dashboard", nil)
}

// FetchAIPredictions retrieves AI predictions of the given type
func (c *Client) FetchAIPredictions(ctx context.Context, predictionType string) ([]models.AIPrediction, error) {
	path := "/ai/predictions"
	if predictionType != "" {
		path = fmt.Sprintf("/ai/predictions/%s", predictionType)
	}
	return getData[[]models.AIPrediction](ctx, c, path, nil)
}

// FetchProactiveAlerts retrieves AI-surfaced early warnings
func (c *Client) FetchProactiveAlerts(ctx context.Context) ([]models.ProactiveAlert, error) {
	return getData[[]models.ProactiveAlert](ctx, c, "/ai/alerts", nil)
}

// ChatWithAI submits a chat conversation and returns the reply
func (c *Client) ChatWithAI(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	return postData[models.ChatResponse](ctx, c, "/ai/chat", req)
}

// Integrations

// integrationPayload wraps integration request bodies the way the
// upstream expects them
type integrationPayload struct {
	Payload interface{} `json:"payload"`
}

// CreateJiraTicket opens a Jira ticket for a finding
func (c *Client) CreateJiraTicket(ctx context.Context, req models.IntegrationTicketRequest) (models.IntegrationResult, error) {
	return postData[models.IntegrationResult](ctx, c, "/integrations/jira", integrationPayload{Payload: req})
}

// SendSlackNotification posts a message to a Slack channel
func (c *Client) SendSlackNotification(ctx context.Context, req models.IntegrationNotifyRequest) (models.IntegrationResult, error) {
	return postData[models.IntegrationResult](ctx, c, "/integrations/slack", integrationPayload{Payload: req})
}

// CreateServiceNowIncident opens a ServiceNow incident
func (c *Client) CreateServiceNowIncident(ctx context.Context, req models.IntegrationTicketRequest) (models.IntegrationResult, error) {
	return postData[models.IntegrationResult](ctx, c, "/integrations/servicenow", integrationPayload{Payload: req})
}

// TriggerPagerDuty triggers a PagerDuty incident
func (c *Client) TriggerPagerDuty(ctx context.Context, req models.IntegrationTicketRequest) (models.IntegrationResult, error) {
	return postData[models.IntegrationResult](ctx, c, "/integrations/pagerduty", integrationPayload{Payload: req})
}

// FetchGitHubSecurity retrieves GitHub security alert totals
func (c *Client) FetchGitHubSecurity(ctx context.Context) (models.GitHubSecuritySummary, error) {
	return getData[models.GitHubSecuritySummary](ctx, c, "/integrations/github", nil)
}

// Authentication

// LoginWithAzure exchanges an identity-provider token for an upstream
// session. The returned token authorizes every subsequent upstream call.
func (c *Client) LoginWithAzure(ctx context.Context, idToken string) (models.AzureSession, error) {
	body := map[string]string{"token": idToken}
	return postData[models.AzureSession](ctx, c, "/auth/azure", body)
}

// Logout invalidates the upstream session
func (c *Client) Logout(ctx context.Context) error {
	return c.Post(ctx, "/auth/logout", nil, nil)
}

// FetchCurrentUser retrieves the authenticated user
func (c *Client) FetchCurrentUser(ctx context.Context) (models.User, error) {
	return getData[models.User](ctx, c, "/auth/me", nil)
}

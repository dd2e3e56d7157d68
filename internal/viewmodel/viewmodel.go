// Package viewmodel reshapes raw upstream or demo payloads into the exact
// structures pages render. Normalizers are pure, tolerate missing fields
// with safe defaults and never fail on partial payloads.
package viewmodel

import "github.com/cloudcanvas/compliance-canvas/internal/models"

// Direction classifies the movement of a metric between periods
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable"
)

// Sentiment represents whether a movement is good or bad news
type Sentiment string

const (
	SentimentFavorable   Sentiment = "favorable"
	SentimentUnfavorable Sentiment = "unfavorable"
	SentimentNeutral     Sentiment = "neutral"
)

// Category identifies the polarity class of a metric. Cost and finding
// metrics are bad-is-up; compliance and score metrics are good-is-up.
type Category string

const (
	CategoryCost       Category = "cost"
	CategoryFindings   Category = "findings"
	CategoryCompliance Category = "compliance"
	CategoryScore      Category = "score"
	CategorySavings    Category = "savings"
	CategoryNeutral    Category = "neutral"
)

// Metric represents one display-ready dashboard metric
type Metric struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit,omitempty"`
	Change    float64   `json:"change"`
	Direction Direction `json:"change_direction"`
	Sentiment Sentiment `json:"sentiment"`
	Color     string    `json:"color"`
}

// SeverityBreakdown represents findings counted into the fixed buckets
type SeverityBreakdown struct {
	Critical      int `json:"critical"`
	High          int `json:"high"`
	Medium        int `json:"medium"`
	Low           int `json:"low"`
	Informational int `json:"informational"`
}

// Total returns the sum across all buckets
func (b SeverityBreakdown) Total() int {
	return b.Critical + b.High + b.Medium + b.Low + b.Informational
}

// DashboardView represents the executive dashboard page
type DashboardView struct {
	ComplianceScore float64           `json:"compliance_score"`
	Metrics         []Metric          `json:"metrics"`
	Findings        SeverityBreakdown `json:"findings"`
	Trend           models.TrendSeries `json:"trend"`
}

// SecurityView represents the security posture page
type SecurityView struct {
	Breakdown        SeverityBreakdown        `json:"breakdown"`
	TotalFindings    int                      `json:"total_findings"`
	PassedChecks     int                      `json:"passed_checks"`
	FailedChecks     int                      `json:"failed_checks"`
	PassRate         float64                  `json:"pass_rate"`
	ComplianceScore  float64                  `json:"compliance_score"`
	EnabledStandards []string                 `json:"enabled_standards"`
	TopFindings      []models.SecurityFinding `json:"top_findings"`
	GuardDuty        []models.GuardDutyFinding `json:"guardduty"`
	Inspector        []models.InspectorFinding `json:"inspector"`
	ConfigCompliance models.ConfigCompliance  `json:"config_compliance"`
	ConfigPassRate   float64                  `json:"config_pass_rate"`
}

// FrameworkScore represents one framework's display row
type FrameworkScore struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Score     float64   `json:"score"`
	Passed    int       `json:"passed_controls"`
	Failed    int       `json:"failed_controls"`
	PassRate  float64   `json:"pass_rate"`
	Sentiment Sentiment `json:"sentiment"`
}

// ComplianceView represents the compliance page
type ComplianceView struct {
	OverallScore float64                         `json:"overall_score"`
	Trend        string                          `json:"trend"`
	Frameworks   []FrameworkScore                `json:"frameworks"`
	History      []models.ComplianceHistoryPoint `json:"history"`
}

// FinOpsView represents the FinOps page
type FinOpsView struct {
	Metrics         []Metric                       `json:"metrics"`
	TopServices     []models.ServiceCost           `json:"top_services"`
	TopAccounts     []models.AccountCost           `json:"top_accounts"`
	DailyCosts      []models.CostPoint             `json:"daily_costs"`
	Budgets         []models.Budget                `json:"budgets"`
	Anomalies       []models.CostAnomaly           `json:"anomalies"`
	Recommendations []models.SavingsRecommendation `json:"recommendations"`
	PotentialSavings float64                       `json:"potential_monthly_savings"`
	Forecast        models.CostForecast            `json:"forecast"`
	UnitEconomics   models.UnitEconomics           `json:"unit_economics"`
	Sustainability  models.Sustainability          `json:"sustainability"`
}

// VulnerabilityView represents the vulnerabilities page
type VulnerabilityView struct {
	Breakdown    SeverityBreakdown               `json:"breakdown"`
	Total        int                             `json:"total"`
	PatchablePct float64                         `json:"patchable_percent"`
	MeanTimeDays float64                         `json:"mean_time_to_remediate_days"`
	Inspector    []models.InspectorFinding       `json:"inspector"`
	EKS          []models.EKSVulnerability       `json:"eks"`
	Containers   []models.ContainerVulnerability `json:"containers"`
}

// GuardrailsView represents the guardrails page
type GuardrailsView struct {
	SCPPolicies     []models.SCPPolicy          `json:"scp_policies"`
	OPAPolicies     []models.OPAPolicy          `json:"opa_policies"`
	KICS            models.KICSSummary          `json:"kics"`
	Violations      []models.GuardrailViolation `json:"violations"`
	AttachedSCPs    int                         `json:"attached_scps"`
	TotalViolations int                         `json:"total_violations"`
}

// RemediationView represents the remediation page
type RemediationView struct {
	Threats       []models.Threat            `json:"threats"`
	AutoFixable   int                        `json:"auto_fixable"`
	History       []models.RemediationRecord `json:"history"`
	SuccessRate   float64                    `json:"success_rate"`
	InProgress    int                        `json:"in_progress"`
}

// AccountsView represents the accounts page
type AccountsView struct {
	Accounts      []models.AWSAccount      `json:"accounts"`
	Templates     []models.AccountTemplate `json:"templates"`
	TotalAccounts int                      `json:"total_accounts"`
	ActiveCount   int                      `json:"active_count"`
	ByEnvironment map[string]int           `json:"by_environment"`
	TotalMonthlyCost float64               `json:"total_monthly_cost"`
}

// AIView represents the AI predictions page
type AIView struct {
	Executive   models.ExecutiveDashboard `json:"executive"`
	Predictions []models.AIPrediction     `json:"predictions"`
	Alerts      []models.ProactiveAlert   `json:"alerts"`
	HighPriority int                      `json:"high_priority_alerts"`
}

// IntegrationsView represents the integrations page
type IntegrationsView struct {
	Integrations []models.IntegrationStatus   `json:"integrations"`
	Connected    int                          `json:"connected"`
	GitHub       models.GitHubSecuritySummary `json:"github"`
}

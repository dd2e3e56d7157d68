package models

import "time"

// Severity represents a finding severity bucket
type Severity string

const (
	SeverityCritical      Severity = "CRITICAL"
	SeverityHigh          Severity = "HIGH"
	SeverityMedium        Severity = "MEDIUM"
	SeverityLow           Severity = "LOW"
	SeverityInformational Severity = "INFORMATIONAL"
)

// Severities lists every severity bucket in descending order
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInformational,
}

// Valid reports whether the severity is one of the fixed buckets
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInformational:
		return true
	}
	return false
}

// UserRole represents a user's role within the canvas
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCFO     UserRole = "cfo"
	RoleCISO    UserRole = "ciso"
	RoleCTO     UserRole = "cto"
	RoleAnalyst UserRole = "analyst"
	RoleViewer  UserRole = "viewer"
)

// User represents an authenticated canvas user
type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Role        UserRole `json:"role"`
	Permissions []string `json:"permissions"`
	LastLogin   string   `json:"last_login"`
}

// AzureSession represents the upstream session issued for an Azure AD login
type AzureSession struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// HealthStatus represents the upstream /health response
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// BackendConfig represents the upstream /config response
type BackendConfig struct {
	AppName     string `json:"app_name"`
	DemoMode    bool   `json:"demo_mode"`
	Region      string `json:"region"`
	Environment string `json:"environment"`
}

// Security

// FindingStatus represents the lifecycle state of a finding
type FindingStatus string

const (
	FindingActive     FindingStatus = "ACTIVE"
	FindingResolved   FindingStatus = "RESOLVED"
	FindingSuppressed FindingStatus = "SUPPRESSED"
)

// SecurityFinding represents a single security or compliance issue
type SecurityFinding struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Severity         Severity      `json:"severity"`
	Status           FindingStatus `json:"status"`
	AccountID        string        `json:"account_id"`
	AccountName      string        `json:"account_name"`
	Region           string        `json:"region"`
	ResourceType     string        `json:"resource_type"`
	ResourceID       string        `json:"resource_id"`
	ComplianceStatus string        `json:"compliance_status"`
	CreatedAt        string        `json:"created_at"`
	UpdatedAt        string        `json:"updated_at"`
	Remediation      string        `json:"remediation,omitempty"`
}

// SecurityHubSummary represents the aggregated Security Hub payload
type SecurityHubSummary struct {
	Critical         int               `json:"critical"`
	High             int               `json:"high"`
	Medium           int               `json:"medium"`
	Low              int               `json:"low"`
	Informational    int               `json:"informational"`
	TotalFindings    int               `json:"total_findings"`
	PassedChecks     int               `json:"passed_checks"`
	FailedChecks     int               `json:"failed_checks"`
	ComplianceScore  float64           `json:"compliance_score"`
	EnabledStandards []string          `json:"enabled_standards"`
	Findings         []SecurityFinding `json:"findings"`
}

// GuardDutyFinding represents a GuardDuty threat detection
type GuardDutyFinding struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Severity      float64 `json:"severity"`
	Region        string  `json:"region"`
	AccountID     string  `json:"account_id"`
	ResourceType  string  `json:"resource_type"`
	ResourceID    string  `json:"resource_id"`
	ThreatType    string  `json:"threat_type"`
	ThreatPurpose string  `json:"threat_purpose"`
	CreatedAt     string  `json:"created_at"`
}

// InspectorFinding represents an Inspector vulnerability finding
type InspectorFinding struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Severity         Severity `json:"severity"`
	Status           string   `json:"status"`
	ResourceType     string   `json:"resource_type"`
	ResourceID       string   `json:"resource_id"`
	AccountID        string   `json:"account_id"`
	Region           string   `json:"region"`
	VulnerabilityID  string   `json:"vulnerability_id"`
	CVSS             float64  `json:"cvss"`
	ExploitAvailable bool     `json:"exploit_available"`
	FixAvailable     bool     `json:"fix_available"`
	PackageName      string   `json:"package_name,omitempty"`
	PackageVersion   string   `json:"package_version,omitempty"`
	FixedVersion     string   `json:"fixed_version,omitempty"`
}

// ConfigCompliance represents AWS Config rule evaluation totals
type ConfigCompliance struct {
	Compliant     int `json:"compliant"`
	NonCompliant  int `json:"non_compliant"`
	NotApplicable int `json:"not_applicable"`
}

// Compliance

// ComplianceFramework represents a compliance framework assessment
type ComplianceFramework struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Version        string  `json:"version"`
	ControlCount   int     `json:"control_count"`
	PassedControls int     `json:"passed_controls"`
	FailedControls int     `json:"failed_controls"`
	Score          float64 `json:"score"`
	LastAssessment string  `json:"last_assessment"`
}

// ComplianceScore represents the overall compliance score payload
type ComplianceScore struct {
	OverallScore float64            `json:"overall_score"`
	Trend        string             `json:"trend"`
	Frameworks   map[string]float64 `json:"frameworks"`
	AssessedAt   string             `json:"assessed_at"`
}

// ComplianceHistoryPoint represents one day of compliance history
type ComplianceHistoryPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// FinOps

// CostPoint represents cost for a single calendar day
type CostPoint struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ServiceCost represents month-to-date spend for one AWS service
type ServiceCost struct {
	Service    string  `json:"service"`
	Cost       float64 `json:"cost"`
	Percentage float64 `json:"percentage"`
	Change     float64 `json:"change"`
}

// AccountCost represents month-to-date spend for one account
type AccountCost struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Cost        float64 `json:"cost"`
	Percentage  float64 `json:"percentage"`
	Change      float64 `json:"change"`
	Environment string  `json:"environment"`
}

// CostOverview represents the FinOps overview payload
type CostOverview struct {
	CurrentMonthCost    float64       `json:"current_month_cost"`
	PreviousMonthCost   float64       `json:"previous_month_cost"`
	ForecastedMonthCost float64       `json:"forecasted_month_cost"`
	MonthOverMonthPct   float64       `json:"month_over_month_change"`
	YearToDateCost      float64       `json:"year_to_date_cost"`
	BudgetAmount        float64       `json:"budget_amount"`
	BudgetUsedPercent   float64       `json:"budget_used_percent"`
	TopServices         []ServiceCost `json:"top_services"`
	TopAccounts         []AccountCost `json:"top_accounts"`
	DailyCosts          []CostPoint   `json:"daily_costs"`
}

// Budget represents a cost budget with alert thresholds
type Budget struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Amount          float64   `json:"amount"`
	ActualSpend     float64   `json:"actual_spend"`
	ForecastedSpend float64   `json:"forecasted_spend"`
	PercentUsed     float64   `json:"percent_used"`
	Period          string    `json:"period"`
	AlertThresholds []float64 `json:"alert_thresholds"`
	AlertsTriggered int       `json:"alerts_triggered"`
}

// CostAnomaly represents an unexpected spend deviation
type CostAnomaly struct {
	ID         string  `json:"id"`
	AccountID  string  `json:"account_id"`
	Service    string  `json:"service"`
	Region     string  `json:"region"`
	Expected   float64 `json:"expected_cost"`
	Actual     float64 `json:"actual_cost"`
	Impact     float64 `json:"impact"`
	ImpactPct  float64 `json:"impact_percentage"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date,omitempty"`
	Status     string  `json:"status"`
	RootCause  string  `json:"root_cause,omitempty"`
}

// SavingsRecommendation represents a cost optimization opportunity
type SavingsRecommendation struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	MonthlySavings  float64 `json:"estimated_monthly_savings"`
	AnnualSavings   float64 `json:"estimated_annual_savings"`
	ResourceID      string  `json:"resource_id,omitempty"`
	ResourceType    string  `json:"resource_type,omitempty"`
	CurrentCost     float64 `json:"current_cost"`
	RecommendedCost float64 `json:"recommended_cost"`
	Effort          string  `json:"effort"`
	Impact          string  `json:"impact"`
}

// CostForecast represents the next-month spend forecast
type CostForecast struct {
	NextMonth  float64 `json:"next_month"`
	Confidence float64 `json:"confidence"`
	Trend      string  `json:"trend"`
}

// UnitEconomics represents cost-per-unit business metrics
type UnitEconomics struct {
	CostPerCustomer    float64 `json:"cost_per_customer"`
	CostPerTransaction float64 `json:"cost_per_transaction"`
	CostPerRequest     float64 `json:"cost_per_request"`
	Currency           string  `json:"currency"`
}

// Sustainability represents carbon footprint estimates
type Sustainability struct {
	CarbonEmissionsKg float64 `json:"carbon_emissions_kg"`
	ChangePct         float64 `json:"change_percent"`
	RenewablePct      float64 `json:"renewable_percent"`
	TopRegions        []struct {
		Region      string  `json:"region"`
		EmissionsKg float64 `json:"emissions_kg"`
	} `json:"top_regions"`
}

// Vulnerabilities

// VulnerabilityOverview represents the vulnerabilities overview payload
type VulnerabilityOverview struct {
	Critical     int     `json:"critical"`
	High         int     `json:"high"`
	Medium       int     `json:"medium"`
	Low          int     `json:"low"`
	Total        int     `json:"total"`
	PatchablePct float64 `json:"patchable_percent"`
	MeanTimeDays float64 `json:"mean_time_to_remediate_days"`
}

// ContainerVulnerability represents a vulnerable container image
type ContainerVulnerability struct {
	ID         string   `json:"id"`
	Image      string   `json:"image"`
	Tag        string   `json:"tag"`
	Registry   string   `json:"registry"`
	Severity   Severity `json:"severity"`
	CVE        string   `json:"cve"`
	CVSS       float64  `json:"cvss"`
	FixVersion string   `json:"fix_version,omitempty"`
}

// EKSVulnerability represents a vulnerable EKS cluster workload
type EKSVulnerability struct {
	ID        string   `json:"id"`
	Cluster   string   `json:"cluster"`
	Namespace string   `json:"namespace"`
	Workload  string   `json:"workload"`
	Severity  Severity `json:"severity"`
	CVE       string   `json:"cve"`
}

// Guardrails

// SCPPolicy represents a service control policy
type SCPPolicy struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Content     string   `json:"content,omitempty"`
	Targets     []string `json:"targets"`
	Status      string   `json:"status"`
	UpdatedAt   string   `json:"updated_at"`
}

// OPAViolation represents a single OPA policy violation
type OPAViolation struct {
	Resource  string   `json:"resource"`
	Issue     string   `json:"issue"`
	Severity  Severity `json:"severity"`
	Timestamp string   `json:"timestamp"`
}

// OPAPolicy represents an Open Policy Agent policy
type OPAPolicy struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	PolicyType    string         `json:"policy_type"`
	Status        string         `json:"status"`
	Violations    int            `json:"violations"`
	LastEvaluated string         `json:"last_evaluated"`
	Details       []OPAViolation `json:"violation_details,omitempty"`
}

// KICSSummary represents infrastructure-as-code scan totals
type KICSSummary struct {
	TotalIssues int           `json:"total_issues"`
	Critical    int           `json:"critical"`
	High        int           `json:"high"`
	Medium      int           `json:"medium"`
	Low         int           `json:"low"`
	Findings    []KICSFinding `json:"findings,omitempty"`
}

// KICSFinding represents one IaC scan finding
type KICSFinding struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Repository  string   `json:"repository"`
	FilePath    string   `json:"file_path"`
	LineNumber  int      `json:"line_number"`
	Resource    string   `json:"resource"`
	Remediation string   `json:"remediation,omitempty"`
}

// GuardrailViolation represents an active guardrail violation
type GuardrailViolation struct {
	ID         string   `json:"id"`
	PolicyID   string   `json:"policy_id"`
	PolicyType string   `json:"policy_type"`
	AccountID  string   `json:"account_id"`
	Resource   string   `json:"resource"`
	Severity   Severity `json:"severity"`
	DetectedAt string   `json:"detected_at"`
}

// GuardrailDeployRequest represents a guardrail deployment request
type GuardrailDeployRequest struct {
	PolicyType     string   `json:"policy_type"`
	PolicyID       string   `json:"policy_id"`
	TargetAccounts []string `json:"target_accounts,omitempty"`
	DryRun         bool     `json:"dry_run,omitempty"`
}

// GuardrailDeployResult represents the outcome of a deployment
type GuardrailDeployResult struct {
	DeploymentID string `json:"deployment_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

// Remediation

// Threat represents an active threat awaiting remediation
type Threat struct {
	ID          string   `json:"id"`
	FindingID   string   `json:"finding_id"`
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Resource    string   `json:"resource"`
	AccountID   string   `json:"account_id"`
	AutoFixable bool     `json:"auto_fixable"`
	DetectedAt  string   `json:"detected_at"`
}

// RemediationCodeRequest represents a code generation request
type RemediationCodeRequest struct {
	FindingID   string `json:"finding_id"`
	FindingType string `json:"finding_type"`
	Language    string `json:"language"`
}

// RemediationCode represents generated remediation code
type RemediationCode struct {
	FindingID string `json:"finding_id"`
	Language  string `json:"language"`
	Code      string `json:"code"`
	Rollback  string `json:"rollback_code,omitempty"`
}

// BatchRemediationRequest represents a batch remediation submission
type BatchRemediationRequest struct {
	FindingIDs       []string `json:"finding_ids"`
	Action           string   `json:"action"`
	ApprovalRequired bool     `json:"approval_required,omitempty"`
}

// BatchRemediationResult represents the outcome of a batch submission
type BatchRemediationResult struct {
	BatchID   string `json:"batch_id"`
	Submitted int    `json:"submitted"`
	Status    string `json:"status"`
}

// RemediationRecord represents a completed or in-flight remediation
type RemediationRecord struct {
	ID          string  `json:"id"`
	FindingID   string  `json:"finding_id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	ExecutedBy  string  `json:"executed_by,omitempty"`
	ExecutedAt  string  `json:"executed_at,omitempty"`
	CompletedAt string  `json:"completed_at,omitempty"`
	Confidence  float64 `json:"confidence"`
	RiskLevel   string  `json:"risk_level"`
}

// AI

// AIPrediction represents an AI-generated forecast
type AIPrediction struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Prediction      string   `json:"prediction"`
	Confidence      float64  `json:"confidence"`
	Timeframe       string   `json:"timeframe"`
	Impact          string   `json:"impact"`
	Recommendations []string `json:"recommendations"`
	GeneratedAt     string   `json:"generated_at"`
}

// ProactiveAlert represents an AI-surfaced early warning
type ProactiveAlert struct {
	ID                string   `json:"id"`
	Type              string   `json:"type"`
	Priority          string   `json:"priority"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Recommendation    string   `json:"recommendation"`
	AffectedResources []string `json:"affected_resources"`
	CreatedAt         string   `json:"created_at"`
}

// ChatMessage represents one message in an AI conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents an AI chat submission
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Context  string        `json:"context,omitempty"`
}

// ChatResponse represents an AI chat reply
type ChatResponse struct {
	Message   ChatMessage `json:"message"`
	Timestamp string      `json:"timestamp"`
}

// ExecutiveDashboard represents the AI executive summary payload
type ExecutiveDashboard struct {
	Summary        string   `json:"summary"`
	RiskScore      float64  `json:"risk_score"`
	KeyInsights    []string `json:"key_insights"`
	TopPriorities  []string `json:"top_priorities"`
	GeneratedAt    string   `json:"generated_at"`
}

// Accounts

// AWSAccount represents a member account of the organization
type AWSAccount struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Status          string  `json:"status"`
	Environment     string  `json:"environment"`
	OrganizationalUnit string `json:"organizational_unit"`
	Owner           string  `json:"owner"`
	CostCenter      string  `json:"cost_center"`
	ComplianceScore float64 `json:"compliance_score"`
	MonthlyCost     float64 `json:"monthly_cost"`
	FindingCount    int     `json:"finding_count"`
	JoinedAt        string  `json:"joined_at"`
}

// AccountTemplate represents a provisioning blueprint
type AccountTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Environment string   `json:"environment"`
	Features    []string `json:"features"`
	SCPs        []string `json:"scps"`
}

// ProvisionRequest represents an account provisioning submission
type ProvisionRequest struct {
	AccountName  string `json:"account_name"`
	AccountEmail string `json:"account_email"`
	Template     string `json:"template"`
	Environment  string `json:"environment"`
	CostCenter   string `json:"cost_center,omitempty"`
	Owner        string `json:"owner,omitempty"`
}

// ProvisionResult represents the outcome of a provisioning request
type ProvisionResult struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// DecommissionRequest represents an account decommission submission
type DecommissionRequest struct {
	AccountID string `json:"account_id"`
	Reason    string `json:"reason,omitempty"`
}

// Dashboard

// KeyMetric represents a top-line dashboard metric from the backend
type KeyMetric struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Change float64 `json:"change"`
}

// FindingCounts represents findings bucketed by severity
type FindingCounts struct {
	Critical      int `json:"critical"`
	High          int `json:"high"`
	Medium        int `json:"medium"`
	Low           int `json:"low"`
	Informational int `json:"informational"`
}

// TrendSeries represents a severity trend over consecutive days
type TrendSeries struct {
	Dates    []string `json:"dates"`
	Critical []int    `json:"critical"`
	High     []int    `json:"high"`
	Medium   []int    `json:"medium"`
}

// DashboardData represents the /dashboard payload
type DashboardData struct {
	KeyMetrics      []KeyMetric   `json:"key_metrics"`
	ComplianceScore float64       `json:"compliance_score"`
	Findings        FindingCounts `json:"findings"`
	Trend           TrendSeries   `json:"trend"`
}

// Integrations

// IntegrationStatus represents the health of a third-party integration
type IntegrationStatus struct {
	Name      string `json:"name"`
	Connected bool   `json:"connected"`
	LastSync  string `json:"last_sync,omitempty"`
}

// IntegrationTicketRequest represents an outbound ticket or message
type IntegrationTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Project     string `json:"project,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// IntegrationNotifyRequest represents an outbound chat notification
type IntegrationNotifyRequest struct {
	Channel string `json:"channel"`
	Message string `json:"message"`
}

// IntegrationResult represents the outcome of an integration action
type IntegrationResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

// GitHubSecuritySummary represents GitHub security alert totals
type GitHubSecuritySummary struct {
	OpenAlerts      int `json:"open_alerts"`
	DependabotAlerts int `json:"dependabot_alerts"`
	CodeScanningAlerts int `json:"code_scanning_alerts"`
	SecretAlerts    int `json:"secret_alerts"`
}

package controller

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cloudcanvas/compliance-canvas/internal/cache"
	"github.com/cloudcanvas/compliance-canvas/internal/client"
	"github.com/cloudcanvas/compliance-canvas/internal/models"
	"github.com/cloudcanvas/compliance-canvas/internal/viewmodel"
)

// loadView resolves a page's view from the demo generator or the live
// upstream. Demo mode never touches the network.
func (c *Controller) loadView(ctx context.Context, page Page, demoMode bool) (interface{}, error) {
	if demoMode {
		return c.demoView(page), nil
	}
	return c.liveView(ctx, page)
}

// demoView builds a page view from generated data
func (c *Controller) demoView(page Page) interface{} {
	switch page {
	case PageDashboard:
		view := viewmodel.NormalizeDashboard(c.demo.Dashboard(c.trendDays))
		c.store.SetComplianceScore(view.ComplianceScore)
		return view
	case PageSecurity:
		return viewmodel.NormalizeSecurity(
			c.demo.SecurityHub(),
			c.demo.GuardDutyFindings(10),
			c.demo.InspectorFindings(10),
			c.demo.ConfigCompliance(),
		)
	case PageCompliance:
		view := viewmodel.NormalizeCompliance(
			c.demo.ComplianceScore(),
			c.demo.ComplianceFrameworks(),
			c.demo.ComplianceHistory(c.trendDays),
		)
		c.store.SetComplianceScore(view.OverallScore)
		return view
	case PageFinOps:
		return viewmodel.NormalizeFinOps(
			c.demo.CostOverview(c.trendDays),
			c.demo.Budgets(),
			c.demo.CostAnomalies(),
			c.demo.SavingsRecommendations(),
			c.demo.CostForecast(),
			c.demo.UnitEconomics(),
			c.demo.Sustainability(),
		)
	case PageVulnerabilities:
		return viewmodel.NormalizeVulnerabilities(
			c.demo.VulnerabilityOverview(),
			c.demo.InspectorFindings(15),
			c.demo.EKSVulnerabilities(8),
			c.demo.ContainerVulnerabilities(10),
		)
	case PageGuardrails:
		return viewmodel.NormalizeGuardrails(
			c.demo.SCPPolicies(),
			c.demo.OPAPolicies(),
			c.demo.KICSResults(),
			c.demo.GuardrailViolations(12),
		)
	case PageRemediation:
		return viewmodel.NormalizeRemediation(
			c.demo.Threats(10),
			c.demo.RemediationHistory(20),
		)
	case PageAccounts:
		return viewmodel.NormalizeAccounts(
			c.demo.Accounts(12),
			c.demo.AccountTemplates(),
		)
	case PageAI:
		return viewmodel.NormalizeAI(
			c.demo.ExecutiveDashboard(),
			c.demo.AIPredictions(""),
			c.demo.ProactiveAlerts(),
		)
	case PageIntegrations:
		return viewmodel.NormalizeIntegrations(
			c.demo.IntegrationStatuses(),
			c.demo.GitHubSecurity(),
		)
	}
	return nil
}

// liveView builds a page view from the upstream, fanning the page's
// requests out concurrently. Any failed request fails the whole page.
// Successful views are cached per region.
func (c *Controller) liveView(ctx context.Context, page Page) (interface{}, error) {
	region := c.store.Snapshot().CurrentRegion
	key := cache.PageKey(string(page), region)

	switch page {
	case PageDashboard:
		var cached viewmodel.DashboardView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		raw, err := c.api.FetchDashboard(ctx)
		if err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeDashboard(raw)
		c.store.SetComplianceScore(view.ComplianceScore)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageSecurity:
		var cached viewmodel.SecurityView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		var (
			hub       models.SecurityHubSummary
			guardduty []models.GuardDutyFinding
			inspector []models.InspectorFinding
			config    models.ConfigCompliance
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			hub, err = c.api.FetchSecurityHub(gctx, 25)
			return
		})
		g.Go(func() (err error) {
			guardduty, err = c.api.FetchGuardDutyFindings(gctx, 10)
			return
		})
		g.Go(func() (err error) {
			inspector, err = c.api.FetchInspectorFindings(gctx)
			return
		})
		g.Go(func() (err error) {
			config, err = c.api.FetchConfigRules(gctx)
			return
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeSecurity(hub, guardduty, inspector, config)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageCompliance:
		var cached viewmodel.ComplianceView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		var (
			score      models.ComplianceScore
			frameworks []models.ComplianceFramework
			history    []models.ComplianceHistoryPoint
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			score, err = c.api.FetchComplianceScore(gctx)
			return
		})
		g.Go(func() (err error) {
			frameworks, err = c.api.FetchComplianceFrameworks(gctx)
			return
		})
		g.Go(func() (err error) {
			history, err = c.api.FetchComplianceHistory(gctx, c.trendDays)
			return
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeCompliance(score, frameworks, history)
		c.store.SetComplianceScore(view.OverallScore)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageFinOps:
		var cached viewmodel.FinOpsView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		var (
			overview        models.CostOverview
			budgets         []models.Budget
			anomalies       []models.CostAnomaly
			recommendations []models.SavingsRecommendation
			forecast        models.CostForecast
			unitEconomics   models.UnitEconomics
			sustainability  models.Sustainability
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			overview, err = c.api.FetchFinOpsOverview(gctx)
			return
		})
		g.Go(func() (err error) {
			budgets, err = c.api.FetchBudgets(gctx)
			return
		})
		g.Go(func() (err error) {
			anomalies, err = c.api.FetchCostAnomalies(gctx)
			return
		})
		g.Go(func() (err error) {
			recommendations, err = c.api.FetchSavingsRecommendations(gctx)
			return
		})
		g.Go(func() (err error) {
			forecast, err = c.api.FetchCostForecast(gctx)
			return
		})
		g.Go(func() (err error) {
			unitEconomics, err = c.api.FetchUnitEconomics(gctx)
			return
		})
		g.Go(func() (err error) {
			sustainability, err = c.api.FetchSustainability(gctx)
			return
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeFinOps(overview, budgets, anomalies, recommendations, forecast, unitEconomics, sustainability)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageVulnerabilities:
		var cached viewmodel.VulnerabilityView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		var (
			overview   models.VulnerabilityOverview
			inspector  []models.InspectorFinding
			eks        []models.EKSVulnerability
			containers []models.ContainerVulnerability
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			overview, err = c.api.FetchVulnerabilitiesOverview(gctx)
			return
		})
		g.Go(func() (err error) {
			inspector, err = c.api.FetchInspectorVulnerabilities(gctx)
			return
		})
		g.Go(func() (err error) {
			eks, err = c.api.FetchEKSVulnerabilities(gctx)
			return
		})
		g.Go(func() (err error) {
			containers, err = c.api.FetchContainerVulnerabilities(gctx)
			return
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeVulnerabilities(overview, inspector, eks, containers)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageGuardrails:
		var cached viewmodel.GuardrailsView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		var (
			scps       []models.SCPPolicy
			opas       []models.OPAPolicy
			kics       models.KICSSummary
			violations []models.GuardrailViolation
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			scps, err = c.api.FetchSCPPolicies(gctx)
			return
		})
		g.Go(func() (err error) {
			opas, err = c.api.FetchOPAPolicies(gctx)
			return
		})
		g.Go(func() (err error) {
			kics, err = c.api.FetchKICSResults(gctx)
			return
		})
		g.Go(func() (err error) {
			violations, err = c.api.FetchGuardrailViolations(gctx)
			return
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeGuardrails(scps, opas, kics, violations)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageRemediation:
		var cached viewmodel.RemediationView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		var (
			threats []models.Threat
			history []models.RemediationRecord
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			threats, err = c.api.FetchThreats(gctx)
			return
		})
		g.Go(func() (err error) {
			history, err = c.api.FetchRemediationHistory(gctx, 50)
			return
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeRemediation(threats, history)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageAccounts:
		var cached viewmodel.AccountsView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		var (
			accounts  []models.AWSAccount
			templates []models.AccountTemplate
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			accounts, err = c.api.FetchAccounts(gctx, client.AccountFilter{})
			return
		})
		g.Go(func() (err error) {
			templates, err = c.api.FetchAccountTemplates(gctx)
			return
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeAccounts(accounts, templates)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageAI:
		var cached viewmodel.AIView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		var (
			executive   models.ExecutiveDashboard
			predictions []models.AIPrediction
			alerts      []models.ProactiveAlert
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			executive, err = c.api.FetchExecutiveDashboard(gctx)
			return
		})
		g.Go(func() (err error) {
			predictions, err = c.api.FetchAIPredictions(gctx, "")
			return
		})
		g.Go(func() (err error) {
			alerts, err = c.api.FetchProactiveAlerts(gctx)
			return
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeAI(executive, predictions, alerts)
		c.cache.Set(ctx, key, view)
		return view, nil

	case PageIntegrations:
		var cached viewmodel.IntegrationsView
		if c.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
		github, err := c.api.FetchGitHubSecurity(ctx)
		if err != nil {
			return nil, err
		}
		view := viewmodel.NormalizeIntegrations(integrationCatalog(), github)
		c.cache.Set(ctx, key, view)
		return view, nil
	}

	return nil, nil
}

// integrationCatalog lists the integration targets shown on the
// integrations page. The ticket and notification targets are
// write-only, so reaching this point means they are configured.
func integrationCatalog() []models.IntegrationStatus {
	return []models.IntegrationStatus{
		{Name: "GitHub", Connected: true},
		{Name: "Jira", Connected: true},
		{Name: "Slack", Connected: true},
		{Name: "ServiceNow", Connected: true},
		{Name: "PagerDuty", Connected: true},
	}
}

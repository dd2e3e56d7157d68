package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// SetDemoMode switches the session's data source. When going live the
// upstream is told as well, best effort; entering demo mode stays
// entirely local.
func (c *Controller) SetDemoMode(ctx context.Context, enabled bool) {
	c.store.SetDemoMode(enabled)

	if !enabled {
		if err := c.api.SetDemoMode(ctx, enabled); err != nil {
			c.logger.Debug("Upstream demo mode sync failed", zap.Error(err))
		}
	}
}

// inDemoMode reads the current data source selection
func (c *Controller) inDemoMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.demoMode
}

// DeployGuardrail deploys a guardrail policy, or simulates the
// deployment in demo mode
func (c *Controller) DeployGuardrail(ctx context.Context, req models.GuardrailDeployRequest) (models.GuardrailDeployResult, error) {
	if c.inDemoMode() {
		return c.demo.GuardrailDeployResult(req), nil
	}
	return c.api.DeployGuardrail(ctx, req)
}

// GenerateRemediationCode produces remediation code for a finding
func (c *Controller) GenerateRemediationCode(ctx context.Context, req models.RemediationCodeRequest) (models.RemediationCode, error) {
	if c.inDemoMode() {
		return c.demo.RemediationCode(req), nil
	}
	return c.api.GenerateRemediationCode(ctx, req)
}

// ExecuteBatchRemediation submits a batch remediation
func (c *Controller) ExecuteBatchRemediation(ctx context.Context, req models.BatchRemediationRequest) (models.BatchRemediationResult, error) {
	if c.inDemoMode() {
		return c.demo.BatchRemediationResult(len(req.FindingIDs)), nil
	}
	return c.api.ExecuteBatchRemediation(ctx, req)
}

// RollbackRemediation reverts a completed remediation
func (c *Controller) RollbackRemediation(ctx context.Context, remediationID string) (models.BatchRemediationResult, error) {
	if c.inDemoMode() {
		return c.demo.BatchRemediationResult(1), nil
	}
	return c.api.RollbackRemediation(ctx, remediationID)
}

// ProvisionAccount submits an account provisioning request
func (c *Controller) ProvisionAccount(ctx context.Context, req models.ProvisionRequest) (models.ProvisionResult, error) {
	if c.inDemoMode() {
		return c.demo.ProvisionResult(), nil
	}
	return c.api.ProvisionAccount(ctx, req)
}

// DecommissionAccount submits an account decommission request
func (c *Controller) DecommissionAccount(ctx context.Context, req models.DecommissionRequest) (models.ProvisionResult, error) {
	if c.inDemoMode() {
		return c.demo.ProvisionResult(), nil
	}
	return c.api.DecommissionAccount(ctx, req)
}

// Chat submits an AI chat conversation
func (c *Controller) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if c.inDemoMode() {
		return c.demo.ChatResponse(req), nil
	}
	return c.api.ChatWithAI(ctx, req)
}

// CreateJiraTicket opens a Jira ticket for a finding
func (c *Controller) CreateJiraTicket(ctx context.Context, req models.IntegrationTicketRequest) (models.IntegrationResult, error) {
	if c.inDemoMode() {
		return c.demo.IntegrationResult("jira"), nil
	}
	return c.api.CreateJiraTicket(ctx, req)
}

// SendSlackNotification posts a message to a Slack channel
func (c *Controller) SendSlackNotification(ctx context.Context, req models.IntegrationNotifyRequest) (models.IntegrationResult, error) {
	if c.inDemoMode() {
		return c.demo.IntegrationResult("slack"), nil
	}
	return c.api.SendSlackNotification(ctx, req)
}

// CreateServiceNowIncident opens a ServiceNow incident
func (c *Controller) CreateServiceNowIncident(ctx context.Context, req models.IntegrationTicketRequest) (models.IntegrationResult, error) {
	if c.inDemoMode() {
		return c.demo.IntegrationResult("servicenow"), nil
	}
	return c.api.CreateServiceNowIncident(ctx, req)
}

// TriggerPagerDuty triggers a PagerDuty incident
func (c *Controller) TriggerPagerDuty(ctx context.Context, req models.IntegrationTicketRequest) (models.IntegrationResult, error) {
	if c.inDemoMode() {
		return c.demo.IntegrationResult("pagerduty"), nil
	}
	return c.api.TriggerPagerDuty(ctx, req)
}

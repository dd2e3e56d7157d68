package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/auth"
	"github.com/cloudcanvas/compliance-canvas/internal/client"
	"github.com/cloudcanvas/compliance-canvas/internal/config"
	"github.com/cloudcanvas/compliance-canvas/internal/controller"
	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// handler holds the wired components behind the HTTP routes
type handler struct {
	cfg    *config.Config
	logger *zap.Logger
	deps   Dependencies
}

func newHandler(cfg *config.Config, logger *zap.Logger, deps Dependencies) *handler {
	return &handler{cfg: cfg, logger: logger, deps: deps}
}

// registerRoutes registers all HTTP routes
func (h *handler) registerRoutes(router *gin.Engine) {
	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", h.login)
		api.POST("/auth/azure", h.loginAzure)

		authed := api.Group("")
		authed.Use(authRequired(h.deps.Auth))
		{
			authed.POST("/auth/logout", h.logout)
			authed.GET("/auth/me", h.currentUser)

			session := authed.Group("/session")
			{
				session.GET("", h.getSession)
				session.PUT("/demo-mode", h.setDemoMode)
				session.PUT("/region", h.setRegion)
				session.PUT("/sidebar", h.setSidebar)
				session.PUT("/tab", h.setActiveTab)
			}

			pages := authed.Group("/pages")
			{
				pages.GET("", h.getPages)
				pages.GET("/:page", h.getPage)
				pages.POST("/:page/refresh", h.refreshPage)
			}

			guardrails := authed.Group("/guardrails")
			{
				guardrails.POST("/deploy", h.deployGuardrail)
			}

			remediation := authed.Group("/remediation")
			{
				remediation.POST("/generate-code", h.generateRemediationCode)
				remediation.POST("/batch", h.executeBatchRemediation)
				remediation.POST("/:id/rollback", h.rollbackRemediation)
			}

			accounts := authed.Group("/accounts")
			{
				accounts.POST("/provision", h.provisionAccount)
				accounts.POST("/decommission", h.decommissionAccount)
			}

			ai := authed.Group("/ai")
			{
				ai.POST("/chat", h.chat)
			}

			integrations := authed.Group("/integrations")
			{
				integrations.POST("/jira", h.createJiraTicket)
				integrations.POST("/slack", h.sendSlackNotification)
				integrations.POST("/servicenow", h.createServiceNowIncident)
				integrations.POST("/pagerduty", h.triggerPagerDuty)
			}
		}

		rt := api.Group("/realtime")
		{
			rt.GET("/ws", h.deps.Hub.HandleWebSocket)
			rt.GET("/stats", h.realtimeStats)
		}
	}
}

// System

func (h *handler) health(c *gin.Context) {
	status := gin.H{
		"status":    "healthy",
		"app":       h.cfg.AppName,
		"timestamp": time.Now().UTC(),
	}

	if !h.deps.Store.Snapshot().DemoMode {
		if upstream, err := h.deps.API.FetchHealth(c.Request.Context()); err != nil {
			status["upstream"] = "unreachable"
		} else {
			status["upstream"] = upstream.Status
		}
	}

	c.JSON(http.StatusOK, status)
}

func (h *handler) realtimeStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"connected_clients": h.deps.Hub.ConnectedClients(),
	})
}

// Authentication

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	user, err := h.deps.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.deps.Auth.IssueToken(user)
	if err != nil {
		h.logger.Error("Failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	h.deps.Store.SetUser(user)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type azureLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *handler) loginAzure(c *gin.Context) {
	var req azureLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity token required"})
		return
	}

	session, err := h.deps.API.LoginWithAzure(c.Request.Context(), req.Token)
	if err != nil {
		h.upstreamError(c, err, "azure login failed")
		return
	}

	token, err := h.deps.Auth.IssueToken(session.User)
	if err != nil {
		h.logger.Error("Failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	h.deps.Store.SetUpstreamToken(session.Token)
	h.deps.Store.SetUser(session.User)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": session.User})
}

func (h *handler) logout(c *gin.Context) {
	// Invalidate the upstream session while its token is still held
	if !h.deps.Store.Snapshot().DemoMode {
		if err := h.deps.API.Logout(c.Request.Context()); err != nil {
			h.logger.Debug("Upstream logout failed", zap.Error(err))
		}
	}
	h.deps.Store.Logout()

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *handler) currentUser(c *gin.Context) {
	snapshot := h.deps.Store.Snapshot()
	if snapshot.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, snapshot.User)
}

// Session

func (h *handler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Store.Snapshot())
}

type demoModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *handler) setDemoMode(c *gin.Context) {
	var req demoModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled flag required"})
		return
	}

	h.deps.Controller.SetDemoMode(c.Request.Context(), *req.Enabled)
	h.deps.Hub.BroadcastModeChange(*req.Enabled)
	c.JSON(http.StatusOK, h.deps.Store.Snapshot())
}

type regionRequest struct {
	Region string `json:"region" binding:"required"`
}

func (h *handler) setRegion(c *gin.Context) {
	var req regionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region required"})
		return
	}

	h.deps.Store.SetCurrentRegion(req.Region)
	c.JSON(http.StatusOK, h.deps.Store.Snapshot())
}

type sidebarRequest struct {
	Collapsed *bool `json:"collapsed" binding:"required"`
}

func (h *handler) setSidebar(c *gin.Context) {
	var req sidebarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collapsed flag required"})
		return
	}

	h.deps.Store.SetSidebarCollapsed(*req.Collapsed)
	c.JSON(http.StatusOK, h.deps.Store.Snapshot())
}

type tabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

func (h *handler) setActiveTab(c *gin.Context) {
	var req tabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tab required"})
		return
	}

	h.deps.Store.SetActiveTab(req.Tab)
	c.JSON(http.StatusOK, h.deps.Store.Snapshot())
}

// Pages

func (h *handler) getPages(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Controller.States())
}

func (h *handler) getPage(c *gin.Context) {
	page := controller.Page(c.Param("page"))
	if !page.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page"})
		return
	}

	state := h.deps.Controller.State(page)
	if state.Phase == controller.PhaseIdle {
		state = h.deps.Controller.Load(c.Request.Context(), page)
	}
	c.JSON(http.StatusOK, state)
}

func (h *handler) refreshPage(c *gin.Context) {
	page := controller.Page(c.Param("page"))
	if !page.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page"})
		return
	}

	c.JSON(http.StatusOK, h.deps.Controller.Load(c.Request.Context(), page))
}

// Actions

func (h *handler) deployGuardrail(c *gin.Context) {
	var req models.GuardrailDeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.deps.Controller.DeployGuardrail(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "guardrail deployment failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) generateRemediationCode(c *gin.Context) {
	var req models.RemediationCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	code, err := h.deps.Controller.GenerateRemediationCode(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "code generation failed")
		return
	}
	c.JSON(http.StatusOK, code)
}

func (h *handler) executeBatchRemediation(c *gin.Context) {
	var req models.BatchRemediationRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.FindingIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "finding IDs required"})
		return
	}

	result, err := h.deps.Controller.ExecuteBatchRemediation(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "batch remediation failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) rollbackRemediation(c *gin.Context) {
	id := c.Param("id")
	result, err := h.deps.Controller.RollbackRemediation(c.Request.Context(), id)
	if err != nil {
		h.upstreamError(c, err, "rollback failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) provisionAccount(c *gin.Context) {
	var req models.ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.deps.Controller.ProvisionAccount(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "account provisioning failed")
		return
	}
	c.JSON(http.StatusAccepted, result)
}

func (h *handler) decommissionAccount(c *gin.Context) {
	var req models.DecommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account ID required"})
		return
	}

	result, err := h.deps.Controller.DecommissionAccount(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "account decommission failed")
		return
	}
	c.JSON(http.StatusAccepted, result)
}

func (h *handler) chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages required"})
		return
	}

	resp, err := h.deps.Controller.Chat(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "chat request failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) createJiraTicket(c *gin.Context) {
	var req models.IntegrationTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.deps.Controller.CreateJiraTicket(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "jira ticket creation failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) sendSlackNotification(c *gin.Context) {
	var req models.IntegrationNotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.deps.Controller.SendSlackNotification(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "slack notification failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) createServiceNowIncident(c *gin.Context) {
	var req models.IntegrationTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.deps.Controller.CreateServiceNowIncident(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "servicenow incident creation failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) triggerPagerDuty(c *gin.Context) {
	var req models.IntegrationTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.deps.Controller.TriggerPagerDuty(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(c, err, "pagerduty trigger failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// upstreamError maps an upstream client error to an HTTP response.
// Upstream auth failures surface as 401 so the SPA can reauthenticate.
func (h *handler) upstreamError(c *gin.Context, err error, message string) {
	if errors.Is(err, client.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "upstream session expired"})
		return
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	h.logger.Warn("Upstream request failed", zap.String("context", message), zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": message})
}

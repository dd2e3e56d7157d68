// Package server exposes the canvas over HTTP: session state, page
// views, action pass-throughs and the realtime WebSocket feed.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cloudcanvas/compliance-canvas/internal/auth"
	"github.com/cloudcanvas/compliance-canvas/internal/client"
	"github.com/cloudcanvas/compliance-canvas/internal/config"
	"github.com/cloudcanvas/compliance-canvas/internal/controller"
	"github.com/cloudcanvas/compliance-canvas/internal/realtime"
	"github.com/cloudcanvas/compliance-canvas/internal/store"
)

// Dependencies bundles the components the HTTP layer serves
type Dependencies struct {
	Controller *controller.Controller
	Store      *store.Store
	Auth       *auth.Manager
	Hub        *realtime.Hub
	API        *client.Client
}

// Server is the canvas HTTP server
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	router *gin.Engine
	http   *http.Server
}

// New creates the HTTP server with all routes registered
func New(cfg *config.Config, logger *zap.Logger, deps Dependencies) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	if cfg.Server.EnableCORS {
		router.Use(corsMiddleware())
	}

	h := newHandler(cfg, logger, deps)
	h.registerRoutes(router)

	return &Server{
		cfg:    cfg,
		logger: logger,
		router: router,
		http: &http.Server{
			Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:        router,
			ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.Int("port", s.cfg.Server.Port))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.http.Shutdown(ctx)
}

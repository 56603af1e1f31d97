package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/config"
)

type RegisterHandlersFn func(router *gin.RouterGroup)

// Server wraps the gin engine with lifecycle management.
type Server struct {
	cfg  *config.Configuration
	http *http.Server
}

// NewServer builds the engine, applies the middleware stack and hands the
// /api/v1 group to the register callback.
func NewServer(cfg *config.Configuration, registerHandlers RegisterHandlersFn) *Server {
	if cfg.Server.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RequestID())
	router.Use(ginzap.Ginzap(zap.L().Named("http"), time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(zap.L().Named("http"), true))

	api := router.Group("/api/v1")
	registerHandlers(api)

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: router,
		},
	}
}

// Start serves until the listener fails or Stop is called. A clean shutdown
// returns nil.
func (s *Server) Start() error {
	zap.S().Named("server").Infow("starting http server", "addr", s.http.Addr, "mode", s.cfg.Server.Mode)

	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Info("shutting down http server")
	return s.http.Shutdown(ctx)
}

// Package server provides the HTTP server for mealbridge.
//
// The server uses the Gin web framework. All API routes live under /api/v1;
// the route set itself is registered by a callback so the server stays
// ignorant of the handler layer.
//
// # Middleware Stack
//
//	┌─────────────────────────────────────────────────────────┐
//	│  RequestID  (X-Request-ID, generated when absent)       │
//	│  Logger     (ginzap request/response logging)           │
//	│  Recovery   (panic recovery with zap stack traces)      │
//	└─────────────────────────────────────────────────────────┘
//
// # Lifecycle
//
//	srv := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    handler.RegisterRoutes(router)
//	})
//
//	go srv.Start()       // blocks until shutdown
//	...
//	srv.Stop(ctx)        // graceful, drains in-flight requests
//
// Server.Mode = "prod" switches gin to release mode; "dev" keeps debug
// output.
package server

package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/api-template/internal/config"
	"github.com/JaimeStill/api-template/internal/routes"
	"github.com/JaimeStill/api-template/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	runtime *Runtime
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	runtime := NewRuntime(cfg)

	routeSys := routes.New(runtime.Logger)
	if err := registerRoutes(routeSys, runtime, cfg); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	middlewareSys := buildMiddleware(runtime, cfg)
	handler := middlewareSys.Apply(routeSys.Build())

	httpSys := server.New(&cfg.Server, handler, runtime.Logger)

	runtime.Logger.Info(
		"server initialized",
		"addr", httpSys.Addr(),
		"health", "/health",
		"docs", "/docs",
		"spec", SpecPath,
	)

	return &Server{
		runtime: runtime,
		http:    httpSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Server) Start() error {
	if err := s.http.Start(s.runtime.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	go func() {
		s.runtime.Lifecycle.WaitForStartup()
		s.runtime.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within the timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.runtime.Logger.Info("initiating shutdown")
	return s.runtime.Lifecycle.Shutdown(timeout)
}

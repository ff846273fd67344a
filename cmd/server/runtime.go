package main

import (
	"log/slog"

	"github.com/JaimeStill/api-template/internal/config"
	"github.com/JaimeStill/api-template/internal/lifecycle"
	"github.com/JaimeStill/api-template/pkg/logging"
)

// Runtime holds the cross-cutting infrastructure shared by all handlers.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

// NewRuntime creates the runtime infrastructure from configuration.
func NewRuntime(cfg *config.Config) *Runtime {
	return &Runtime{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
	}
}

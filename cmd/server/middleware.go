package main

import (
	"github.com/JaimeStill/api-template/internal/config"
	"github.com/JaimeStill/api-template/pkg/middleware"
)

// buildMiddleware creates and configures the middleware stack.
func buildMiddleware(runtime *Runtime, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(runtime.Logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.MaxBodySize(cfg.Server.MaxBodySizeBytes()))
	return middlewareSys
}

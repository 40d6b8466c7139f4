package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"ObserveMe/config"
	"ObserveMe/internal/handler"
	"ObserveMe/internal/middleware"
)

func Register(h *server.Hertz, hdl *handler.Handler) {
	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.TelemetryMiddleware())

	if config.Cfg.RateLimitEnabled {
		h.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			RPS: config.Cfg.RateLimitRPS,
		}))
	}

	h.GET("/", hdl.Hello)
	h.GET("/metrics", hdl.Metrics)
	h.GET("/error", hdl.Error)
	h.GET("/healthz", hdl.Health)
}

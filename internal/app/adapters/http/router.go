package http

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tgguard/internal/app/adapters/http/handlers"
	"tgguard/internal/app/infrastructure/env"
	"tgguard/internal/app/infrastructure/settings"
	"tgguard/pkg/logger"
)

// Router is the ops-only HTTP surface: health, metrics, pprof and a small
// status report. The bot itself never serves user traffic over HTTP.
type Router struct {
	router   *gin.Engine
	handlers *handlers.Handlers

	log  logger.Logger
	addr string
}

func NewRouter(log logger.Logger, e *env.Environment, manager *settings.Manager) *Router {
	r := &Router{
		router:   gin.Default(),
		handlers: handlers.New(log, e, manager),
		log:      log,
		addr:     e.ListenAddr,
	}

	r.router.GET("/healthz", r.handlers.HealthHandler)

	ops := r.router.Group("/")
	if e.AuthToken != "" {
		ops.Use(gin.BasicAuth(gin.Accounts{
			"admin": e.AuthToken,
		}))
	}
	pprof.Register(ops)
	ops.GET("/metrics", gin.WrapH(promhttp.Handler()))
	ops.GET("/status", r.handlers.StatusHandler)

	return r
}

func (r *Router) Run() error {
	return r.router.Run(r.addr)
}

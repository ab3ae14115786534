package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/BerylCAtieno/edupath-mentor/internal/a2a"
	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
	"github.com/BerylCAtieno/edupath-mentor/internal/middleware"
	"github.com/BerylCAtieno/edupath-mentor/internal/observability"
	"github.com/BerylCAtieno/edupath-mentor/internal/web"
)

type RouterConfig struct {
	Log        *logger.Logger
	WebHandler *web.Handler
	A2AHandler *a2a.A2AHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		otelgin.Middleware(observability.ServiceName),
		middleware.AttachTraceContext(),
		middleware.RequestLogger(cfg.Log),
	)
	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Browser UI
	cfg.WebHandler.Register(router)

	// A2A agent, open to cross-origin callers
	agent := router.Group("/")
	agent.Use(middleware.CORS())
	agent.OPTIONS(a2a.MentorPath, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	cfg.A2AHandler.Register(agent)

	return router
}

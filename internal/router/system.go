package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-blog/internal/handler"
	"github.com/deppfellow/go-blog/internal/middleware"
)

// registerSystemRoutes registers the endpoints that are not part of the API:
// health, docs, their static assets and Prometheus metrics.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(mw.Metrics.Handler()))

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}

// Package router builds the Echo instance: the middleware chain, the
// global error handler and every route.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-blog/internal/handler"
	"github.com/deppfellow/go-blog/internal/middleware"
	"github.com/deppfellow/go-blog/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	router.IPExtractor = echo.ExtractIPDirect()

	// Order matters: tracing must wrap the context enhancer so trace ids reach
	// the logger, and the logger must exist before anything logs.
	router.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Metrics.Collect(),
		mw.RateLimit.Limit(),
		mw.Global.Recover(),
	)

	registerSystemRoutes(router, h, mw)
	registerUserRoutes(router, h)

	return router
}

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-blog/internal/config"
	"github.com/deppfellow/go-blog/internal/errs"
	"github.com/deppfellow/go-blog/internal/server"
)

func newTestServer(rateLimit float64) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) (*echo.Echo, *Middlewares) {
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Metrics.Collect(),
		mw.RateLimit.Limit(),
	)
	return e, mw
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func serve(e *echo.Echo, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	e, _ := newTestEcho(newTestServer(0))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := serve(e, http.MethodGet, "/ping", nil)
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	rec = serve(e, http.MethodGet, "/ping", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestEnhanceContext_LoggerOnRequestContext(t *testing.T) {
	e, _ := newTestEcho(newTestServer(0))
	e.GET("/ping", func(c echo.Context) error {
		fromEcho := GetLogger(c)
		fromCtx := zerolog.Ctx(c.Request().Context())
		if fromEcho != fromCtx {
			return errors.New("loggers differ")
		}
		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodGet, "/ping", nil).Code)
}

func TestGlobalErrorHandler_HTTPError(t *testing.T) {
	e, _ := newTestEcho(newTestServer(0))
	e.GET("/users/:id", func(c echo.Context) error {
		return errs.NewInvalidIdentifierError(c.Param("id"))
	})

	rec := serve(e, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, errs.CodeInvalidIdentifier, body.Code)
	assert.True(t, body.Override)
}

func TestGlobalErrorHandler_RouteNotFound(t *testing.T) {
	e, _ := newTestEcho(newTestServer(0))

	rec := serve(e, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestGlobalErrorHandler_MethodNotAllowed(t *testing.T) {
	e, _ := newTestEcho(newTestServer(0))
	e.GET("/users", func(c echo.Context) error { return nil })

	rec := serve(e, http.MethodDelete, "/users", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, rec).Code)
}

func TestGlobalErrorHandler_DatabaseError(t *testing.T) {
	e, _ := newTestEcho(newTestServer(0))
	e.POST("/users", func(c echo.Context) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{
			Code:           "23505",
			TableName:      "users",
			ConstraintName: "users_email_key",
		})
	})

	rec := serve(e, http.MethodPost, "/users", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decodeError(t, rec).Code)
}

func TestGlobalErrorHandler_UnknownError(t *testing.T) {
	e, _ := newTestEcho(newTestServer(0))
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	rec := serve(e, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRateLimit(t *testing.T) {
	e, _ := newTestEcho(newTestServer(1))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodGet, "/ping", nil).Code)

	rec := serve(e, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, rec).Code)
}

func TestRateLimit_IgnoresForwardedHeaders(t *testing.T) {
	e, _ := newTestEcho(newTestServer(1))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	limited := 0
	for i := 0; i < 20; i++ {
		header := http.Header{}
		header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("203.0.113.%d", i+1))
		header.Set(echo.HeaderXRealIP, fmt.Sprintf("198.51.100.%d", i+1))

		if serve(e, http.MethodGet, "/ping", header).Code == http.StatusTooManyRequests {
			limited++
		}
	}

	assert.GreaterOrEqual(t, limited, 18)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.1")

	ip, err := ClientIP(echo.New().NewContext(req, httptest.NewRecorder()))
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", ip)
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	e, _ := newTestEcho(newTestServer(0))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusNoContent, serve(e, http.MethodGet, "/ping", nil).Code)
	}
}

func TestMetrics(t *testing.T) {
	e, mw := newTestEcho(newTestServer(0))
	e.GET("/users/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", echo.WrapHandler(mw.Metrics.Handler()))

	serve(e, http.MethodGet, "/users/1", nil)
	serve(e, http.MethodGet, "/users/2", nil)

	rec := serve(e, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var found bool
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if strings.HasPrefix(line, "goblog_http_requests_total") &&
			strings.Contains(line, `route="/users/:id"`) &&
			strings.Contains(line, `status="200"`) {
			found = true
			assert.True(t, strings.HasSuffix(line, " 2"), line)
		}
	}
	assert.True(t, found, rec.Body.String())
}

// Package middleware holds the Echo middleware shared by every route:
// request IDs, request-scoped logging, New Relic tracing, Prometheus
// metrics, rate limiting, CORS, secure headers, panic recovery and the
// global error handler.
package middleware

// Package server provides the HTTP server rxkit programs use to accept
// external events: a Gin engine mounted on a ServeMux and served with h2c so
// HTTP/1.1 and cleartext HTTP/2 share one port.
//
// # Middleware
//
// Applied to every request at the handler level (server/middleware):
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: X-Request-Id generation and propagation
//   - RequestLogger: request logging with duration tracking
//
// # Endpoints
//
//   - GET /healthz: aggregated observability.HealthChecker report
package server

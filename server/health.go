package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/rxkit/observability"
)

// RegisterHealth installs GET /healthz, which reports the aggregated health
// of checkers. A down service answers 503.
func (s *Server) RegisterHealth(service, version string, checkers ...observability.HealthChecker) {
	s.engine.GET("/healthz", func(c *gin.Context) {
		report := observability.CheckHealth(c.Request.Context(), service, version, checkers...)
		status := http.StatusOK
		if report.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, report)
	})
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UpstreamReporter exposes the circuit state of the upstream APIs
type UpstreamReporter interface {
	UpstreamStates() map[string]string
}

// HealthCheck reports liveness. Upstreams with an open circuit mark the service degraded;
// it keeps serving fallback data meanwhile.
func HealthCheck(upstreams UpstreamReporter) echo.HandlerFunc {
	return func(e echo.Context) error {
		status := "healthy"
		states := map[string]string{}
		if upstreams != nil {
			states = upstreams.UpstreamStates()
		}
		for _, s := range states {
			if s != "closed" {
				status = "degraded"
			}
		}
		return e.JSON(http.StatusOK, echo.Map{
			"status":    status,
			"service":   "car-blog-api",
			"upstreams": states,
		})
	}
}

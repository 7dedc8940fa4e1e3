package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health answers the liveness probe.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

// SearchResults writes a 200 with the assembled search payload.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}

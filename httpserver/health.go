package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive and the store answers
// @Tags health
// @Success 200 {object} map[string]string
// @Failure 503 {object} APIResponse
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	if s.StorePing != nil {
		if err := s.StorePing(c.Request().Context()); err != nil {
			s.Logger.Warnw("store ping failed", "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "store unavailable")
		}
	}
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "OK",
	})
}

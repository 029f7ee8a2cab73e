package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterReportRoutes(g *echo.Group) {
	g.GET("/contacts-groups", s.handleContactsPerGroup)
}

// handleContactsPerGroup godoc
// @Summary Contacts per Group
// @Description Every group with its contact count, largest first
// @Tags report
// @Produce json
// @Success 200 {array} report.Entry
// @Router /api/report/contacts-groups [get]
func (s *Server) handleContactsPerGroup(c echo.Context) error {
	entries, err := s.ReportService.ContactsPerGroup(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, entries)
}

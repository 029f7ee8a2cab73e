package httpserver

import (
	"net/http"

	"contactbook/group"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterGroupRoutes(g *echo.Group) {
	g.GET("", s.handleListGroups)
	g.POST("", s.handleAddGroup)
	g.GET("/:id", s.handleGetGroup)
	g.PATCH("/:id", s.handleRenameGroup)
	g.DELETE("/:id", s.handleDeleteGroup)

	g.GET("/:id/contacts", s.handleListMembers)
	g.POST("/:id/contacts", s.handleAddMember)
	g.DELETE("/:id/contacts/:contactId", s.handleRemoveMember)
}

// handleAddGroup godoc
// @Summary Create Group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body GroupRequest true "Group Data"
// @Success 201 {object} group.Group
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /api/groups [post]
func (s *Server) handleAddGroup(c echo.Context) error {
	var req GroupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := s.GroupService.AddGroup(c.Request().Context(), req.ToGroup())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, created)
}

func (s *Server) handleListGroups(c echo.Context) error {
	groups, err := s.GroupService.ListGroups(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, groups)
}

func (s *Server) handleGetGroup(c echo.Context) error {
	id, err := pathID(c, "id", group.ErrInvalidID)
	if err != nil {
		return err
	}

	found, err := s.GroupService.GetGroup(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, found)
}

// handleRenameGroup godoc
// @Summary Rename Group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param group body GroupRequest true "New name"
// @Success 200 {object} group.Group
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /api/groups/{id} [patch]
func (s *Server) handleRenameGroup(c echo.Context) error {
	id, err := pathID(c, "id", group.ErrInvalidID)
	if err != nil {
		return err
	}

	var req GroupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	renamed, err := s.GroupService.RenameGroup(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, renamed)
}

func (s *Server) handleDeleteGroup(c echo.Context) error {
	id, err := pathID(c, "id", group.ErrInvalidID)
	if err != nil {
		return err
	}

	if err := s.GroupService.DeleteGroup(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// handleListMembers godoc
// @Summary List Group Contacts
// @Description Contacts belonging to a group, ordered by name
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} contact.Contact
// @Failure 404 {object} APIResponse
// @Router /api/groups/{id}/contacts [get]
func (s *Server) handleListMembers(c echo.Context) error {
	id, err := pathID(c, "id", group.ErrInvalidID)
	if err != nil {
		return err
	}

	members, err := s.GroupService.ListMembers(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, members)
}

func (s *Server) handleAddMember(c echo.Context) error {
	id, err := pathID(c, "id", group.ErrInvalidID)
	if err != nil {
		return err
	}

	var req AddMemberRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	link, err := s.GroupService.AddMember(c.Request().Context(), group.ContactGroup{
		ContactID: req.ContactID,
		GroupID:   id,
	})
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, link)
}

func (s *Server) handleRemoveMember(c echo.Context) error {
	id, err := pathID(c, "id", group.ErrInvalidID)
	if err != nil {
		return err
	}
	contactID, err := pathID(c, "contactId", group.ErrInvalidContactID)
	if err != nil {
		return err
	}

	err = s.GroupService.RemoveMember(c.Request().Context(), group.ContactGroup{
		ContactID: contactID,
		GroupID:   id,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

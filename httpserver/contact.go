package httpserver

import (
	"net/http"

	"contactbook/contact"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterContactRoutes(g *echo.Group) {
	g.GET("", s.handleListContacts)
	g.POST("", s.handleAddContact)
	g.GET("/:id", s.handleGetContact)
	g.PATCH("/:id", s.handleUpdateContact)
	g.DELETE("/:id", s.handleDeleteContact)
}

// handleAddContact godoc
// @Summary Create Contact
// @Description Add a new contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body AddContactRequest true "Contact Data"
// @Success 201 {object} contact.Contact
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /api/contacts [post]
func (s *Server) handleAddContact(c echo.Context) error {
	var req AddContactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := s.ContactService.AddContact(c.Request().Context(), req.ToContact())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, created)
}

// handleListContacts godoc
// @Summary List Contacts
// @Description List contacts ordered by name
// @Tags contacts
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {array} contact.Contact
// @Failure 400 {object} APIResponse
// @Router /api/contacts [get]
func (s *Server) handleListContacts(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	contacts, err := s.ContactService.ListContacts(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, contacts)
}

func (s *Server) handleGetContact(c echo.Context) error {
	id, err := pathID(c, "id", contact.ErrInvalidID)
	if err != nil {
		return err
	}

	found, err := s.ContactService.GetContact(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, found)
}

// handleUpdateContact godoc
// @Summary Update Contact
// @Description Change the name and/or phone of a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param contact body UpdateContactRequest true "Fields to change"
// @Success 200 {object} contact.Contact
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /api/contacts/{id} [patch]
func (s *Server) handleUpdateContact(c echo.Context) error {
	id, err := pathID(c, "id", contact.ErrInvalidID)
	if err != nil {
		return err
	}

	var req UpdateContactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := s.ContactService.UpdateContact(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, updated)
}

func (s *Server) handleDeleteContact(c echo.Context) error {
	id, err := pathID(c, "id", contact.ErrInvalidID)
	if err != nil {
		return err
	}

	if err := s.ContactService.DeleteContact(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

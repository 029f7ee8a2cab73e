package httpserver

import (
	"net/http"

	"contactbook/contact"

	"github.com/labstack/echo/v4"
)

var errMalformedBody = echo.NewHTTPError(http.StatusBadRequest, "malformed request body")

// bind decodes the request body and runs the DTO validation tags.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errMalformedBody
	}
	return c.Validate(req)
}

// pathID reads a positive integer path parameter, returning invalid when
// it is missing or not an integer.
func pathID(c echo.Context, name string, invalid error) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil {
		return 0, invalid
	}
	if id <= 0 {
		return 0, invalid
	}
	return id, nil
}

// pageParams reads limit and offset from the query string. Absent values
// fall back to the defaults. Empty, repeated or malformed ones are rejected.
func pageParams(c echo.Context) (contact.Page, error) {
	query := c.QueryParams()
	for _, name := range []string{"limit", "offset"} {
		if values, ok := query[name]; ok && (len(values) != 1 || values[0] == "") {
			return contact.Page{}, contact.ErrInvalidPage
		}
	}

	p := contact.DefaultPage()
	err := echo.QueryParamsBinder(c).
		Int("limit", &p.Limit).
		Int("offset", &p.Offset).
		BindError()
	if err != nil {
		return contact.Page{}, contact.ErrInvalidPage
	}
	return p, p.Validate()
}

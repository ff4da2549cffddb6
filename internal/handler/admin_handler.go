package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "galleria/internal/errors"
	"galleria/internal/service"
)

// AdminHandler handles admin-only endpoints. Role enforcement lives in
// the auth guard; by the time a request lands here it carries an admin
// session.
type AdminHandler struct {
	userService service.UserService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers returns every user with their picture count, sorted by id.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListWithPictureCounts(c.Request().Context())
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"galleria/internal/auth"
	errs "galleria/internal/errors"
	"galleria/internal/service"
)

// PictureHandler handles catalog picture endpoints.
type PictureHandler struct {
	pictureService service.PictureService
}

// NewPictureHandler creates a new picture handler.
func NewPictureHandler(pictureService service.PictureService) *PictureHandler {
	return &PictureHandler{pictureService: pictureService}
}

// PictureRequest carries the client-settable picture fields for create
// and update. Ownership is taken from the session, never the payload.
type PictureRequest struct {
	Title       string          `json:"title" validate:"required"`
	Artist      string          `json:"artist"`
	ArtistID    *uuid.UUID      `json:"artistId"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl" validate:"required"`
	Style       string          `json:"style"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
}

func (r *PictureRequest) toInput() *service.PictureInput {
	return &service.PictureInput{
		Title:       r.Title,
		Artist:      r.Artist,
		ArtistID:    r.ArtistID,
		Year:        r.Year,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Style:       r.Style,
		Price:       r.Price,
		Size:        r.Size,
	}
}

// List returns all pictures with artist and owner enrichment.
func (h *PictureHandler) List(c echo.Context) error {
	pictures, err := h.pictureService.List(c.Request().Context())
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pictures)
}

// Get returns one picture by id, enriched.
func (h *PictureHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrorResponse{
			Error: errs.ErrPictureNotFound.Error(), Code: "PICTURE_NOT_FOUND",
		})
	}

	picture, err := h.pictureService.Get(c.Request().Context(), id)
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, picture)
}

// Create stores a new picture owned by the session user.
func (h *PictureHandler) Create(c echo.Context) error {
	var req PictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid request body", Code: "BAD_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "title and imageUrl are required", Code: "VALIDATION_ERROR",
		})
	}

	sess, _ := auth.FromContext(c)
	picture, err := h.pictureService.Create(c.Request().Context(), sess, req.toInput())
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, picture)
}

// Update replaces a picture's fields. Owner or admin only.
func (h *PictureHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrorResponse{
			Error: errs.ErrPictureNotFound.Error(), Code: "PICTURE_NOT_FOUND",
		})
	}

	var req PictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid request body", Code: "BAD_REQUEST",
		})
	}

	// No payload validation here: the service decides ownership first,
	// so a non-owner is refused before field checks can produce a 400.
	sess, _ := auth.FromContext(c)
	picture, err := h.pictureService.Update(c.Request().Context(), sess, id, req.toInput())
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, picture)
}

// Delete removes a picture. Owner or admin only.
func (h *PictureHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrorResponse{
			Error: errs.ErrPictureNotFound.Error(), Code: "PICTURE_NOT_FOUND",
		})
	}

	sess, _ := auth.FromContext(c)
	if err := h.pictureService.Delete(c.Request().Context(), sess, id); err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "picture deleted successfully",
	})
}

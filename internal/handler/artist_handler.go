package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "galleria/internal/errors"
	"galleria/internal/service"
)

// ArtistHandler handles read-only artist endpoints.
type ArtistHandler struct {
	artistService  service.ArtistService
	pictureService service.PictureService
}

// NewArtistHandler creates a new artist handler.
func NewArtistHandler(artistService service.ArtistService, pictureService service.PictureService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService, pictureService: pictureService}
}

// List returns all artists sorted by name.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.artistService.List(c.Request().Context())
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, artists)
}

// Get returns one artist by id.
func (h *ArtistHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrorResponse{
			Error: errs.ErrArtistNotFound.Error(), Code: "ARTIST_NOT_FOUND",
		})
	}

	artist, err := h.artistService.Get(c.Request().Context(), id)
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, artist)
}

// Pictures returns the pictures referencing an artist, enriched. An
// unknown artist yields an empty list, matching the catalog's read
// semantics for this route.
func (h *ArtistHandler) Pictures(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrorResponse{
			Error: errs.ErrArtistNotFound.Error(), Code: "ARTIST_NOT_FOUND",
		})
	}

	pictures, err := h.pictureService.ListByArtist(c.Request().Context(), id)
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pictures)
}

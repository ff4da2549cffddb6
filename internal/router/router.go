package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"galleria/internal/auth"
	"galleria/internal/config"
	errs "galleria/internal/errors"
	"galleria/internal/handler"
	"galleria/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	guard *auth.Guard,
	authHandler *handler.AuthHandler,
	pictureHandler *handler.PictureHandler,
	artistHandler *handler.ArtistHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(guard.Resolve)

	// Non-API paths fall back to the SPA entry point.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.StaticDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api")
		},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/session", authHandler.Session)

	// Admin routes
	api.GET("/admin/users", adminHandler.ListUsers, guard.RequireRole(model.RoleAdmin))

	// Picture routes. Reads are public; mutations require a session and
	// go through the owner-or-admin check inside the service.
	api.GET("/pictures", pictureHandler.List)
	api.POST("/pictures", pictureHandler.Create, guard.RequireSession)
	api.GET("/pictures/:id", pictureHandler.Get)
	api.PUT("/pictures/:id", pictureHandler.Update, guard.RequireSession)
	api.DELETE("/pictures/:id", pictureHandler.Delete, guard.RequireSession)

	// Artist routes (public, read-only)
	api.GET("/artists", artistHandler.List)
	api.GET("/artists/:id", artistHandler.Get)
	api.GET("/artists/:id/pictures", artistHandler.Pictures)

	// Unmatched API paths get a JSON 404 instead of the SPA fallback.
	api.Any("/*", apiNotFound)
	api.Any("", apiNotFound)
}

func apiNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{
		"error": "API route not found",
		"path":  c.Request().URL.Path,
	})
}

// errorHandler renders every error as the {error, code} JSON shape and
// guarantees nothing internal leaks: unrecognized errors become a
// generic 500.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := errs.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch m := he.Message.(type) {
		case errs.ErrorResponse:
			body = m
		case string:
			body = errs.ErrorResponse{Error: m}
		default:
			body = errs.ErrorResponse{Error: http.StatusText(status)}
		}
	} else {
		mapped := errs.MapErrorToHTTP(err)
		status = mapped.StatusCode
		body = mapped.ToErrorResponse()
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	if err := c.JSON(status, body); err != nil {
		c.Logger().Error(err)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

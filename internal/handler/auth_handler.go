package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"galleria/internal/auth"
	errs "galleria/internal/errors"
	"galleria/internal/model"
	"galleria/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService  service.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. secureCookie marks the
// session cookie Secure, which only makes sense behind TLS.
func NewAuthHandler(authService service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the identity returned on register and login.
type AuthResponse struct {
	ID       uuid.UUID  `json:"id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// SessionResponse describes the current session. Never an error: an
// anonymous request simply gets isAuthenticated=false.
type SessionResponse struct {
	IsAuthenticated bool       `json:"isAuthenticated"`
	UserID          *uuid.UUID `json:"userId,omitempty"`
	Username        string     `json:"username,omitempty"`
	Role            model.Role `json:"role,omitempty"`
}

// Register creates an account and logs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid request body", Code: "BAD_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "username and password are required", Code: "VALIDATION_ERROR",
		})
	}

	user, sess, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	h.setSessionCookie(c, sess)
	return c.JSON(http.StatusCreated, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

// Login authenticates a user and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "invalid request body", Code: "BAD_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "username and password are required", Code: "VALIDATION_ERROR",
		})
	}

	user, sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		he := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	h.setSessionCookie(c, sess)
	return c.JSON(http.StatusOK, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

// Logout destroys the current session. Succeeds even without one.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
		token = cookie.Value
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "failed to log out", Code: "LOGOUT_FAILED",
		})
	}

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Session reports the authentication state of the caller.
func (h *AuthHandler) Session(c echo.Context) error {
	sess, ok := auth.FromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, SessionResponse{IsAuthenticated: false})
	}
	userID := sess.UserID
	return c.JSON(http.StatusOK, SessionResponse{
		IsAuthenticated: true,
		UserID:          &userID,
		Username:        sess.Username,
		Role:            sess.Role,
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sess *auth.Session) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(auth.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

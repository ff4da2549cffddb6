package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	errs "galleria/internal/errors"
	"galleria/internal/model"
)

const sessionContextKey = "auth.session"

// Guard is the single authorization gate for the API. Every protected
// route goes through it; handlers never re-check roles or ownership on
// their own, so the create/update/delete paths cannot drift apart.
type Guard struct {
	store SessionStore
}

// NewGuard creates a guard over a session store.
func NewGuard(store SessionStore) *Guard {
	return &Guard{store: store}
}

// Resolve attaches the session to the request context when a valid
// token cookie is present. It never rejects: anonymous requests pass
// through without a session.
func (g *Guard) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookie)
		if err == nil && cookie.Value != "" {
			if sess, err := g.store.Get(c.Request().Context(), cookie.Value); err == nil {
				c.Set(sessionContextKey, sess)
			}
		}
		return next(c)
	}
}

// RequireSession rejects requests that carry no valid session.
func (g *Guard) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := FromContext(c); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrorResponse{
				Error: errs.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		}
		return next(c)
	}
}

// RequireRole rejects sessions whose role differs from the required one.
// Implies RequireSession.
func (g *Guard) RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := FromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrorResponse{
					Error: errs.ErrUnauthorized.Error(),
					Code:  "UNAUTHORIZED",
				})
			}
			if sess.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, errs.ErrorResponse{
					Error: errs.ErrForbidden.Error(),
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// CanModify reports whether the session may mutate a resource owned by
// ownerID: admins may touch anything, everyone else only their own.
func CanModify(sess *Session, ownerID uuid.UUID) bool {
	if sess == nil {
		return false
	}
	return sess.Role == model.RoleAdmin || sess.UserID == ownerID
}

// FromContext returns the session attached by Resolve, if any.
func FromContext(c echo.Context) (*Session, bool) {
	sess, ok := c.Get(sessionContextKey).(*Session)
	return sess, ok && sess != nil
}

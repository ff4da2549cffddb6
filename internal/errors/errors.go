package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required input field is empty.
	ErrMissingFields = errors.New("required fields are missing")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned for a bad username or password.
	// The same error covers both cases so responses never reveal which
	// part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized is returned when no valid session is present.
	ErrUnauthorized = errors.New("access denied, please log in")
	// ErrForbidden is returned on a role or ownership mismatch.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrPictureNotFound is returned when a picture does not exist.
	ErrPictureNotFound = errors.New("picture not found")
	// ErrArtistNotFound is returned when an artist does not exist.
	ErrArtistNotFound = errors.New("artist not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything not in
// the taxonomy becomes a generic 500 with no internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrPictureNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PICTURE_NOT_FOUND")
	case errors.Is(err, ErrArtistNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ARTIST_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

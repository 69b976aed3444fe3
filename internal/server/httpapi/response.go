package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/logging"
)

const serverErrorMessage = "Server error"

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage sends {"message": msg}, the shape of every error response.
func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{common.MessageKey: msg})
}

// statusFor maps service errors to HTTP status codes. ok is false for
// errors that must not be shown to the client.
func statusFor(err error) (code int, ok bool) {
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrDuplicateEmail),
		errors.Is(err, common.ErrAlreadyEnrolled):
		return http.StatusBadRequest, true
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrMissingToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, true
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusForbidden, true
	case errors.Is(err, common.ErrUserNotFound):
		return http.StatusNotFound, true
	default:
		return http.StatusInternalServerError, false
	}
}

// writeServiceError converts err into a JSON error response. Unexpected
// errors are logged and reported as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	code, ok := statusFor(err)
	if !ok {
		logger.Error(r.Context(), "request failed",
			"request_id", chimid.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
		writeMessage(w, code, serverErrorMessage)
		return
	}
	writeMessage(w, code, capitalize(err.Error()))
}

// capitalize upper-cases the first ASCII letter so sentinel texts read as
// sentences in the UI ("user not found" -> "User not found").
func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

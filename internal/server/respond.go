package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/career-compass/internal/profile"
	"go.uber.org/zap"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, message string, details ...string) {
	writeJSON(w, logger, status, errorBody{Error: message, Details: details})
}

// writeFailure maps err to a status. Server-side failures are logged with a stack trace and
// their message is not exposed to the client.
func writeFailure(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		wrapped := goerrors.Wrap(err, 1)
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
			zap.String("stack", string(wrapped.Stack())),
		)
		writeError(w, logger, status, "internal server error")
		return
	}

	var malformed *profile.MalformedProfileError
	if errors.As(err, &malformed) {
		details := make([]string, 0, len(malformed.Warnings))
		for _, warn := range malformed.Warnings {
			details = append(details, fmt.Sprintf("%s: %s", warn.Field, warn.Message))
		}
		writeError(w, logger, status, "malformed profile", details...)
		return
	}
	writeError(w, logger, status, err.Error())
}

// writeValidationFailure reports struct tag violations as a 400.
func writeValidationFailure(w http.ResponseWriter, logger *zap.Logger, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, logger, http.StatusBadRequest, "validation error: invalid request")
		return
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	writeError(w, logger, http.StatusBadRequest, "validation error", details...)
}

// decodeJSON reads a JSON body of at most maxBodyBytes, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

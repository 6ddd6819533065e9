// Package respond writes JSON bodies and maps domain errors onto HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
)

// LoginPath is where clients are sent after an AccessDenied answer.
const LoginPath = "/api/v1/session"

type errorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error answers with the status of err's code. Errors without a code are
// logged and hidden behind a generic 500.
func Error(w http.ResponseWriter, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		slog.Error("request failed", "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "internal_error",
			Message: "internal error",
		})

		return
	}

	resp := errorResponse{
		Error:   string(e.Code),
		Message: e.Message,
		Field:   e.Field,
	}

	if e.Code == apperr.CodeAccessDenied {
		resp.Redirect = LoginPath
	}

	JSON(w, e.Code.HTTPStatus(), resp)
}

// Decode reads a JSON request body into v. Malformed bodies are validation errors.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("body", "invalid request body: "+err.Error())
	}

	return nil
}

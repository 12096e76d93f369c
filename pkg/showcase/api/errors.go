package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/openshowcase/showcase/pkg/showcase"
)

// ErrResponse is the JSON error envelope. Fields carries field-level detail
// for validation failures.
type ErrResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Fields  []showcase.FieldError `json:"fields,omitempty"`
}

func renderError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrResponse{Code: code, Message: message})
}

func renderValidationError(w http.ResponseWriter, r *http.Request, verr *showcase.ValidationError) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrResponse{
		Code:    "validation_failed",
		Message: verr.Error(),
		Fields:  verr.Fields,
	})
}

// renderServiceError maps the service error taxonomy onto status codes.
// Repository faults are surfaced as server faults with the underlying cause.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *showcase.ValidationError
	switch {
	case errors.Is(err, showcase.ErrContentNotFound):
		renderError(w, r, http.StatusNotFound, "not_found", "content not found")
	case errors.Is(err, showcase.ErrInvalidContentID):
		renderError(w, r, http.StatusBadRequest, "invalid_id", "content id is malformed")
	case errors.Is(err, showcase.ErrInvalidPage):
		renderError(w, r, http.StatusBadRequest, "invalid_page", showcase.ErrInvalidPage.Error())
	case errors.Is(err, showcase.ErrPermissionDenied):
		renderError(w, r, http.StatusForbidden, "forbidden", "not allowed to modify this content")
	case errors.As(err, &verr):
		renderValidationError(w, r, verr)
	default:
		slog.Error("content operation failed", "error", err, "path", r.URL.Path)
		renderError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

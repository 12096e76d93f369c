package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/openshowcase/showcase/pkg/showcase"
)

// LastPageHeader carries the total page count on list responses.
const LastPageHeader = "Last-Page"

// ContentHandler handles HTTP requests for showcase content.
type ContentHandler struct {
	service showcase.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(service showcase.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Routes returns the routes for content. Mutation routes load the target
// record first, then pass it through the ownership gate.
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListContent)
	r.Get("/all", h.ListAllContent)
	r.With(RequireIdentity).Post("/", h.CreateContent)

	r.Route("/{id}", func(r chi.Router) {
		r.Use(h.ContentLoader)
		r.Get("/", h.GetContent)

		r.Group(func(r chi.Router) {
			r.Use(RequireIdentity)
			r.Post("/star", h.StarContent)
			r.Delete("/star", h.UnstarContent)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireIdentity, RequireOwnership)
			r.Patch("/", h.UpdateContent)
			r.Delete("/", h.DeleteContent)
		})
	})

	return r
}

// withContent threads the loaded record from the loader into later steps of
// the same request.
func withContent(ctx context.Context, content *showcase.Content) context.Context {
	return context.WithValue(ctx, contentKey, content)
}

func contentFrom(ctx context.Context) (*showcase.Content, bool) {
	content, ok := ctx.Value(contentKey).(*showcase.Content)
	return content, ok
}

// ContentLoader resolves the path id into a loaded record. Malformed ids are
// rejected before any store call; absent records report not found.
func (h *ContentHandler) ContentLoader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			renderServiceError(w, r, showcase.ErrInvalidContentID)
			return
		}

		content, err := h.service.GetContent(r.Context(), id)
		if err != nil {
			renderServiceError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withContent(r.Context(), content)))
	})
}

// RequireOwnership gates mutation on the authorization check. Runs after
// ContentLoader and RequireIdentity.
func RequireOwnership(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok {
			renderError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		content, ok := contentFrom(r.Context())
		if !ok {
			renderError(w, r, http.StatusInternalServerError, "internal_error", "content not loaded")
			return
		}

		if !showcase.CanMutate(identity, content) {
			renderServiceError(w, r, showcase.ErrPermissionDenied)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CreateContent creates a new content record owned by the caller.
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		renderError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		renderError(w, r, http.StatusBadRequest, "bad_request", "request body must be a JSON object")
		return
	}

	if verr := showcase.CreateSchema.Validate(payload); verr != nil {
		renderValidationError(w, r, verr)
		return
	}

	content, err := h.service.CreateContent(r.Context(), identity, showcase.CreateRequestFromPayload(payload))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	slog.Info("content created", "content_id", content.ID, "owner_id", identity.ID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, content)
}

// ListContent returns one page of records, most recent first. Bodies are
// replaced by previews; the total page count rides the Last-Page header.
func (h *ContentHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, "invalid_page", "page must be an integer")
			return
		}
		page = parsed
	}

	contents, lastPage, err := h.service.ListContent(r.Context(), showcase.ListContentRequest{
		Page:            page,
		TaggedContestID: r.URL.Query().Get("taggedContestID"),
	})
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	w.Header().Set(LastPageHeader, strconv.Itoa(lastPage))
	render.JSON(w, r, previews(contents))
}

// ListAllContent returns every matching record, preview bodies included.
func (h *ContentHandler) ListAllContent(w http.ResponseWriter, r *http.Request) {
	contents, err := h.service.ListAllContent(r.Context(), showcase.ListFilter{
		TaggedContestID: r.URL.Query().Get("taggedContestID"),
	})
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, previews(contents))
}

// GetContent returns the full record, raw body included.
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	content, ok := contentFrom(r.Context())
	if !ok {
		renderError(w, r, http.StatusInternalServerError, "internal_error", "content not loaded")
		return
	}
	render.JSON(w, r, content)
}

// UpdateContent applies a partial update to the loaded record.
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	content, ok := contentFrom(r.Context())
	if !ok {
		renderError(w, r, http.StatusInternalServerError, "internal_error", "content not loaded")
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		renderError(w, r, http.StatusBadRequest, "bad_request", "request body must be a JSON object")
		return
	}

	if verr := showcase.UpdateSchema.Validate(payload); verr != nil {
		renderValidationError(w, r, verr)
		return
	}
	req, verr := showcase.UpdateRequestFromPayload(payload)
	if verr != nil {
		renderValidationError(w, r, verr)
		return
	}

	updated, err := h.service.UpdateContent(r.Context(), content.ID, req)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, updated)
}

// DeleteContent removes the loaded record.
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	content, ok := contentFrom(r.Context())
	if !ok {
		renderError(w, r, http.StatusInternalServerError, "internal_error", "content not loaded")
		return
	}

	if err := h.service.DeleteContent(r.Context(), content.ID); err != nil {
		renderServiceError(w, r, err)
		return
	}

	slog.Info("content deleted", "content_id", content.ID)
	w.WriteHeader(http.StatusNoContent)
}

// StarContent records the caller's endorsement.
func (h *ContentHandler) StarContent(w http.ResponseWriter, r *http.Request) {
	h.toggleStar(w, r, h.service.StarContent)
}

// UnstarContent withdraws the caller's endorsement.
func (h *ContentHandler) UnstarContent(w http.ResponseWriter, r *http.Request) {
	h.toggleStar(w, r, h.service.UnstarContent)
}

func (h *ContentHandler) toggleStar(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, showcase.Identity) (*showcase.Content, error)) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		renderError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}
	content, ok := contentFrom(r.Context())
	if !ok {
		renderError(w, r, http.StatusInternalServerError, "internal_error", "content not loaded")
		return
	}

	updated, err := op(r.Context(), content.ID, identity)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.JSON(w, r, updated)
}

// previews maps every record's body through the summarizer. List responses
// never expose the raw body.
func previews(contents []*showcase.Content) []*showcase.Content {
	out := make([]*showcase.Content, len(contents))
	for i, content := range contents {
		preview := *content
		preview.Body = showcase.Summarize(content.Body)
		out[i] = &preview
	}
	return out
}

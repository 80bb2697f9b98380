package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	"github.com/leettrack-dev/leettrack-backend/internal/service/tag"
)

// tagService defines the minimal interface needed by TagHandler.
type tagService interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, input tag.CreateTagInput) (domain.Tag, error)
	DeleteTag(ctx context.Context, input tag.DeleteTagInput) error
}

// TagHandler serves tag registry endpoints.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

type tagResponse struct {
	TagName string `json:"tag_name"`
}

type createTagRequest struct {
	TagName string `json:"tag_name"`
}

// List handles GET /api/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagResponse{TagName: t.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateTag(r.Context(), tag.CreateTagInput{Name: req.TagName})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, tagResponse{TagName: created.Name})
}

// Delete handles DELETE /api/tags/{name}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteTag(r.Context(), tag.DeleteTagInput{Name: r.PathValue("name")})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

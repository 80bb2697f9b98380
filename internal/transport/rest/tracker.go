package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	"github.com/leettrack-dev/leettrack-backend/internal/service/tracker"
)

// trackerService defines the minimal interface needed by TrackerHandler.
type trackerService interface {
	Lists(ctx context.Context) []domain.ListInfo
	ListQuestions(ctx context.Context, name string) ([]domain.QuestionRecord, error)
	Intersections(ctx context.Context) []domain.Intersection
	IntersectionQuestions(ctx context.Context, id string) ([]domain.QuestionRecord, error)
	Metrics(ctx context.Context, name string) (domain.Metrics, error)
	UpdateQuestion(ctx context.Context, input tracker.UpdateQuestionInput) (domain.QuestionRecord, error)
	QuestionTags(ctx context.Context, number int) ([]string, error)
	SetQuestionTags(ctx context.Context, input tracker.SetTagsInput) (domain.QuestionRecord, error)
}

// TrackerHandler serves list, intersection, metrics, and question endpoints.
type TrackerHandler struct {
	svc trackerService
	log *slog.Logger
}

// NewTrackerHandler creates a TrackerHandler.
func NewTrackerHandler(svc trackerService, logger *slog.Logger) *TrackerHandler {
	return &TrackerHandler{svc: svc, log: logger.With("handler", "tracker")}
}

type listInfoResponse struct {
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	TotalQuestions int    `json:"total_questions"`
}

type intersectionResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	List1       string `json:"list1"`
	List2       string `json:"list2"`
}

type metricsResponse struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
}

// questionResponse is the wire shape of a joined question record. Tags
// travel as one delimiter-joined string.
type questionResponse struct {
	QuestionNumber int    `json:"question_number"`
	Problem        string `json:"problem"`
	Done           bool   `json:"done"`
	Difficulty     string `json:"difficulty"`
	Tags           string `json:"tags"`
}

type updateQuestionRequest struct {
	Done       *bool   `json:"done"`
	Difficulty *string `json:"difficulty"`
}

type setTagsRequest struct {
	Tags []string `json:"tags"`
}

func toQuestionResponse(rec domain.QuestionRecord) questionResponse {
	return questionResponse{
		QuestionNumber: rec.Number,
		Problem:        rec.Problem,
		Done:           rec.Done,
		Difficulty:     rec.Difficulty.String(),
		Tags:           strings.Join(rec.Tags, domain.TagDelimiter),
	}
}

func toQuestionResponses(recs []domain.QuestionRecord) []questionResponse {
	out := make([]questionResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toQuestionResponse(rec))
	}
	return out
}

// Lists handles GET /api/lists.
func (h *TrackerHandler) Lists(w http.ResponseWriter, r *http.Request) {
	infos := h.svc.Lists(r.Context())

	out := make([]listInfoResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, listInfoResponse{
			Name:           info.Name,
			DisplayName:    info.DisplayName,
			TotalQuestions: info.TotalQuestions,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ListQuestions handles GET /api/lists/{name}.
func (h *TrackerHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListQuestions(r.Context(), r.PathValue("name"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponses(records))
}

// Intersections handles GET /api/intersections.
func (h *TrackerHandler) Intersections(w http.ResponseWriter, r *http.Request) {
	inters := h.svc.Intersections(r.Context())

	out := make([]intersectionResponse, 0, len(inters))
	for _, in := range inters {
		out = append(out, intersectionResponse{
			ID:          in.ID,
			DisplayName: in.DisplayName,
			List1:       in.List1,
			List2:       in.List2,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// IntersectionQuestions handles GET /api/intersections/{id}.
func (h *TrackerHandler) IntersectionQuestions(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.IntersectionQuestions(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponses(records))
}

// Metrics handles GET /api/metrics/{name}.
func (h *TrackerHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Metrics(r.Context(), r.PathValue("name"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, metricsResponse{
		Total:      m.Total,
		Completed:  m.Completed,
		Percentage: m.Percentage,
	})
}

// UpdateQuestion handles PUT /api/questions/{number}.
func (h *TrackerHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	number, ok := questionNumber(w, r)
	if !ok {
		return
	}

	var req updateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := tracker.UpdateQuestionInput{Number: number, Done: req.Done}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		input.Difficulty = &d
	}

	record, err := h.svc.UpdateQuestion(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponse(record))
}

// QuestionTags handles GET /api/questions/{number}/tags.
func (h *TrackerHandler) QuestionTags(w http.ResponseWriter, r *http.Request) {
	number, ok := questionNumber(w, r)
	if !ok {
		return
	}

	tags, err := h.svc.QuestionTags(r.Context(), number)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// SetQuestionTags handles PUT /api/questions/{number}/tags.
func (h *TrackerHandler) SetQuestionTags(w http.ResponseWriter, r *http.Request) {
	number, ok := questionNumber(w, r)
	if !ok {
		return
	}

	var req setTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.svc.SetQuestionTags(r.Context(), tracker.SetTagsInput{
		Number: number,
		Tags:   req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponse(record))
}

func questionNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question number")
		return 0, false
	}
	return number, true
}

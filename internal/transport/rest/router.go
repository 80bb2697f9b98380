package rest

import (
	"net/http"

	"github.com/leettrack-dev/leettrack-backend/internal/transport/middleware"
)

// NewRouter wires all endpoints. Probes stay public; everything under /api
// requires a session resolved by authMW.
func NewRouter(
	tracker *TrackerHandler,
	tags *TagHandler,
	auth *AuthHandler,
	health *HealthHandler,
	authMW middleware.Middleware,
) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/lists", tracker.Lists)
	api.HandleFunc("GET /api/lists/{name}", tracker.ListQuestions)
	api.HandleFunc("GET /api/metrics/{name}", tracker.Metrics)
	api.HandleFunc("GET /api/intersections", tracker.Intersections)
	api.HandleFunc("GET /api/intersections/{id}", tracker.IntersectionQuestions)
	api.HandleFunc("PUT /api/questions/{number}", tracker.UpdateQuestion)
	api.HandleFunc("GET /api/questions/{number}/tags", tracker.QuestionTags)
	api.HandleFunc("PUT /api/questions/{number}/tags", tracker.SetQuestionTags)
	api.HandleFunc("GET /api/tags", tags.List)
	api.HandleFunc("POST /api/tags", tags.Create)
	api.HandleFunc("DELETE /api/tags/{name}", tags.Delete)
	api.HandleFunc("GET /api/auth/me", auth.Me)
	api.HandleFunc("POST /api/auth/logout", auth.Logout)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("/api/", authMW(api))

	return mux
}

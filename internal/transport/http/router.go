// Package httptransport is the thin HTTP layer. Handlers decode, delegate to
// domain services, and encode; business rules live below.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"identikit/internal/history"
	"identikit/internal/platform/metrics"
	"identikit/internal/platform/middleware"
	"identikit/internal/realmail"
)

// Deps carries everything the router wires together.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Identity IdentityService
	History  history.Store
	Emails   *realmail.Pool
	Keys     KeyService
}

// NewRouter mounts all public endpoints behind the standard middleware chain.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.LatencyMiddleware(d.Metrics))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	identityHandler := NewIdentityHandler(d.Identity, d.Logger)
	historyHandler := NewHistoryHandler(d.History, d.Logger)
	emailHandler := NewEmailHandler(d.Emails)
	keyHandler := NewKeyHandler(d.Keys, d.Logger)

	r.Route("/api", func(api chi.Router) {
		api.Post("/identity/generate", identityHandler.handleGenerate)

		api.Get("/history", historyHandler.handleList)
		api.Post("/history", historyHandler.handleSave)
		api.Delete("/history/{id}", historyHandler.handleDelete)

		api.Get("/emails/real", emailHandler.handleRandom)

		api.Post("/keys/generate", keyHandler.handleGenerate)
		api.With(middleware.RequireAPIKey(d.Keys, d.Logger)).
			Post("/external/identity", identityHandler.handleExternal)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/feedbacklens/feedbacklens-go/internal/model"
)

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ModelStatus reports whether the classifier artifacts are loaded.
type ModelStatus interface {
	Ready() bool
}

// SystemHandler serves the liveness and health endpoints.
type SystemHandler struct {
	db    Pinger
	model ModelStatus
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(db Pinger, status ModelStatus) *SystemHandler {
	return &SystemHandler{db: db, model: status}
}

// HandleHome handles GET / requests.
func (h *SystemHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.StatusResponse{
		Message: "Backend Running Successfully",
		Status:  "active",
	})
}

// HandleHealth handles GET /api/health requests. It always answers 200;
// a failed database ping downgrades the status to "degraded".
func (h *SystemHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := model.HealthResponse{
		Status:       "healthy",
		ModelsLoaded: h.model.Ready(),
		Database:     "ok",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.db == nil {
		resp.Status, resp.Database = "degraded", "unavailable"
	} else if err := h.db.PingContext(ctx); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("health: database ping failed")
		resp.Status, resp.Database = "degraded", "unavailable"
	}

	writeJSON(w, http.StatusOK, resp)
}

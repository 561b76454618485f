package handler

import (
	"errors"
	"mime"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/feedbacklens/feedbacklens-go/internal/model"
	"github.com/feedbacklens/feedbacklens-go/internal/service"
)

// FeedbackHandler serves feedback submission, prediction and the dashboard.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

// HandleSubmit handles POST /feedback requests.
func (h *FeedbackHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req model.FeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	resp, err := h.service.Submit(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "feedback submission failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePredict handles POST /predict requests. The text arrives as the
// "feedback" form field or as a JSON body with the same key.
func (h *FeedbackHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req model.PredictRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := decodeJSON(w, r, &req); err != nil {
			writeDecodeError(w, err)
			return
		}
	} else {
		if err := parseForm(w, r, mediaType); err != nil {
			writeDecodeError(w, err)
			return
		}
		req.Feedback = r.PostFormValue("feedback")
	}

	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	resp, err := h.service.Predict(r.Context(), req.Feedback)
	if err != nil {
		h.writeServiceError(w, r, err, "prediction failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDashboard handles GET /admin/dashboard requests.
func (h *FeedbackHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "dashboard failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *FeedbackHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, service.ErrModelUnavailable) {
		hlog.FromRequest(r).Warn().Err(err).Msg(msg)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Sentiment model not loaded"))
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg(msg)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

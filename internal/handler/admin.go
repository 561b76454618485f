package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/feedbacklens/feedbacklens-go/internal/model"
	"github.com/feedbacklens/feedbacklens-go/internal/service"
)

// AdminHandler handles the admin login.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{service: svc}
}

// HandleLogin handles POST /admin/login requests.
func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAdminCredentials) {
			hlog.FromRequest(r).Warn().Msg("rejected admin login")
			writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid admin credentials"))
			return
		}
		hlog.FromRequest(r).Error().Err(err).Msg("admin login failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

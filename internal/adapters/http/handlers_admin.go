package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fundforge/dashboard-service/internal/application"
)

func (h *Handler) review(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials")
		return
	}
	var req application.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid json body")
		return
	}
	resp, err := h.service.Review(r.Context(), claims.UserID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) listPendingCampaigns(w http.ResponseWriter, r *http.Request) {
	query := application.PendingCampaignsQuery{
		SearchTerm:    r.URL.Query().Get("searchTerm"),
		CampaignStage: r.URL.Query().Get("campaignStage"),
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			query.Page = n
		}
	}
	if raw := r.URL.Query().Get("perPage"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			query.PerPage = n
		}
	}
	resp, err := h.service.ListPendingCampaigns(r.Context(), query)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/fundforge/dashboard-service/internal/application"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := bearerTokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials")
			return
		}
		claims, err := h.service.ValidateToken(r.Context(), raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials")
			return
		}
		next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
	})
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials")
			return
		}
		if claims.Role != roleAdmin {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "ForbiddenError", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func campaignIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "campaignId"))
	return id, err == nil
}

func (h *Handler) submitForReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials")
		return
	}
	var req application.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid json body")
		return
	}
	resp, err := h.service.SubmitForReview(r.Context(), claims.UserID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, resp)
}

func (h *Handler) getSocialsBySlug(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetSocialsByCampaignSlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) updateSocials(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials")
		return
	}
	campaignID, ok := campaignIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid campaign id")
		return
	}
	var req application.UpdateSocialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid json body")
		return
	}
	resp, err := h.service.UpdateSocials(r.Context(), claims.UserID, campaignID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) updateCampaignInfo(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials")
		return
	}
	campaignID, ok := campaignIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid campaign id")
		return
	}
	var req application.UpdateCampaignInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid json body")
		return
	}
	resp, err := h.service.UpdateCampaignInfo(r.Context(), claims.UserID, campaignID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) updateCampaignSummary(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials")
		return
	}
	campaignID, ok := campaignIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid campaign id")
		return
	}
	var req application.UpdateCampaignSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid json body")
		return
	}
	resp, err := h.service.UpdateCampaignSummary(r.Context(), claims.UserID, campaignID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) getApproval(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := campaignIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid campaign id")
		return
	}
	resp, err := h.service.GetApproval(r.Context(), campaignID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, resp)
}

func (h *Handler) listApprovalHistory(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := campaignIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", "invalid campaign id")
		return
	}
	entries, err := h.service.ListApprovalHistory(r.Context(), campaignID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, entries)
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/fundforge/dashboard-service/internal/application"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func NewRouter(handler *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ok") })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ready") })

	r.Route("/v1", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/socials/{slug}", handler.getSocialsBySlug)

			r.Group(func(r chi.Router) {
				r.Use(handler.authMiddleware)
				r.Post("/submissions", handler.submitForReview)
				r.Put("/socials/{campaignId}", handler.updateSocials)
				r.Put("/campaign-info/{campaignId}", handler.updateCampaignInfo)
				r.Put("/campaign-summary/{campaignId}", handler.updateCampaignSummary)
				r.Get("/approvals/{campaignId}", handler.getApproval)
				r.Get("/approvals/{campaignId}/history", handler.listApprovalHistory)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Use(handler.requireAdmin)
			r.Post("/dashboard/reviews", handler.review)
			r.Get("/campaigns/pending", handler.listPendingCampaigns)
		})
	})
	return r
}

package application

import (
	"context"
	"strings"

	"github.com/fundforge/dashboard-service/internal/ports"
)

// ListPendingCampaigns pages through campaigns whose approval is awaiting review.
func (s *Service) ListPendingCampaigns(ctx context.Context, query PendingCampaignsQuery) (PendingCampaignsResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = s.cfg.DefaultPerPage
	}
	if perPage > s.cfg.MaxPerPage {
		perPage = s.cfg.MaxPerPage
	}

	result, err := s.reads.ListPendingCampaigns(ctx, ports.PendingCampaignFilter{
		Page:       page,
		PerPage:    perPage,
		SearchTerm: strings.TrimSpace(query.SearchTerm),
		Stage:      strings.TrimSpace(query.CampaignStage),
	})
	if err != nil {
		return PendingCampaignsResponse{}, err
	}

	items := make([]PendingCampaignView, 0, len(result.Items))
	for _, pending := range result.Items {
		items = append(items, PendingCampaignView{
			CampaignID:  pending.Campaign.CampaignID,
			Slug:        pending.Campaign.Slug,
			Name:        pending.Campaign.Name,
			Stage:       pending.Campaign.Stage,
			IssuerName:  pending.IssuerName,
			Items:       itemsToStrings(pending.Approval.Items),
			SubmittedBy: pending.Approval.SubmittedBy,
			SubmittedAt: pending.SubmittedAt,
		})
	}
	return PendingCampaignsResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PerPage:    result.PerPage,
		TotalPages: result.TotalPages,
	}, nil
}

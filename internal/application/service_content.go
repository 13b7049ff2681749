package application

import (
	"context"
	"fmt"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

// UpdateCampaignInfo creates or updates the campaign-info dashboard item.
// Review state never gates writes or reads of the live data.
func (s *Service) UpdateCampaignInfo(ctx context.Context, actor uuid.UUID, campaignID uuid.UUID, req UpdateCampaignInfoRequest) (CampaignInfoResponse, error) {
	if campaignID == uuid.Nil {
		return CampaignInfoResponse{}, fmt.Errorf("%w: campaignId is required", domain.ErrInvalidInput)
	}
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return CampaignInfoResponse{}, err
	}

	info, err := s.infos.Upsert(ctx, ports.UpsertCampaignInfoParams{
		CampaignID:   campaign.CampaignID,
		Headline:     req.Headline,
		Description:  req.Description,
		HeroImageURL: req.HeroImageURL,
		VideoURL:     req.VideoURL,
		Now:          s.nowFn(),
	})
	if err != nil {
		return CampaignInfoResponse{}, err
	}
	return CampaignInfoResponse{
		CampaignID:   info.CampaignID,
		Headline:     info.Headline,
		Description:  info.Description,
		HeroImageURL: info.HeroImageURL,
		VideoURL:     info.VideoURL,
		UpdatedAt:    info.UpdatedAt,
	}, nil
}

// UpdateCampaignSummary creates or updates the campaign-summary dashboard item.
func (s *Service) UpdateCampaignSummary(ctx context.Context, actor uuid.UUID, campaignID uuid.UUID, req UpdateCampaignSummaryRequest) (CampaignSummaryResponse, error) {
	if campaignID == uuid.Nil {
		return CampaignSummaryResponse{}, fmt.Errorf("%w: campaignId is required", domain.ErrInvalidInput)
	}
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return CampaignSummaryResponse{}, err
	}

	summary, err := s.summaries.Upsert(ctx, ports.UpsertCampaignSummaryParams{
		CampaignID: campaign.CampaignID,
		Body:       req.Body,
		Highlights: req.Highlights,
		Now:        s.nowFn(),
	})
	if err != nil {
		return CampaignSummaryResponse{}, err
	}
	return CampaignSummaryResponse{
		CampaignID: summary.CampaignID,
		Body:       summary.Body,
		Highlights: summary.Highlights,
		UpdatedAt:  summary.UpdatedAt,
	}, nil
}

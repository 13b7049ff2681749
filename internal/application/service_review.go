package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

// Review moves a pending approval to approved or rejected and appends one
// history entry per named entity type, atomically.
func (s *Service) Review(ctx context.Context, actor uuid.UUID, req ReviewRequest) (ReviewResponse, error) {
	if req.CampaignID == uuid.Nil {
		return ReviewResponse{}, fmt.Errorf("%w: campaignId is required", domain.ErrInvalidInput)
	}
	action := domain.NormalizeReviewAction(req.Action)
	if action == "" {
		return ReviewResponse{}, fmt.Errorf("%w: action must be approve or reject", domain.ErrInvalidInput)
	}
	if action == domain.ReviewActionReject && strings.TrimSpace(req.Comment) == "" {
		return ReviewResponse{}, fmt.Errorf("%w: a comment is required when rejecting", domain.ErrInvalidInput)
	}
	types, err := domain.NormalizeEntityTypes(req.EntityTypes)
	if err != nil {
		return ReviewResponse{}, err
	}
	campaign, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return ReviewResponse{}, err
	}

	now := s.nowFn()
	status := domain.StatusForAction(action)
	approval, history, err := s.approvals.Review(ctx, ports.ReviewParams{
		CampaignID:  campaign.CampaignID,
		ReviewedBy:  actor,
		EntityTypes: types,
		Status:      status,
		Comment:     strings.TrimSpace(req.Comment),
		Now:         now,
	})
	if err != nil {
		return ReviewResponse{}, err
	}

	s.enqueueEvent(ctx, eventDashboardReviewed, dashboardReviewedPayload{
		EventID:     uuid.New(),
		CampaignID:  campaign.CampaignID,
		ReviewedBy:  actor,
		Status:      string(status),
		EntityTypes: entityTypeStrings(types),
		Comment:     approval.ReviewComment,
		OccurredAt:  now,
	}, campaign.CampaignID.String(), now)

	s.dispatch(ctx, ports.Notification{
		Event:        eventDashboardReviewed,
		CampaignID:   campaign.CampaignID,
		CampaignName: campaign.Name,
		ActorID:      actor,
		EntityTypes:  types,
		Status:       status,
		Comment:      approval.ReviewComment,
	})

	entries := make([]HistoryEntryResponse, 0, len(history))
	for _, entry := range history {
		entries = append(entries, toHistoryEntryResponse(entry))
	}
	return ReviewResponse{
		Approval: toApprovalResponse(approval),
		History:  entries,
	}, nil
}

// GetApproval returns the current approval record for a campaign.
func (s *Service) GetApproval(ctx context.Context, campaignID uuid.UUID) (ApprovalResponse, error) {
	if campaignID == uuid.Nil {
		return ApprovalResponse{}, fmt.Errorf("%w: campaignId is required", domain.ErrInvalidInput)
	}
	approval, err := s.approvals.GetByCampaignID(ctx, campaignID)
	if err != nil {
		return ApprovalResponse{}, err
	}
	return toApprovalResponse(approval), nil
}

// ListApprovalHistory returns the review ledger for a campaign, newest first.
func (s *Service) ListApprovalHistory(ctx context.Context, campaignID uuid.UUID) ([]HistoryEntryResponse, error) {
	if campaignID == uuid.Nil {
		return nil, fmt.Errorf("%w: campaignId is required", domain.ErrInvalidInput)
	}
	entries, err := s.histories.ListByCampaign(ctx, campaignID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toHistoryEntryResponse(entry))
	}
	return out, nil
}

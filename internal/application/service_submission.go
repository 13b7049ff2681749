package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

const (
	itemOutcomeSubmitted = "submitted"
	itemOutcomeMissing   = "missing"
)

// SubmitForReview records a submission, resolves per-item outcomes and resets
// the campaign approval to pending with the requested item flags.
func (s *Service) SubmitForReview(ctx context.Context, actor uuid.UUID, req SubmitRequest) (SubmitResponse, error) {
	if req.CampaignID == uuid.Nil {
		return SubmitResponse{}, fmt.Errorf("%w: campaignId is required", domain.ErrInvalidInput)
	}
	types, err := domain.NormalizeEntityTypes(req.EntityTypes)
	if err != nil {
		return SubmitResponse{}, err
	}
	campaign, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return SubmitResponse{}, err
	}

	now := s.nowFn()
	flags := domain.ItemFlags(types)

	sub, err := s.subs.Create(ctx, ports.CreateSubmissionParams{
		CampaignID:  campaign.CampaignID,
		SubmittedBy: actor,
		Items:       flags,
		Note:        req.Note,
		Now:         now,
	})
	if err != nil {
		return SubmitResponse{}, err
	}

	results := make(map[domain.EntityType]string, len(types))
	for _, entityType := range types {
		present, presenceErr := s.itemPresent(ctx, campaign.CampaignID, entityType)
		if presenceErr != nil {
			_ = s.subs.Complete(ctx, sub.SubmissionID, domain.SubmissionStatusFailed, results, s.nowFn())
			return SubmitResponse{}, presenceErr
		}
		if present {
			results[entityType] = itemOutcomeSubmitted
		} else {
			results[entityType] = itemOutcomeMissing
		}
	}

	approval, err := s.approvals.UpsertForSubmission(ctx, ports.UpsertApprovalParams{
		CampaignID:  campaign.CampaignID,
		Items:       flags,
		SubmittedBy: actor,
		Now:         now,
	})
	if err != nil {
		_ = s.subs.Complete(ctx, sub.SubmissionID, domain.SubmissionStatusFailed, results, s.nowFn())
		return SubmitResponse{}, err
	}

	if err := s.subs.Complete(ctx, sub.SubmissionID, domain.SubmissionStatusCompleted, results, s.nowFn()); err != nil {
		return SubmitResponse{}, err
	}

	s.enqueueEvent(ctx, eventSubmissionSubmitted, submissionSubmittedPayload{
		EventID:      uuid.New(),
		SubmissionID: sub.SubmissionID,
		CampaignID:   campaign.CampaignID,
		SubmittedBy:  actor,
		EntityTypes:  entityTypeStrings(types),
		OccurredAt:   now,
	}, campaign.CampaignID.String(), now)

	s.dispatch(ctx, ports.Notification{
		Event:        eventSubmissionSubmitted,
		CampaignID:   campaign.CampaignID,
		CampaignName: campaign.Name,
		ActorID:      actor,
		EntityTypes:  types,
		Status:       domain.ApprovalStatusPending,
	})

	stringResults := make(map[string]string, len(results))
	for k, v := range results {
		stringResults[string(k)] = v
	}
	return SubmitResponse{
		SubmissionID: sub.SubmissionID,
		CampaignID:   campaign.CampaignID,
		Status:       string(domain.SubmissionStatusCompleted),
		Results:      stringResults,
		Approval:     toApprovalResponse(approval),
	}, nil
}

func (s *Service) itemPresent(ctx context.Context, campaignID uuid.UUID, entityType domain.EntityType) (bool, error) {
	var err error
	switch entityType {
	case domain.EntityTypeCampaignInfo:
		_, err = s.infos.GetByCampaignID(ctx, campaignID)
	case domain.EntityTypeCampaignSummary:
		_, err = s.summaries.GetByCampaignID(ctx, campaignID)
	case domain.EntityTypeSocials:
		_, err = s.socials.GetByCampaignID(ctx, campaignID)
	default:
		return false, fmt.Errorf("%w: unrecognized entity type %q", domain.ErrInvalidInput, entityType)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

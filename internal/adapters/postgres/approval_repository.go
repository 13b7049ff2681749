package postgres

import (
	"context"
	"errors"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type approvalRepository struct {
	db *gorm.DB
}

func (r *approvalRepository) GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (domain.DashboardApproval, error) {
	var rec approvalModel
	if err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DashboardApproval{}, domain.ErrNotFound
		}
		return domain.DashboardApproval{}, err
	}
	return toDomainApproval(rec), nil
}

func (r *approvalRepository) UpsertForSubmission(ctx context.Context, params ports.UpsertApprovalParams) (domain.DashboardApproval, error) {
	updates := map[string]any{
		"items":          encodeItems(params.Items),
		"status":         string(domain.ApprovalStatusPending),
		"submitted_by":   params.SubmittedBy,
		"submitted_at":   params.Now,
		"reviewed_by":    nil,
		"reviewed_at":    nil,
		"review_comment": "",
		"updated_at":     params.Now,
	}

	res := r.db.WithContext(ctx).Model(&approvalModel{}).Where("campaign_id = ?", params.CampaignID).Updates(updates)
	if res.Error != nil {
		return domain.DashboardApproval{}, res.Error
	}
	if res.RowsAffected == 0 {
		rec := approvalModel{
			ApprovalID:  uuid.New(),
			CampaignID:  params.CampaignID,
			Items:       encodeItems(params.Items),
			Status:      string(domain.ApprovalStatusPending),
			SubmittedBy: params.SubmittedBy,
			SubmittedAt: params.Now,
			CreatedAt:   params.Now,
			UpdatedAt:   params.Now,
		}
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				// A concurrent submission created the row first; fold ours into it.
				if res := r.db.WithContext(ctx).Model(&approvalModel{}).Where("campaign_id = ?", params.CampaignID).Updates(updates); res.Error != nil {
					return domain.DashboardApproval{}, res.Error
				}
				return r.GetByCampaignID(ctx, params.CampaignID)
			}
			return domain.DashboardApproval{}, err
		}
		return toDomainApproval(rec), nil
	}
	return r.GetByCampaignID(ctx, params.CampaignID)
}

func (r *approvalRepository) Review(ctx context.Context, params ports.ReviewParams) (domain.DashboardApproval, []domain.ApprovalHistory, error) {
	var (
		updated approvalModel
		history []domain.ApprovalHistory
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec approvalModel
		if err := tx.Clauses(forUpdate()).Where("campaign_id = ?", params.CampaignID).Take(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := domain.ValidateApprovalTransition(domain.ApprovalStatus(rec.Status), params.Status); err != nil {
			return err
		}

		reviewedBy := params.ReviewedBy
		reviewedAt := params.Now
		res := tx.Model(&approvalModel{}).Where("approval_id = ?", rec.ApprovalID).Updates(map[string]any{
			"status":         string(params.Status),
			"reviewed_by":    reviewedBy,
			"reviewed_at":    reviewedAt,
			"review_comment": params.Comment,
			"updated_at":     params.Now,
		})
		if res.Error != nil {
			return res.Error
		}

		rec.Status = string(params.Status)
		rec.ReviewedBy = &reviewedBy
		rec.ReviewedAt = &reviewedAt
		rec.ReviewComment = params.Comment
		rec.UpdatedAt = params.Now
		updated = rec

		for _, entityType := range params.EntityTypes {
			entry := approvalHistoryModel{
				HistoryID:  uuid.New(),
				EntityID:   params.CampaignID,
				EntityType: string(entityType),
				Status:     string(params.Status),
				ActorID:    params.ReviewedBy,
				Comment:    params.Comment,
				CreatedAt:  params.Now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			history = append(history, toDomainApprovalHistory(entry))
		}
		return nil
	})
	if err != nil {
		return domain.DashboardApproval{}, nil, err
	}
	return toDomainApproval(updated), history, nil
}

type approvalHistoryRepository struct {
	db *gorm.DB
}

func (r *approvalHistoryRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.ApprovalHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	var recs []approvalHistoryModel
	err := r.db.WithContext(ctx).
		Where("entity_id = ?", campaignID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ApprovalHistory, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainApprovalHistory(rec))
	}
	return out, nil
}

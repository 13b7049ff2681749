package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type submissionRepository struct {
	db *gorm.DB
}

func (r *submissionRepository) Create(ctx context.Context, params ports.CreateSubmissionParams) (domain.Submission, error) {
	rec := submissionModel{
		SubmissionID: uuid.New(),
		CampaignID:   params.CampaignID,
		SubmittedBy:  params.SubmittedBy,
		Items:        encodeItems(params.Items),
		Note:         params.Note,
		Status:       string(domain.SubmissionStatusPending),
		CreatedAt:    params.Now,
		UpdatedAt:    params.Now,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Submission{}, err
	}
	return toDomainSubmission(rec), nil
}

func (r *submissionRepository) Complete(ctx context.Context, submissionID uuid.UUID, status domain.SubmissionStatus, results map[domain.EntityType]string, at time.Time) error {
	encoded := encodeResults(results)
	res := r.db.WithContext(ctx).Model(&submissionModel{}).
		Where("submission_id = ?", submissionID).
		Updates(map[string]any{
			"status":     string(status),
			"results":    encoded,
			"updated_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *submissionRepository) GetByID(ctx context.Context, submissionID uuid.UUID) (domain.Submission, error) {
	var rec submissionModel
	if err := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Submission{}, domain.ErrNotFound
		}
		return domain.Submission{}, err
	}
	return toDomainSubmission(rec), nil
}

func (r *submissionRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []submissionModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Submission, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainSubmission(rec))
	}
	return out, nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type campaignRepository struct {
	db *gorm.DB
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID uuid.UUID) (domain.Campaign, error) {
	var rec campaignModel
	if err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Campaign{}, domain.ErrNotFound
		}
		return domain.Campaign{}, err
	}
	return toDomainCampaign(rec), nil
}

func (r *campaignRepository) GetBySlug(ctx context.Context, slug string) (domain.Campaign, error) {
	var rec campaignModel
	if err := r.db.WithContext(ctx).Where("slug = ?", domain.NormalizeSlug(slug)).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Campaign{}, domain.ErrNotFound
		}
		return domain.Campaign{}, err
	}
	return toDomainCampaign(rec), nil
}

type issuerRepository struct {
	db *gorm.DB
}

func (r *issuerRepository) GetByID(ctx context.Context, issuerID uuid.UUID) (domain.Issuer, error) {
	var rec issuerModel
	if err := r.db.WithContext(ctx).Where("issuer_id = ?", issuerID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Issuer{}, domain.ErrIssuerMissing
		}
		return domain.Issuer{}, err
	}
	return toDomainIssuer(rec), nil
}

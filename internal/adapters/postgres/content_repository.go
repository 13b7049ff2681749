package postgres

import (
	"context"
	"errors"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type campaignInfoRepository struct {
	db *gorm.DB
}

func (r *campaignInfoRepository) GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (domain.CampaignInfo, error) {
	var rec campaignInfoModel
	if err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CampaignInfo{}, domain.ErrNotFound
		}
		return domain.CampaignInfo{}, err
	}
	return toDomainCampaignInfo(rec), nil
}

func (r *campaignInfoRepository) Upsert(ctx context.Context, params ports.UpsertCampaignInfoParams) (domain.CampaignInfo, error) {
	updates := map[string]any{"updated_at": params.Now}
	if params.Headline != nil {
		updates["headline"] = *params.Headline
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.HeroImageURL != nil {
		updates["hero_image_url"] = *params.HeroImageURL
	}
	if params.VideoURL != nil {
		updates["video_url"] = *params.VideoURL
	}

	res := r.db.WithContext(ctx).Model(&campaignInfoModel{}).Where("campaign_id = ?", params.CampaignID).Updates(updates)
	if res.Error != nil {
		return domain.CampaignInfo{}, res.Error
	}
	if res.RowsAffected == 0 {
		rec := campaignInfoModel{
			CampaignID:   params.CampaignID,
			Headline:     deref(params.Headline),
			Description:  deref(params.Description),
			HeroImageURL: deref(params.HeroImageURL),
			VideoURL:     deref(params.VideoURL),
			CreatedAt:    params.Now,
			UpdatedAt:    params.Now,
		}
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				if res := r.db.WithContext(ctx).Model(&campaignInfoModel{}).Where("campaign_id = ?", params.CampaignID).Updates(updates); res.Error != nil {
					return domain.CampaignInfo{}, res.Error
				}
				return r.GetByCampaignID(ctx, params.CampaignID)
			}
			return domain.CampaignInfo{}, err
		}
		return toDomainCampaignInfo(rec), nil
	}
	return r.GetByCampaignID(ctx, params.CampaignID)
}

type campaignSummaryRepository struct {
	db *gorm.DB
}

func (r *campaignSummaryRepository) GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (domain.CampaignSummary, error) {
	var rec campaignSummaryModel
	if err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CampaignSummary{}, domain.ErrNotFound
		}
		return domain.CampaignSummary{}, err
	}
	return toDomainCampaignSummary(rec), nil
}

func (r *campaignSummaryRepository) Upsert(ctx context.Context, params ports.UpsertCampaignSummaryParams) (domain.CampaignSummary, error) {
	updates := map[string]any{"updated_at": params.Now}
	if params.Body != nil {
		updates["body"] = *params.Body
	}
	if params.Highlights != nil {
		updates["highlights"] = *params.Highlights
	}

	res := r.db.WithContext(ctx).Model(&campaignSummaryModel{}).Where("campaign_id = ?", params.CampaignID).Updates(updates)
	if res.Error != nil {
		return domain.CampaignSummary{}, res.Error
	}
	if res.RowsAffected == 0 {
		rec := campaignSummaryModel{
			CampaignID: params.CampaignID,
			Body:       deref(params.Body),
			Highlights: deref(params.Highlights),
			CreatedAt:  params.Now,
			UpdatedAt:  params.Now,
		}
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				if res := r.db.WithContext(ctx).Model(&campaignSummaryModel{}).Where("campaign_id = ?", params.CampaignID).Updates(updates); res.Error != nil {
					return domain.CampaignSummary{}, res.Error
				}
				return r.GetByCampaignID(ctx, params.CampaignID)
			}
			return domain.CampaignSummary{}, err
		}
		return toDomainCampaignSummary(rec), nil
	}
	return r.GetByCampaignID(ctx, params.CampaignID)
}

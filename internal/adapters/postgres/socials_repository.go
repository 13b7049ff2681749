package postgres

import (
	"context"
	"errors"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type socialsRepository struct {
	db *gorm.DB
}

func (r *socialsRepository) GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (domain.DashboardSocials, error) {
	var rec socialsModel
	if err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DashboardSocials{}, domain.ErrNotFound
		}
		return domain.DashboardSocials{}, err
	}
	return toDomainSocials(rec), nil
}

func (r *socialsRepository) GetByCampaignSlug(ctx context.Context, slug string) (domain.DashboardSocials, error) {
	var rec socialsModel
	err := r.db.WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.campaign_id = dashboard_socials.campaign_id").
		Where("campaigns.slug = ?", domain.NormalizeSlug(slug)).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DashboardSocials{}, domain.ErrNotFound
		}
		return domain.DashboardSocials{}, err
	}
	return toDomainSocials(rec), nil
}

func (r *socialsRepository) Upsert(ctx context.Context, params ports.UpsertSocialsParams) (domain.DashboardSocials, error) {
	updates := map[string]any{"updated_at": params.Now}
	if params.TwitterURL != nil {
		updates["twitter_url"] = *params.TwitterURL
	}
	if params.FacebookURL != nil {
		updates["facebook_url"] = *params.FacebookURL
	}
	if params.LinkedInURL != nil {
		updates["linkedin_url"] = *params.LinkedInURL
	}
	if params.InstagramURL != nil {
		updates["instagram_url"] = *params.InstagramURL
	}
	if params.YouTubeURL != nil {
		updates["youtube_url"] = *params.YouTubeURL
	}
	if params.WebsiteURL != nil {
		updates["website_url"] = *params.WebsiteURL
	}

	res := r.db.WithContext(ctx).Model(&socialsModel{}).Where("campaign_id = ?", params.CampaignID).Updates(updates)
	if res.Error != nil {
		return domain.DashboardSocials{}, res.Error
	}
	if res.RowsAffected == 0 {
		rec := socialsModel{
			CampaignID:   params.CampaignID,
			TwitterURL:   deref(params.TwitterURL),
			FacebookURL:  deref(params.FacebookURL),
			LinkedInURL:  deref(params.LinkedInURL),
			InstagramURL: deref(params.InstagramURL),
			YouTubeURL:   deref(params.YouTubeURL),
			WebsiteURL:   deref(params.WebsiteURL),
			CreatedAt:    params.Now,
			UpdatedAt:    params.Now,
		}
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				// Lost the insert race; the surviving row takes the update.
				if res := r.db.WithContext(ctx).Model(&socialsModel{}).Where("campaign_id = ?", params.CampaignID).Updates(updates); res.Error != nil {
					return domain.DashboardSocials{}, res.Error
				}
				return r.GetByCampaignID(ctx, params.CampaignID)
			}
			return domain.DashboardSocials{}, err
		}
		return toDomainSocials(rec), nil
	}
	return r.GetByCampaignID(ctx, params.CampaignID)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

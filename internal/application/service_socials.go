package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

func socialsCacheKey(slug string) string {
	return "socials:slug:" + slug
}

// GetSocialsByCampaignSlug serves the public socials block. A campaign-specific
// row wins; otherwise the issuer's own links are remapped into the same shape.
func (s *Service) GetSocialsByCampaignSlug(ctx context.Context, slug string) (SocialsResponse, error) {
	slug = domain.NormalizeSlug(slug)
	if err := domain.ValidateSlug(slug); err != nil {
		return SocialsResponse{}, err
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, socialsCacheKey(slug)); err == nil {
			var resp SocialsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &resp); unmarshalErr == nil {
				return resp, nil
			}
		}
	}

	resp, err := s.resolveSocials(ctx, slug)
	if err != nil {
		return SocialsResponse{}, err
	}

	if s.cache != nil {
		if raw, marshalErr := json.Marshal(resp); marshalErr == nil {
			if cacheErr := s.cache.Set(ctx, socialsCacheKey(slug), string(raw), s.cfg.SocialsCacheTTL); cacheErr != nil {
				s.logger.WarnContext(ctx, "socials cache set failed",
					"module", "application",
					"layer", "application",
					"operation", "get_socials",
					"outcome", "degraded",
					"slug", slug,
					"error", cacheErr,
				)
			}
		}
	}
	return resp, nil
}

func (s *Service) resolveSocials(ctx context.Context, slug string) (SocialsResponse, error) {
	soc, err := s.socials.GetByCampaignSlug(ctx, slug)
	if err == nil {
		return SocialsResponse{
			CampaignID:   soc.CampaignID,
			Source:       socialsSourceDashboard,
			TwitterURL:   soc.TwitterURL,
			FacebookURL:  soc.FacebookURL,
			LinkedInURL:  soc.LinkedInURL,
			InstagramURL: soc.InstagramURL,
			YouTubeURL:   soc.YouTubeURL,
			WebsiteURL:   soc.WebsiteURL,
			UpdatedAt:    soc.UpdatedAt,
		}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return SocialsResponse{}, err
	}

	campaign, err := s.campaigns.GetBySlug(ctx, slug)
	if err != nil {
		return SocialsResponse{}, err
	}
	issuer, err := s.issuers.GetByID(ctx, campaign.IssuerID)
	if err != nil {
		return SocialsResponse{}, err
	}
	return SocialsResponse{
		CampaignID:   campaign.CampaignID,
		Source:       socialsSourceIssuer,
		TwitterURL:   issuer.TwitterURL,
		FacebookURL:  issuer.FacebookURL,
		LinkedInURL:  issuer.LinkedInURL,
		InstagramURL: issuer.InstagramURL,
		YouTubeURL:   issuer.YouTubeURL,
		WebsiteURL:   issuer.WebsiteURL,
		UpdatedAt:    issuer.UpdatedAt,
	}, nil
}

// UpdateSocials creates or updates the campaign's socials block and drops the
// cached read for its slug.
func (s *Service) UpdateSocials(ctx context.Context, actor uuid.UUID, campaignID uuid.UUID, req UpdateSocialsRequest) (SocialsResponse, error) {
	if campaignID == uuid.Nil {
		return SocialsResponse{}, fmt.Errorf("%w: campaignId is required", domain.ErrInvalidInput)
	}
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return SocialsResponse{}, err
	}

	soc, err := s.socials.Upsert(ctx, ports.UpsertSocialsParams{
		CampaignID:   campaign.CampaignID,
		TwitterURL:   req.TwitterURL,
		FacebookURL:  req.FacebookURL,
		LinkedInURL:  req.LinkedInURL,
		InstagramURL: req.InstagramURL,
		YouTubeURL:   req.YouTubeURL,
		WebsiteURL:   req.WebsiteURL,
		Now:          s.nowFn(),
	})
	if err != nil {
		return SocialsResponse{}, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.Delete(ctx, socialsCacheKey(campaign.Slug)); cacheErr != nil {
			s.logger.WarnContext(ctx, "socials cache invalidation failed",
				"module", "application",
				"layer", "application",
				"operation", "update_socials",
				"outcome", "degraded",
				"slug", campaign.Slug,
				"error", cacheErr,
			)
		}
	}

	return SocialsResponse{
		CampaignID:   soc.CampaignID,
		Source:       socialsSourceDashboard,
		TwitterURL:   soc.TwitterURL,
		FacebookURL:  soc.FacebookURL,
		LinkedInURL:  soc.LinkedInURL,
		InstagramURL: soc.InstagramURL,
		YouTubeURL:   soc.YouTubeURL,
		WebsiteURL:   soc.WebsiteURL,
		UpdatedAt:    soc.UpdatedAt,
	}, nil
}

package postgres

import (
	"encoding/json"

	"github.com/fundforge/dashboard-service/internal/domain"
)

func toDomainCampaign(m campaignModel) domain.Campaign {
	return domain.Campaign{
		CampaignID: m.CampaignID, IssuerID: m.IssuerID, Slug: m.Slug, Name: m.Name,
		Stage: m.Stage, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func toDomainIssuer(m issuerModel) domain.Issuer {
	return domain.Issuer{
		IssuerID: m.IssuerID, LegalName: m.LegalName, TwitterURL: m.TwitterURL,
		FacebookURL: m.FacebookURL, LinkedInURL: m.LinkedInURL, InstagramURL: m.InstagramURL,
		YouTubeURL: m.YouTubeURL, WebsiteURL: m.WebsiteURL,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func toDomainSocials(m socialsModel) domain.DashboardSocials {
	return domain.DashboardSocials{
		SocialsID: m.SocialsID, CampaignID: m.CampaignID, TwitterURL: m.TwitterURL,
		FacebookURL: m.FacebookURL, LinkedInURL: m.LinkedInURL, InstagramURL: m.InstagramURL,
		YouTubeURL: m.YouTubeURL, WebsiteURL: m.WebsiteURL,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func toDomainCampaignInfo(m campaignInfoModel) domain.CampaignInfo {
	return domain.CampaignInfo{
		InfoID: m.InfoID, CampaignID: m.CampaignID, Headline: m.Headline,
		Description: m.Description, HeroImageURL: m.HeroImageURL, VideoURL: m.VideoURL,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func toDomainCampaignSummary(m campaignSummaryModel) domain.CampaignSummary {
	return domain.CampaignSummary{
		SummaryID: m.SummaryID, CampaignID: m.CampaignID, Body: m.Body,
		Highlights: m.Highlights, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func toDomainSubmission(m submissionModel) domain.Submission {
	sub := domain.Submission{
		SubmissionID: m.SubmissionID, CampaignID: m.CampaignID, SubmittedBy: m.SubmittedBy,
		Items: decodeItems(m.Items), Note: m.Note, Status: domain.SubmissionStatus(m.Status),
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
	if m.Results != nil {
		sub.Results = decodeResults(*m.Results)
	}
	return sub
}

func toDomainApproval(m approvalModel) domain.DashboardApproval {
	return domain.DashboardApproval{
		ApprovalID: m.ApprovalID, CampaignID: m.CampaignID, Items: decodeItems(m.Items),
		Status: domain.ApprovalStatus(m.Status), SubmittedBy: m.SubmittedBy,
		SubmittedAt: m.SubmittedAt, ReviewedBy: m.ReviewedBy, ReviewedAt: m.ReviewedAt,
		ReviewComment: m.ReviewComment, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func toDomainApprovalHistory(m approvalHistoryModel) domain.ApprovalHistory {
	return domain.ApprovalHistory{
		HistoryID: m.HistoryID, EntityID: m.EntityID, EntityType: domain.EntityType(m.EntityType),
		Status: domain.ApprovalStatus(m.Status), ActorID: m.ActorID, Comment: m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

func encodeItems(items map[domain.EntityType]bool) string {
	raw, _ := json.Marshal(items)
	return string(raw)
}

func decodeItems(raw string) map[domain.EntityType]bool {
	out := map[domain.EntityType]bool{}
	_ = json.Unmarshal([]byte(raw), &out)
	return out
}

func encodeResults(results map[domain.EntityType]string) string {
	raw, _ := json.Marshal(results)
	return string(raw)
}

func decodeResults(raw string) map[domain.EntityType]string {
	out := map[domain.EntityType]string{}
	_ = json.Unmarshal([]byte(raw), &out)
	return out
}

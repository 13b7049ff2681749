package application

import (
	"time"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/google/uuid"
)

type SubmitRequest struct {
	CampaignID  uuid.UUID `json:"campaignId"`
	EntityTypes []string  `json:"entityTypes"`
	Note        string    `json:"note"`
}

type SubmitResponse struct {
	SubmissionID uuid.UUID         `json:"submissionId"`
	CampaignID   uuid.UUID         `json:"campaignId"`
	Status       string            `json:"status"`
	Results      map[string]string `json:"results"`
	Approval     ApprovalResponse  `json:"approval"`
}

type ApprovalResponse struct {
	ApprovalID    uuid.UUID       `json:"approvalId"`
	CampaignID    uuid.UUID       `json:"campaignId"`
	Items         map[string]bool `json:"items"`
	Status        string          `json:"status"`
	SubmittedBy   uuid.UUID       `json:"submittedBy"`
	SubmittedAt   time.Time       `json:"submittedAt"`
	ReviewedBy    *uuid.UUID      `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewedAt,omitempty"`
	ReviewComment string          `json:"reviewComment,omitempty"`
}

type ReviewRequest struct {
	CampaignID  uuid.UUID `json:"campaignId"`
	Action      string    `json:"action"`
	EntityTypes []string  `json:"entityTypes"`
	Comment     string    `json:"comment"`
}

type ReviewResponse struct {
	Approval ApprovalResponse       `json:"approval"`
	History  []HistoryEntryResponse `json:"history"`
}

type HistoryEntryResponse struct {
	HistoryID  uuid.UUID `json:"historyId"`
	EntityID   uuid.UUID `json:"entityId"`
	EntityType string    `json:"entityType"`
	Status     string    `json:"status"`
	ActorID    uuid.UUID `json:"actorId"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UpdateSocialsRequest struct {
	TwitterURL   *string `json:"twitterUrl"`
	FacebookURL  *string `json:"facebookUrl"`
	LinkedInURL  *string `json:"linkedinUrl"`
	InstagramURL *string `json:"instagramUrl"`
	YouTubeURL   *string `json:"youtubeUrl"`
	WebsiteURL   *string `json:"websiteUrl"`
}

type SocialsResponse struct {
	CampaignID   uuid.UUID `json:"campaignId"`
	Source       string    `json:"source"`
	TwitterURL   string    `json:"twitterUrl,omitempty"`
	FacebookURL  string    `json:"facebookUrl,omitempty"`
	LinkedInURL  string    `json:"linkedinUrl,omitempty"`
	InstagramURL string    `json:"instagramUrl,omitempty"`
	YouTubeURL   string    `json:"youtubeUrl,omitempty"`
	WebsiteURL   string    `json:"websiteUrl,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	socialsSourceDashboard = "dashboard"
	socialsSourceIssuer    = "issuer"
)

type UpdateCampaignInfoRequest struct {
	Headline     *string `json:"headline"`
	Description  *string `json:"description"`
	HeroImageURL *string `json:"heroImageUrl"`
	VideoURL     *string `json:"videoUrl"`
}

type CampaignInfoResponse struct {
	CampaignID   uuid.UUID `json:"campaignId"`
	Headline     string    `json:"headline"`
	Description  string    `json:"description"`
	HeroImageURL string    `json:"heroImageUrl,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UpdateCampaignSummaryRequest struct {
	Body       *string `json:"body"`
	Highlights *string `json:"highlights"`
}

type CampaignSummaryResponse struct {
	CampaignID uuid.UUID `json:"campaignId"`
	Body       string    `json:"body"`
	Highlights string    `json:"highlights,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type PendingCampaignsQuery struct {
	Page          int
	PerPage       int
	SearchTerm    string
	CampaignStage string
}

type PendingCampaignView struct {
	CampaignID  uuid.UUID       `json:"campaignId"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Stage       string          `json:"stage"`
	IssuerName  string          `json:"issuerName"`
	Items       map[string]bool `json:"items"`
	SubmittedBy uuid.UUID       `json:"submittedBy"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

type PendingCampaignsResponse struct {
	Items      []PendingCampaignView `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"perPage"`
	TotalPages int                   `json:"totalPages"`
}

func toApprovalResponse(a domain.DashboardApproval) ApprovalResponse {
	return ApprovalResponse{
		ApprovalID:    a.ApprovalID,
		CampaignID:    a.CampaignID,
		Items:         itemsToStrings(a.Items),
		Status:        string(a.Status),
		SubmittedBy:   a.SubmittedBy,
		SubmittedAt:   a.SubmittedAt,
		ReviewedBy:    a.ReviewedBy,
		ReviewedAt:    a.ReviewedAt,
		ReviewComment: a.ReviewComment,
	}
}

func toHistoryEntryResponse(h domain.ApprovalHistory) HistoryEntryResponse {
	return HistoryEntryResponse{
		HistoryID:  h.HistoryID,
		EntityID:   h.EntityID,
		EntityType: string(h.EntityType),
		Status:     string(h.Status),
		ActorID:    h.ActorID,
		Comment:    h.Comment,
		CreatedAt:  h.CreatedAt,
	}
}

func itemsToStrings(items map[domain.EntityType]bool) map[string]bool {
	out := make(map[string]bool, len(items))
	for k, v := range items {
		out[string(k)] = v
	}
	return out
}

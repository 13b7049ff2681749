package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type EntityType string

const (
	EntityTypeCampaignInfo    EntityType = "campaign-info"
	EntityTypeCampaignSummary EntityType = "campaign-summary"
	EntityTypeSocials         EntityType = "socials"
)

type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

type Campaign struct {
	CampaignID uuid.UUID
	IssuerID   uuid.UUID
	Slug       string
	Name       string
	Stage      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Issuer struct {
	IssuerID     uuid.UUID
	LegalName    string
	TwitterURL   string
	FacebookURL  string
	LinkedInURL  string
	InstagramURL string
	YouTubeURL   string
	WebsiteURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DashboardSocials struct {
	SocialsID    uuid.UUID
	CampaignID   uuid.UUID
	TwitterURL   string
	FacebookURL  string
	LinkedInURL  string
	InstagramURL string
	YouTubeURL   string
	WebsiteURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CampaignInfo struct {
	InfoID       uuid.UUID
	CampaignID   uuid.UUID
	Headline     string
	Description  string
	HeroImageURL string
	VideoURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CampaignSummary struct {
	SummaryID  uuid.UUID
	CampaignID uuid.UUID
	Body       string
	Highlights string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Submission struct {
	SubmissionID uuid.UUID
	CampaignID   uuid.UUID
	SubmittedBy  uuid.UUID
	Items        map[EntityType]bool
	Note         string
	Status       SubmissionStatus
	Results      map[EntityType]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DashboardApproval struct {
	ApprovalID    uuid.UUID
	CampaignID    uuid.UUID
	Items         map[EntityType]bool
	Status        ApprovalStatus
	SubmittedBy   uuid.UUID
	SubmittedAt   time.Time
	ReviewedBy    *uuid.UUID
	ReviewedAt    *time.Time
	ReviewComment string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ApprovalHistory struct {
	HistoryID  uuid.UUID
	EntityID   uuid.UUID
	EntityType EntityType
	Status     ApprovalStatus
	ActorID    uuid.UUID
	Comment    string
	CreatedAt  time.Time
}

type PendingCampaign struct {
	Campaign    Campaign
	Approval    DashboardApproval
	IssuerName  string
	SubmittedAt time.Time
}

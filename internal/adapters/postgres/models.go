package postgres

import (
	"time"

	"github.com/google/uuid"
)

type campaignModel struct {
	CampaignID uuid.UUID `gorm:"column:campaign_id;type:uuid;default:gen_random_uuid();primaryKey"`
	IssuerID   uuid.UUID `gorm:"column:issuer_id"`
	Slug       string    `gorm:"column:slug"`
	Name       string    `gorm:"column:name"`
	Stage      string    `gorm:"column:stage"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string { return "campaigns" }

type issuerModel struct {
	IssuerID     uuid.UUID `gorm:"column:issuer_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LegalName    string    `gorm:"column:legal_name"`
	TwitterURL   string    `gorm:"column:twitter_url"`
	FacebookURL  string    `gorm:"column:facebook_url"`
	LinkedInURL  string    `gorm:"column:linkedin_url"`
	InstagramURL string    `gorm:"column:instagram_url"`
	YouTubeURL   string    `gorm:"column:youtube_url"`
	WebsiteURL   string    `gorm:"column:website_url"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (issuerModel) TableName() string { return "issuers" }

type socialsModel struct {
	SocialsID    uuid.UUID `gorm:"column:socials_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID   uuid.UUID `gorm:"column:campaign_id"`
	TwitterURL   string    `gorm:"column:twitter_url"`
	FacebookURL  string    `gorm:"column:facebook_url"`
	LinkedInURL  string    `gorm:"column:linkedin_url"`
	InstagramURL string    `gorm:"column:instagram_url"`
	YouTubeURL   string    `gorm:"column:youtube_url"`
	WebsiteURL   string    `gorm:"column:website_url"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (socialsModel) TableName() string { return "dashboard_socials" }

type campaignInfoModel struct {
	InfoID       uuid.UUID `gorm:"column:info_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID   uuid.UUID `gorm:"column:campaign_id"`
	Headline     string    `gorm:"column:headline"`
	Description  string    `gorm:"column:description"`
	HeroImageURL string    `gorm:"column:hero_image_url"`
	VideoURL     string    `gorm:"column:video_url"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (campaignInfoModel) TableName() string { return "campaign_infos" }

type campaignSummaryModel struct {
	SummaryID  uuid.UUID `gorm:"column:summary_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID uuid.UUID `gorm:"column:campaign_id"`
	Body       string    `gorm:"column:body"`
	Highlights string    `gorm:"column:highlights"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (campaignSummaryModel) TableName() string { return "campaign_summaries" }

type submissionModel struct {
	SubmissionID uuid.UUID `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID   uuid.UUID `gorm:"column:campaign_id"`
	SubmittedBy  uuid.UUID `gorm:"column:submitted_by"`
	Items        string    `gorm:"column:items"`
	Note         string    `gorm:"column:note"`
	Status       string    `gorm:"column:status"`
	Results      *string   `gorm:"column:results"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (submissionModel) TableName() string { return "submissions" }

type approvalModel struct {
	ApprovalID    uuid.UUID  `gorm:"column:approval_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID    uuid.UUID  `gorm:"column:campaign_id"`
	Items         string     `gorm:"column:items"`
	Status        string     `gorm:"column:status"`
	SubmittedBy   uuid.UUID  `gorm:"column:submitted_by"`
	SubmittedAt   time.Time  `gorm:"column:submitted_at"`
	ReviewedBy    *uuid.UUID `gorm:"column:reviewed_by"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at"`
	ReviewComment string     `gorm:"column:review_comment"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (approvalModel) TableName() string { return "dashboard_approvals" }

type approvalHistoryModel struct {
	HistoryID  uuid.UUID `gorm:"column:history_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EntityID   uuid.UUID `gorm:"column:entity_id"`
	EntityType string    `gorm:"column:entity_type"`
	Status     string    `gorm:"column:status"`
	ActorID    uuid.UUID `gorm:"column:actor_id"`
	Comment    string    `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (approvalHistoryModel) TableName() string { return "approval_history" }

type outboxModel struct {
	OutboxID      uuid.UUID  `gorm:"column:outbox_id;type:uuid;primaryKey"`
	EventType     string     `gorm:"column:event_type"`
	PartitionKey  string     `gorm:"column:partition_key"`
	Payload       string     `gorm:"column:payload"`
	SchemaVersion string     `gorm:"column:schema_version"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	FirstSeenAt   time.Time  `gorm:"column:first_seen_at"`
	PublishedAt   *time.Time `gorm:"column:published_at"`
	RetryCount    int        `gorm:"column:retry_count"`
	LastError     *string    `gorm:"column:last_error"`
	LastErrorAt   *time.Time `gorm:"column:last_error_at"`
}

func (outboxModel) TableName() string { return "dashboard_outbox" }

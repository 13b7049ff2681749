package ports

import (
	"context"
	"time"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/google/uuid"
)

type CampaignRepository interface {
	GetByID(ctx context.Context, campaignID uuid.UUID) (domain.Campaign, error)
	GetBySlug(ctx context.Context, slug string) (domain.Campaign, error)
}

type IssuerRepository interface {
	GetByID(ctx context.Context, issuerID uuid.UUID) (domain.Issuer, error)
}

type UpsertSocialsParams struct {
	CampaignID   uuid.UUID
	TwitterURL   *string
	FacebookURL  *string
	LinkedInURL  *string
	InstagramURL *string
	YouTubeURL   *string
	WebsiteURL   *string
	Now          time.Time
}

type SocialsRepository interface {
	GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (domain.DashboardSocials, error)
	GetByCampaignSlug(ctx context.Context, slug string) (domain.DashboardSocials, error)
	Upsert(ctx context.Context, params UpsertSocialsParams) (domain.DashboardSocials, error)
}

type UpsertCampaignInfoParams struct {
	CampaignID   uuid.UUID
	Headline     *string
	Description  *string
	HeroImageURL *string
	VideoURL     *string
	Now          time.Time
}

type CampaignInfoRepository interface {
	GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (domain.CampaignInfo, error)
	Upsert(ctx context.Context, params UpsertCampaignInfoParams) (domain.CampaignInfo, error)
}

type UpsertCampaignSummaryParams struct {
	CampaignID uuid.UUID
	Body       *string
	Highlights *string
	Now        time.Time
}

type CampaignSummaryRepository interface {
	GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (domain.CampaignSummary, error)
	Upsert(ctx context.Context, params UpsertCampaignSummaryParams) (domain.CampaignSummary, error)
}

type CreateSubmissionParams struct {
	CampaignID  uuid.UUID
	SubmittedBy uuid.UUID
	Items       map[domain.EntityType]bool
	Note        string
	Now         time.Time
}

type SubmissionRepository interface {
	Create(ctx context.Context, params CreateSubmissionParams) (domain.Submission, error)
	Complete(ctx context.Context, submissionID uuid.UUID, status domain.SubmissionStatus, results map[domain.EntityType]string, at time.Time) error
	GetByID(ctx context.Context, submissionID uuid.UUID) (domain.Submission, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.Submission, error)
}

type UpsertApprovalParams struct {
	CampaignID  uuid.UUID
	Items       map[domain.EntityType]bool
	SubmittedBy uuid.UUID
	Now         time.Time
}

type ReviewParams struct {
	CampaignID  uuid.UUID
	ReviewedBy  uuid.UUID
	EntityTypes []domain.EntityType
	Status      domain.ApprovalStatus
	Comment     string
	Now         time.Time
}

type ApprovalRepository interface {
	GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (domain.DashboardApproval, error)
	// UpsertForSubmission inserts the approval row for a first submission or resets
	// an existing row to pending, replacing its submitted-item flags. A concurrent
	// insert losing the uniqueness race is retried as an update.
	UpsertForSubmission(ctx context.Context, params UpsertApprovalParams) (domain.DashboardApproval, error)
	// Review atomically moves a pending approval to its terminal status and appends
	// one history entry per named entity type. The approval update and all history
	// inserts commit or roll back together.
	Review(ctx context.Context, params ReviewParams) (domain.DashboardApproval, []domain.ApprovalHistory, error)
}

type ApprovalHistoryRepository interface {
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.ApprovalHistory, error)
}

type PendingCampaignFilter struct {
	Page       int
	PerPage    int
	SearchTerm string
	Stage      string
}

type PendingCampaignPage struct {
	Items      []domain.PendingCampaign
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

type ReadRepository interface {
	ListPendingCampaigns(ctx context.Context, filter PendingCampaignFilter) (PendingCampaignPage, error)
}

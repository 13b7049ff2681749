package postgres

import (
	"context"
	"time"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type readRepository struct {
	db *gorm.DB
}

type pendingCampaignRow struct {
	CampaignID      uuid.UUID `gorm:"column:campaign_id"`
	IssuerID        uuid.UUID `gorm:"column:issuer_id"`
	Slug            string    `gorm:"column:slug"`
	Name            string    `gorm:"column:name"`
	Stage           string    `gorm:"column:stage"`
	CampaignCreated time.Time `gorm:"column:campaign_created_at"`
	CampaignUpdated time.Time `gorm:"column:campaign_updated_at"`
	IssuerName      string    `gorm:"column:issuer_name"`
	ApprovalID      uuid.UUID `gorm:"column:approval_id"`
	Items           string    `gorm:"column:items"`
	Status          string    `gorm:"column:status"`
	SubmittedBy     uuid.UUID `gorm:"column:submitted_by"`
	SubmittedAt     time.Time `gorm:"column:submitted_at"`
	ReviewComment   string    `gorm:"column:review_comment"`
}

func (r *readRepository) ListPendingCampaigns(ctx context.Context, filter ports.PendingCampaignFilter) (ports.PendingCampaignPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}

	base := r.db.WithContext(ctx).
		Table("dashboard_approvals").
		Joins("JOIN campaigns ON campaigns.campaign_id = dashboard_approvals.campaign_id").
		Joins("JOIN issuers ON issuers.issuer_id = campaigns.issuer_id").
		Where("dashboard_approvals.status = ?", string(domain.ApprovalStatusPending))

	if filter.SearchTerm != "" {
		term := "%" + filter.SearchTerm + "%"
		base = base.Where("campaigns.name ILIKE ? OR campaigns.slug ILIKE ? OR issuers.legal_name ILIKE ?", term, term, term)
	}
	if filter.Stage != "" {
		base = base.Where("campaigns.stage = ?", filter.Stage)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ports.PendingCampaignPage{}, err
	}

	var rows []pendingCampaignRow
	err := base.Session(&gorm.Session{}).
		Select(`campaigns.campaign_id, campaigns.issuer_id, campaigns.slug, campaigns.name, campaigns.stage,
			campaigns.created_at AS campaign_created_at, campaigns.updated_at AS campaign_updated_at,
			issuers.legal_name AS issuer_name,
			dashboard_approvals.approval_id, dashboard_approvals.items, dashboard_approvals.status,
			dashboard_approvals.submitted_by, dashboard_approvals.submitted_at, dashboard_approvals.review_comment`).
		Order("dashboard_approvals.submitted_at ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Scan(&rows).Error
	if err != nil {
		return ports.PendingCampaignPage{}, err
	}

	items := make([]domain.PendingCampaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.PendingCampaign{
			Campaign: domain.Campaign{
				CampaignID: row.CampaignID,
				IssuerID:   row.IssuerID,
				Slug:       row.Slug,
				Name:       row.Name,
				Stage:      row.Stage,
				CreatedAt:  row.CampaignCreated,
				UpdatedAt:  row.CampaignUpdated,
			},
			Approval: domain.DashboardApproval{
				ApprovalID:    row.ApprovalID,
				CampaignID:    row.CampaignID,
				Items:         decodeItems(row.Items),
				Status:        domain.ApprovalStatus(row.Status),
				SubmittedBy:   row.SubmittedBy,
				SubmittedAt:   row.SubmittedAt,
				ReviewComment: row.ReviewComment,
			},
			IssuerName:  row.IssuerName,
			SubmittedAt: row.SubmittedAt,
		})
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return ports.PendingCampaignPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

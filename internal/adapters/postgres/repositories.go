package postgres

import (
	"github.com/fundforge/dashboard-service/internal/ports"
	"gorm.io/gorm"
)

// Repositories bundles the persistence adapters behind their port interfaces.
type Repositories struct {
	Campaigns         ports.CampaignRepository
	Issuers           ports.IssuerRepository
	Socials           ports.SocialsRepository
	CampaignInfos     ports.CampaignInfoRepository
	CampaignSummaries ports.CampaignSummaryRepository
	Submissions       ports.SubmissionRepository
	Approvals         ports.ApprovalRepository
	ApprovalHistories ports.ApprovalHistoryRepository
	Reads             ports.ReadRepository
	Outbox            ports.OutboxRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Campaigns:         &campaignRepository{db: db},
		Issuers:           &issuerRepository{db: db},
		Socials:           &socialsRepository{db: db},
		CampaignInfos:     &campaignInfoRepository{db: db},
		CampaignSummaries: &campaignSummaryRepository{db: db},
		Submissions:       &submissionRepository{db: db},
		Approvals:         &approvalRepository{db: db},
		ApprovalHistories: &approvalHistoryRepository{db: db},
		Reads:             &readRepository{db: db},
		Outbox:            &outboxRepository{db: db},
	}
}

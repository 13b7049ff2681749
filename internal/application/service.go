package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/fundforge/dashboard-service/internal/ports"
)

type Config struct {
	ServiceName     string
	SocialsCacheTTL time.Duration
	DefaultPerPage  int
	MaxPerPage      int
	HistoryLimit    int
}

// NotificationSink receives in-process events after a state change commits.
type NotificationSink interface {
	Dispatch(ctx context.Context, n ports.Notification)
}

type Service struct {
	cfg        Config
	logger     *slog.Logger
	campaigns  ports.CampaignRepository
	issuers    ports.IssuerRepository
	socials    ports.SocialsRepository
	infos      ports.CampaignInfoRepository
	summaries  ports.CampaignSummaryRepository
	subs       ports.SubmissionRepository
	approvals  ports.ApprovalRepository
	histories  ports.ApprovalHistoryRepository
	reads      ports.ReadRepository
	outbox     ports.OutboxRepository
	cache      ports.Cache
	verifier   ports.TokenVerifier
	dispatcher NotificationSink
	nowFn      func() time.Time
}

type Dependencies struct {
	Config     Config
	Logger     *slog.Logger
	Campaigns  ports.CampaignRepository
	Issuers    ports.IssuerRepository
	Socials    ports.SocialsRepository
	Infos      ports.CampaignInfoRepository
	Summaries  ports.CampaignSummaryRepository
	Subs       ports.SubmissionRepository
	Approvals  ports.ApprovalRepository
	Histories  ports.ApprovalHistoryRepository
	Reads      ports.ReadRepository
	Outbox     ports.OutboxRepository
	Cache      ports.Cache
	Verifier   ports.TokenVerifier
	Dispatcher NotificationSink
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "dashboard-service"
	}
	if cfg.SocialsCacheTTL <= 0 {
		cfg.SocialsCacheTTL = 5 * time.Minute
	}
	if cfg.DefaultPerPage <= 0 {
		cfg.DefaultPerPage = 20
	}
	if cfg.MaxPerPage <= 0 {
		cfg.MaxPerPage = 100
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 100
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		cfg:        cfg,
		logger:     logger,
		campaigns:  deps.Campaigns,
		issuers:    deps.Issuers,
		socials:    deps.Socials,
		infos:      deps.Infos,
		summaries:  deps.Summaries,
		subs:       deps.Subs,
		approvals:  deps.Approvals,
		histories:  deps.Histories,
		reads:      deps.Reads,
		outbox:     deps.Outbox,
		cache:      deps.Cache,
		verifier:   deps.Verifier,
		dispatcher: deps.Dispatcher,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}

// ValidateToken checks a bearer token and returns its claims.
func (s *Service) ValidateToken(_ context.Context, raw string) (ports.AuthClaims, error) {
	return s.verifier.ParseAndValidate(raw)
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

// Store is an in-memory implementation of every persistence port. It backs
// unit tests and local runs without Postgres.
type Store struct {
	mu        sync.RWMutex
	campaigns map[uuid.UUID]domain.Campaign
	issuers   map[uuid.UUID]domain.Issuer
	socials   map[uuid.UUID]domain.DashboardSocials
	infos     map[uuid.UUID]domain.CampaignInfo
	summaries map[uuid.UUID]domain.CampaignSummary
	subs      map[uuid.UUID]domain.Submission
	approvals map[uuid.UUID]domain.DashboardApproval
	history   []domain.ApprovalHistory
	outbox    []ports.OutboxRecord
}

func NewStore() *Store {
	return &Store{
		campaigns: map[uuid.UUID]domain.Campaign{},
		issuers:   map[uuid.UUID]domain.Issuer{},
		socials:   map[uuid.UUID]domain.DashboardSocials{},
		infos:     map[uuid.UUID]domain.CampaignInfo{},
		summaries: map[uuid.UUID]domain.CampaignSummary{},
		subs:      map[uuid.UUID]domain.Submission{},
		approvals: map[uuid.UUID]domain.DashboardApproval{},
	}
}

// Seed helpers used by tests.

func (s *Store) PutCampaign(c domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.CampaignID] = c
}

func (s *Store) PutIssuer(i domain.Issuer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuers[i.IssuerID] = i
}

func (s *Store) PutSocials(soc domain.DashboardSocials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.socials[soc.CampaignID] = soc
}

func (s *Store) ApprovalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.approvals)
}

func (s *Store) HistoryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

func (s *Store) OutboxEvents() []ports.OutboxRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.OutboxRecord(nil), s.outbox...)
}

// CampaignRepository

func (s *Store) GetByID(_ context.Context, campaignID uuid.UUID) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[campaignID]
	if !ok {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *Store) GetBySlug(_ context.Context, slug string) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slug = domain.NormalizeSlug(slug)
	for _, c := range s.campaigns {
		if c.Slug == slug {
			return c, nil
		}
	}
	return domain.Campaign{}, domain.ErrNotFound
}

// IssuerRepository is exposed through a wrapper so GetByID does not collide
// with the campaign lookup.

type IssuerStore struct {
	store *Store
}

func (s *Store) Issuers() *IssuerStore { return &IssuerStore{store: s} }

func (i *IssuerStore) GetByID(_ context.Context, issuerID uuid.UUID) (domain.Issuer, error) {
	i.store.mu.RLock()
	defer i.store.mu.RUnlock()
	iss, ok := i.store.issuers[issuerID]
	if !ok {
		return domain.Issuer{}, domain.ErrIssuerMissing
	}
	return iss, nil
}

// SocialsRepository

type SocialsStore struct {
	store *Store
}

func (s *Store) Socials() *SocialsStore { return &SocialsStore{store: s} }

func (ss *SocialsStore) GetByCampaignID(_ context.Context, campaignID uuid.UUID) (domain.DashboardSocials, error) {
	ss.store.mu.RLock()
	defer ss.store.mu.RUnlock()
	soc, ok := ss.store.socials[campaignID]
	if !ok {
		return domain.DashboardSocials{}, domain.ErrNotFound
	}
	return soc, nil
}

func (ss *SocialsStore) GetByCampaignSlug(ctx context.Context, slug string) (domain.DashboardSocials, error) {
	campaign, err := ss.store.GetBySlug(ctx, slug)
	if err != nil {
		return domain.DashboardSocials{}, err
	}
	return ss.GetByCampaignID(ctx, campaign.CampaignID)
}

func (ss *SocialsStore) Upsert(_ context.Context, params ports.UpsertSocialsParams) (domain.DashboardSocials, error) {
	ss.store.mu.Lock()
	defer ss.store.mu.Unlock()
	soc, ok := ss.store.socials[params.CampaignID]
	if !ok {
		soc = domain.DashboardSocials{
			SocialsID:  uuid.New(),
			CampaignID: params.CampaignID,
			CreatedAt:  params.Now,
		}
	}
	if params.TwitterURL != nil {
		soc.TwitterURL = *params.TwitterURL
	}
	if params.FacebookURL != nil {
		soc.FacebookURL = *params.FacebookURL
	}
	if params.LinkedInURL != nil {
		soc.LinkedInURL = *params.LinkedInURL
	}
	if params.InstagramURL != nil {
		soc.InstagramURL = *params.InstagramURL
	}
	if params.YouTubeURL != nil {
		soc.YouTubeURL = *params.YouTubeURL
	}
	if params.WebsiteURL != nil {
		soc.WebsiteURL = *params.WebsiteURL
	}
	soc.UpdatedAt = params.Now
	ss.store.socials[params.CampaignID] = soc
	return soc, nil
}

// CampaignInfoRepository

type InfoStore struct {
	store *Store
}

func (s *Store) Infos() *InfoStore { return &InfoStore{store: s} }

func (is *InfoStore) GetByCampaignID(_ context.Context, campaignID uuid.UUID) (domain.CampaignInfo, error) {
	is.store.mu.RLock()
	defer is.store.mu.RUnlock()
	info, ok := is.store.infos[campaignID]
	if !ok {
		return domain.CampaignInfo{}, domain.ErrNotFound
	}
	return info, nil
}

func (is *InfoStore) Upsert(_ context.Context, params ports.UpsertCampaignInfoParams) (domain.CampaignInfo, error) {
	is.store.mu.Lock()
	defer is.store.mu.Unlock()
	info, ok := is.store.infos[params.CampaignID]
	if !ok {
		info = domain.CampaignInfo{
			InfoID:     uuid.New(),
			CampaignID: params.CampaignID,
			CreatedAt:  params.Now,
		}
	}
	if params.Headline != nil {
		info.Headline = *params.Headline
	}
	if params.Description != nil {
		info.Description = *params.Description
	}
	if params.HeroImageURL != nil {
		info.HeroImageURL = *params.HeroImageURL
	}
	if params.VideoURL != nil {
		info.VideoURL = *params.VideoURL
	}
	info.UpdatedAt = params.Now
	is.store.infos[params.CampaignID] = info
	return info, nil
}

// CampaignSummaryRepository

type SummaryStore struct {
	store *Store
}

func (s *Store) Summaries() *SummaryStore { return &SummaryStore{store: s} }

func (ss *SummaryStore) GetByCampaignID(_ context.Context, campaignID uuid.UUID) (domain.CampaignSummary, error) {
	ss.store.mu.RLock()
	defer ss.store.mu.RUnlock()
	summary, ok := ss.store.summaries[campaignID]
	if !ok {
		return domain.CampaignSummary{}, domain.ErrNotFound
	}
	return summary, nil
}

func (ss *SummaryStore) Upsert(_ context.Context, params ports.UpsertCampaignSummaryParams) (domain.CampaignSummary, error) {
	ss.store.mu.Lock()
	defer ss.store.mu.Unlock()
	summary, ok := ss.store.summaries[params.CampaignID]
	if !ok {
		summary = domain.CampaignSummary{
			SummaryID:  uuid.New(),
			CampaignID: params.CampaignID,
			CreatedAt:  params.Now,
		}
	}
	if params.Body != nil {
		summary.Body = *params.Body
	}
	if params.Highlights != nil {
		summary.Highlights = *params.Highlights
	}
	summary.UpdatedAt = params.Now
	ss.store.summaries[params.CampaignID] = summary
	return summary, nil
}

// SubmissionRepository

type SubmissionStore struct {
	store *Store
}

func (s *Store) Submissions() *SubmissionStore { return &SubmissionStore{store: s} }

func (ss *SubmissionStore) Create(_ context.Context, params ports.CreateSubmissionParams) (domain.Submission, error) {
	ss.store.mu.Lock()
	defer ss.store.mu.Unlock()
	sub := domain.Submission{
		SubmissionID: uuid.New(),
		CampaignID:   params.CampaignID,
		SubmittedBy:  params.SubmittedBy,
		Items:        domain.CloneItems(params.Items),
		Note:         params.Note,
		Status:       domain.SubmissionStatusPending,
		CreatedAt:    params.Now,
		UpdatedAt:    params.Now,
	}
	ss.store.subs[sub.SubmissionID] = sub
	return sub, nil
}

func (ss *SubmissionStore) Complete(_ context.Context, submissionID uuid.UUID, status domain.SubmissionStatus, results map[domain.EntityType]string, at time.Time) error {
	ss.store.mu.Lock()
	defer ss.store.mu.Unlock()
	sub, ok := ss.store.subs[submissionID]
	if !ok {
		return domain.ErrNotFound
	}
	sub.Status = status
	sub.Results = results
	sub.UpdatedAt = at
	ss.store.subs[submissionID] = sub
	return nil
}

func (ss *SubmissionStore) GetByID(_ context.Context, submissionID uuid.UUID) (domain.Submission, error) {
	ss.store.mu.RLock()
	defer ss.store.mu.RUnlock()
	sub, ok := ss.store.subs[submissionID]
	if !ok {
		return domain.Submission{}, domain.ErrNotFound
	}
	return sub, nil
}

func (ss *SubmissionStore) ListByCampaign(_ context.Context, campaignID uuid.UUID, limit int) ([]domain.Submission, error) {
	ss.store.mu.RLock()
	defer ss.store.mu.RUnlock()
	if limit <= 0 {
		limit = 20
	}
	out := make([]domain.Submission, 0)
	for _, sub := range ss.store.subs {
		if sub.CampaignID == campaignID {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ApprovalRepository

type ApprovalStore struct {
	store *Store
}

func (s *Store) Approvals() *ApprovalStore { return &ApprovalStore{store: s} }

func (as *ApprovalStore) GetByCampaignID(_ context.Context, campaignID uuid.UUID) (domain.DashboardApproval, error) {
	as.store.mu.RLock()
	defer as.store.mu.RUnlock()
	appr, ok := as.store.approvals[campaignID]
	if !ok {
		return domain.DashboardApproval{}, domain.ErrNotFound
	}
	appr.Items = domain.CloneItems(appr.Items)
	return appr, nil
}

func (as *ApprovalStore) UpsertForSubmission(_ context.Context, params ports.UpsertApprovalParams) (domain.DashboardApproval, error) {
	as.store.mu.Lock()
	defer as.store.mu.Unlock()
	appr, ok := as.store.approvals[params.CampaignID]
	if !ok {
		appr = domain.DashboardApproval{
			ApprovalID: uuid.New(),
			CampaignID: params.CampaignID,
			CreatedAt:  params.Now,
		}
	}
	appr.Items = domain.CloneItems(params.Items)
	appr.Status = domain.ApprovalStatusPending
	appr.SubmittedBy = params.SubmittedBy
	appr.SubmittedAt = params.Now
	appr.ReviewedBy = nil
	appr.ReviewedAt = nil
	appr.ReviewComment = ""
	appr.UpdatedAt = params.Now
	as.store.approvals[params.CampaignID] = appr
	return appr, nil
}

func (as *ApprovalStore) Review(_ context.Context, params ports.ReviewParams) (domain.DashboardApproval, []domain.ApprovalHistory, error) {
	as.store.mu.Lock()
	defer as.store.mu.Unlock()
	appr, ok := as.store.approvals[params.CampaignID]
	if !ok {
		return domain.DashboardApproval{}, nil, domain.ErrNotFound
	}
	if err := domain.ValidateApprovalTransition(appr.Status, params.Status); err != nil {
		return domain.DashboardApproval{}, nil, err
	}

	reviewedBy := params.ReviewedBy
	reviewedAt := params.Now
	appr.Status = params.Status
	appr.ReviewedBy = &reviewedBy
	appr.ReviewedAt = &reviewedAt
	appr.ReviewComment = params.Comment
	appr.UpdatedAt = params.Now
	as.store.approvals[params.CampaignID] = appr

	entries := make([]domain.ApprovalHistory, 0, len(params.EntityTypes))
	for _, entityType := range params.EntityTypes {
		entry := domain.ApprovalHistory{
			HistoryID:  uuid.New(),
			EntityID:   params.CampaignID,
			EntityType: entityType,
			Status:     params.Status,
			ActorID:    params.ReviewedBy,
			Comment:    params.Comment,
			CreatedAt:  params.Now,
		}
		as.store.history = append(as.store.history, entry)
		entries = append(entries, entry)
	}
	return appr, entries, nil
}

// ApprovalHistoryRepository

type HistoryStore struct {
	store *Store
}

func (s *Store) Histories() *HistoryStore { return &HistoryStore{store: s} }

func (hs *HistoryStore) ListByCampaign(_ context.Context, campaignID uuid.UUID, limit int) ([]domain.ApprovalHistory, error) {
	hs.store.mu.RLock()
	defer hs.store.mu.RUnlock()
	if limit <= 0 {
		limit = 50
	}
	out := make([]domain.ApprovalHistory, 0)
	for _, entry := range hs.store.history {
		if entry.EntityID == campaignID {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ReadRepository

type ReadStore struct {
	store *Store
}

func (s *Store) Reads() *ReadStore { return &ReadStore{store: s} }

func (rs *ReadStore) ListPendingCampaigns(_ context.Context, filter ports.PendingCampaignFilter) (ports.PendingCampaignPage, error) {
	rs.store.mu.RLock()
	defer rs.store.mu.RUnlock()
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}

	matched := make([]domain.PendingCampaign, 0)
	for campaignID, appr := range rs.store.approvals {
		if appr.Status != domain.ApprovalStatusPending {
			continue
		}
		campaign, ok := rs.store.campaigns[campaignID]
		if !ok {
			continue
		}
		issuer := rs.store.issuers[campaign.IssuerID]
		if filter.Stage != "" && campaign.Stage != filter.Stage {
			continue
		}
		if filter.SearchTerm != "" {
			term := strings.ToLower(filter.SearchTerm)
			if !strings.Contains(strings.ToLower(campaign.Name), term) &&
				!strings.Contains(strings.ToLower(campaign.Slug), term) &&
				!strings.Contains(strings.ToLower(issuer.LegalName), term) {
				continue
			}
		}
		matched = append(matched, domain.PendingCampaign{
			Campaign:    campaign,
			Approval:    appr,
			IssuerName:  issuer.LegalName,
			SubmittedAt: appr.SubmittedAt,
		})
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SubmittedAt.Before(matched[j].SubmittedAt) })

	total := int64(len(matched))
	start := (page - 1) * perPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return ports.PendingCampaignPage{
		Items:      matched[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// OutboxRepository

type OutboxStore struct {
	store *Store
}

func (s *Store) Outbox() *OutboxStore { return &OutboxStore{store: s} }

func (os *OutboxStore) Enqueue(_ context.Context, event ports.OutboxEvent) error {
	os.store.mu.Lock()
	defer os.store.mu.Unlock()
	for _, rec := range os.store.outbox {
		if rec.OutboxID == event.EventID {
			return nil
		}
	}
	os.store.outbox = append(os.store.outbox, ports.OutboxRecord{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.PartitionKey,
		Payload:      event.Payload,
		FirstSeenAt:  event.OccurredAt,
	})
	return nil
}

func (os *OutboxStore) FetchUnpublished(_ context.Context, limit int) ([]ports.OutboxRecord, error) {
	os.store.mu.RLock()
	defer os.store.mu.RUnlock()
	if limit <= 0 {
		limit = 100
	}
	out := make([]ports.OutboxRecord, 0)
	for _, rec := range os.store.outbox {
		if rec.PublishedAt == nil {
			out = append(out, rec)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (os *OutboxStore) MarkPublished(_ context.Context, outboxID uuid.UUID, at time.Time) error {
	os.store.mu.Lock()
	defer os.store.mu.Unlock()
	for i := range os.store.outbox {
		if os.store.outbox[i].OutboxID == outboxID {
			published := at
			os.store.outbox[i].PublishedAt = &published
			return nil
		}
	}
	return domain.ErrNotFound
}

func (os *OutboxStore) MarkFailed(_ context.Context, outboxID uuid.UUID, errMsg string, at time.Time) error {
	os.store.mu.Lock()
	defer os.store.mu.Unlock()
	for i := range os.store.outbox {
		if os.store.outbox[i].OutboxID == outboxID {
			os.store.outbox[i].RetryCount++
			msg := errMsg
			os.store.outbox[i].LastError = &msg
			return nil
		}
	}
	return domain.ErrNotFound
}

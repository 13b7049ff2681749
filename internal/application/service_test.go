package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fundforge/dashboard-service/internal/adapters/memory"
	"github.com/fundforge/dashboard-service/internal/application"
	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

type recordingSink struct {
	mu            sync.Mutex
	notifications []ports.Notification
}

func (r *recordingSink) Dispatch(_ context.Context, n ports.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingSink) all() []ports.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.Notification(nil), r.notifications...)
}

type fixture struct {
	svc        *application.Service
	store      *memory.Store
	sink       *recordingSink
	campaignID uuid.UUID
	issuerID   uuid.UUID
	userID     uuid.UUID
	adminID    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	sink := &recordingSink{}
	svc := application.NewService(application.Dependencies{
		Campaigns:  store,
		Issuers:    store.Issuers(),
		Socials:    store.Socials(),
		Infos:      store.Infos(),
		Summaries:  store.Summaries(),
		Subs:       store.Submissions(),
		Approvals:  store.Approvals(),
		Histories:  store.Histories(),
		Reads:      store.Reads(),
		Outbox:     store.Outbox(),
		Dispatcher: sink,
	})

	f := &fixture{
		svc:        svc,
		store:      store,
		sink:       sink,
		campaignID: uuid.New(),
		issuerID:   uuid.New(),
		userID:     uuid.New(),
		adminID:    uuid.New(),
	}
	now := time.Now().UTC()
	store.PutIssuer(domain.Issuer{
		IssuerID:   f.issuerID,
		LegalName:  "Acme Renewables Ltd",
		TwitterURL: "https://twitter.com/acme",
		WebsiteURL: "https://acme.example",
		UpdatedAt:  now,
	})
	store.PutCampaign(domain.Campaign{
		CampaignID: f.campaignID,
		IssuerID:   f.issuerID,
		Slug:       "acme-solar",
		Name:       "Acme Solar",
		Stage:      "live",
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return f
}

func (f *fixture) submit(t *testing.T, types ...string) application.SubmitResponse {
	t.Helper()
	resp, err := f.svc.SubmitForReview(context.Background(), f.userID, application.SubmitRequest{
		CampaignID:  f.campaignID,
		EntityTypes: types,
	})
	if err != nil {
		t.Fatalf("submit for review: %v", err)
	}
	return resp
}

func TestSubmitForReviewFlagsAndResults(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if _, err := f.svc.UpdateCampaignInfo(context.Background(), f.userID, f.campaignID, application.UpdateCampaignInfoRequest{
		Headline: strPtr("Power the valley"),
	}); err != nil {
		t.Fatalf("update campaign info: %v", err)
	}

	resp := f.submit(t, "campaign-info", "socials")

	if resp.Status != string(domain.SubmissionStatusCompleted) {
		t.Fatalf("expected completed submission, got %s", resp.Status)
	}
	if resp.Results["campaign-info"] != "submitted" {
		t.Fatalf("expected campaign-info submitted, got %v", resp.Results)
	}
	if resp.Results["socials"] != "missing" {
		t.Fatalf("expected socials missing, got %v", resp.Results)
	}
	if _, listed := resp.Results["campaign-summary"]; listed {
		t.Fatalf("campaign-summary was not requested, got %v", resp.Results)
	}

	items := resp.Approval.Items
	if !items["campaign-info"] || !items["socials"] || items["campaign-summary"] {
		t.Fatalf("expected exactly the named kinds flagged, got %v", items)
	}
	if resp.Approval.Status != string(domain.ApprovalStatusPending) {
		t.Fatalf("expected pending approval, got %s", resp.Approval.Status)
	}
}

func TestSubmitUnknownCampaign(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.SubmitForReview(context.Background(), f.userID, application.SubmitRequest{
		CampaignID:  uuid.New(),
		EntityTypes: []string{"socials"},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubmitRejectsUnknownEntityType(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.SubmitForReview(context.Background(), f.userID, application.SubmitRequest{
		CampaignID:  f.campaignID,
		EntityTypes: []string{"banner"},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResubmissionReplacesItemFlags(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.submit(t, "campaign-info")
	resp := f.submit(t, "socials")

	items := resp.Approval.Items
	if items["campaign-info"] {
		t.Fatalf("expected campaign-info flag cleared on resubmission, got %v", items)
	}
	if !items["socials"] {
		t.Fatalf("expected socials flagged, got %v", items)
	}
	if f.store.ApprovalCount() != 1 {
		t.Fatalf("expected single approval row, got %d", f.store.ApprovalCount())
	}
}

func TestResubmissionAfterReviewResetsToPending(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.submit(t, "campaign-info")
	if _, err := f.svc.Review(context.Background(), f.adminID, application.ReviewRequest{
		CampaignID:  f.campaignID,
		Action:      "approve",
		EntityTypes: []string{"campaign-info"},
	}); err != nil {
		t.Fatalf("review: %v", err)
	}

	resp := f.submit(t, "campaign-summary")
	if resp.Approval.Status != string(domain.ApprovalStatusPending) {
		t.Fatalf("expected approval reset to pending, got %s", resp.Approval.Status)
	}
	if resp.Approval.ReviewedBy != nil || resp.Approval.ReviewedAt != nil {
		t.Fatalf("expected reviewer fields cleared, got %+v", resp.Approval)
	}
}

func TestReviewAppendsHistoryPerEntityType(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.submit(t, "campaign-info", "socials")
	resp, err := f.svc.Review(context.Background(), f.adminID, application.ReviewRequest{
		CampaignID:  f.campaignID,
		Action:      "approve",
		EntityTypes: []string{"campaign-info", "socials"},
	})
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	if resp.Approval.Status != string(domain.ApprovalStatusApproved) {
		t.Fatalf("expected approved, got %s", resp.Approval.Status)
	}
	if len(resp.History) != 2 {
		t.Fatalf("expected one history entry per entity type, got %d", len(resp.History))
	}
	for _, entry := range resp.History {
		if entry.EntityID != f.campaignID || entry.Status != string(domain.ApprovalStatusApproved) || entry.ActorID != f.adminID {
			t.Fatalf("unexpected history entry: %+v", entry)
		}
	}

	entries, err := f.svc.ListApprovalHistory(context.Background(), f.campaignID)
	if err != nil {
		t.Fatalf("list approval history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected persisted ledger of 2 entries, got %d", len(entries))
	}
}

func TestRejectRequiresComment(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.submit(t, "socials")
	_, err := f.svc.Review(context.Background(), f.adminID, application.ReviewRequest{
		CampaignID:  f.campaignID,
		Action:      "reject",
		EntityTypes: []string{"socials"},
		Comment:     "   ",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if f.store.HistoryCount() != 0 {
		t.Fatalf("expected no ledger entries for rejected validation, got %d", f.store.HistoryCount())
	}
}

func TestReviewStateConflictWritesNoHistory(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.submit(t, "socials")
	review := application.ReviewRequest{
		CampaignID:  f.campaignID,
		Action:      "approve",
		EntityTypes: []string{"socials"},
	}
	if _, err := f.svc.Review(context.Background(), f.adminID, review); err != nil {
		t.Fatalf("first review: %v", err)
	}
	before := f.store.HistoryCount()

	_, err := f.svc.Review(context.Background(), f.adminID, review)
	if !errors.Is(err, domain.ErrStateConflict) {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if f.store.HistoryCount() != before {
		t.Fatalf("state conflict must not append history: %d -> %d", before, f.store.HistoryCount())
	}
}

func TestSocialsIssuerFallback(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, err := f.svc.GetSocialsByCampaignSlug(context.Background(), "acme-solar")
	if err != nil {
		t.Fatalf("get socials: %v", err)
	}
	if resp.Source != "issuer" {
		t.Fatalf("expected issuer fallback, got %s", resp.Source)
	}
	if resp.TwitterURL != "https://twitter.com/acme" || resp.WebsiteURL != "https://acme.example" {
		t.Fatalf("expected issuer links remapped, got %+v", resp)
	}

	again, err := f.svc.GetSocialsByCampaignSlug(context.Background(), "acme-solar")
	if err != nil {
		t.Fatalf("second get socials: %v", err)
	}
	if again != resp {
		t.Fatalf("read must be idempotent: %+v vs %+v", resp, again)
	}
}

func TestSocialsDashboardRowWins(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if _, err := f.svc.UpdateSocials(context.Background(), f.userID, f.campaignID, application.UpdateSocialsRequest{
		TwitterURL: strPtr("https://twitter.com/acmesolar"),
	}); err != nil {
		t.Fatalf("update socials: %v", err)
	}

	resp, err := f.svc.GetSocialsByCampaignSlug(context.Background(), "acme-solar")
	if err != nil {
		t.Fatalf("get socials: %v", err)
	}
	if resp.Source != "dashboard" {
		t.Fatalf("expected dashboard row to win, got %s", resp.Source)
	}
	if resp.TwitterURL != "https://twitter.com/acmesolar" {
		t.Fatalf("expected campaign twitter, got %s", resp.TwitterURL)
	}
}

func TestSocialsUnknownCampaignSlug(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.GetSocialsByCampaignSlug(context.Background(), "no-such-campaign")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSocialsMissingIssuer(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	orphanID := uuid.New()
	f.store.PutCampaign(domain.Campaign{
		CampaignID: orphanID,
		IssuerID:   uuid.New(),
		Slug:       "orphan-campaign",
		Name:       "Orphan",
	})

	_, err := f.svc.GetSocialsByCampaignSlug(context.Background(), "orphan-campaign")
	if !errors.Is(err, domain.ErrIssuerMissing) {
		t.Fatalf("expected issuer missing, got %v", err)
	}
}

func TestConcurrentSubmitSingleApprovalRow(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.svc.SubmitForReview(context.Background(), f.userID, application.SubmitRequest{
				CampaignID:  f.campaignID,
				EntityTypes: []string{"socials"},
			})
		}()
	}
	wg.Wait()

	if f.store.ApprovalCount() != 1 {
		t.Fatalf("expected exactly one approval row, got %d", f.store.ApprovalCount())
	}
}

func TestListPendingCampaigns(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.submit(t, "campaign-info")

	resp, err := f.svc.ListPendingCampaigns(context.Background(), application.PendingCampaignsQuery{})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("expected one pending campaign, got %+v", resp)
	}
	item := resp.Items[0]
	if item.CampaignID != f.campaignID || item.IssuerName != "Acme Renewables Ltd" {
		t.Fatalf("unexpected pending item: %+v", item)
	}

	filtered, err := f.svc.ListPendingCampaigns(context.Background(), application.PendingCampaignsQuery{SearchTerm: "acme"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if filtered.Total != 1 {
		t.Fatalf("expected search hit, got %+v", filtered)
	}

	missed, err := f.svc.ListPendingCampaigns(context.Background(), application.PendingCampaignsQuery{SearchTerm: "zebra"})
	if err != nil {
		t.Fatalf("missed list: %v", err)
	}
	if missed.Total != 0 {
		t.Fatalf("expected empty result, got %+v", missed)
	}

	staged, err := f.svc.ListPendingCampaigns(context.Background(), application.PendingCampaignsQuery{CampaignStage: "closed"})
	if err != nil {
		t.Fatalf("staged list: %v", err)
	}
	if staged.Total != 0 {
		t.Fatalf("expected no campaigns in closed stage, got %+v", staged)
	}

	if _, err := f.svc.Review(context.Background(), f.adminID, application.ReviewRequest{
		CampaignID:  f.campaignID,
		Action:      "approve",
		EntityTypes: []string{"campaign-info"},
	}); err != nil {
		t.Fatalf("review: %v", err)
	}
	after, err := f.svc.ListPendingCampaigns(context.Background(), application.PendingCampaignsQuery{})
	if err != nil {
		t.Fatalf("post-review list: %v", err)
	}
	if after.Total != 0 {
		t.Fatalf("reviewed campaign must leave the queue, got %+v", after)
	}
}

func TestSubmitAndReviewEmitEvents(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.submit(t, "socials")
	if _, err := f.svc.Review(context.Background(), f.adminID, application.ReviewRequest{
		CampaignID:  f.campaignID,
		Action:      "reject",
		EntityTypes: []string{"socials"},
		Comment:     "links point to the wrong company",
	}); err != nil {
		t.Fatalf("review: %v", err)
	}

	events := f.store.OutboxEvents()
	if len(events) != 2 {
		t.Fatalf("expected 2 outbox events, got %d", len(events))
	}
	if events[0].EventType != "dashboard.submission_submitted" || events[1].EventType != "dashboard.reviewed" {
		t.Fatalf("unexpected event types: %s, %s", events[0].EventType, events[1].EventType)
	}

	notes := f.sink.all()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notes))
	}
	if notes[1].Status != domain.ApprovalStatusRejected || notes[1].Comment == "" {
		t.Fatalf("unexpected review notification: %+v", notes[1])
	}
}

func TestGetApproval(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if _, err := f.svc.GetApproval(context.Background(), f.campaignID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found before any submission, got %v", err)
	}

	f.submit(t, "socials")
	approval, err := f.svc.GetApproval(context.Background(), f.campaignID)
	if err != nil {
		t.Fatalf("get approval: %v", err)
	}
	if approval.Status != string(domain.ApprovalStatusPending) || approval.SubmittedBy != f.userID {
		t.Fatalf("unexpected approval: %+v", approval)
	}
}

func strPtr(s string) *string { return &s }

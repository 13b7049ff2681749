package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fundforge/dashboard-service/internal/adapters/events"
	httpadapter "github.com/fundforge/dashboard-service/internal/adapters/http"
	"github.com/fundforge/dashboard-service/internal/adapters/memory"
	"github.com/fundforge/dashboard-service/internal/application"
	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

type stubVerifier struct {
	tokens map[string]ports.AuthClaims
}

func (v *stubVerifier) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	claims, ok := v.tokens[raw]
	if !ok {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

type testEnv struct {
	server     *httptest.Server
	store      *memory.Store
	campaignID uuid.UUID
	userID     uuid.UUID
	adminID    uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		store:      store,
		campaignID: uuid.New(),
		userID:     uuid.New(),
		adminID:    uuid.New(),
	}

	verifier := &stubVerifier{tokens: map[string]ports.AuthClaims{
		"user-token":  {UserID: env.userID, Email: "owner@acme.example", Role: "USER"},
		"admin-token": {UserID: env.adminID, Email: "ops@fundforge.example", Role: "ADMIN"},
	}}

	svc := application.NewService(application.Dependencies{
		Logger:     logger,
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
		Verifier:   verifier,
		Dispatcher: events.NewDispatcher(logger),
	})

	issuerID := uuid.New()
	now := time.Now().UTC()
	store.PutIssuer(domain.Issuer{
		IssuerID:   issuerID,
		LegalName:  "Acme Renewables Ltd",
		TwitterURL: "https://twitter.com/acme",
		UpdatedAt:  now,
	})
	store.PutCampaign(domain.Campaign{
		CampaignID: env.campaignID,
		IssuerID:   issuerID,
		Slug:       "acme-solar",
		Name:       "Acme Solar",
		Stage:      "live",
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	router := httpadapter.NewRouter(httpadapter.NewHandler(svc), logger)
	env.server = httptest.NewServer(router)
	t.Cleanup(env.server.Close)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]json.RawMessage {
	t.Helper()
	out := map[string]json.RawMessage{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func assertErrorCode(t *testing.T, resp *http.Response, wantStatus int, wantCode string) {
	t.Helper()
	if resp.StatusCode != wantStatus {
		t.Fatalf("expected status %d, got %d", wantStatus, resp.StatusCode)
	}
	envelope := decodeEnvelope(t, resp)
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	raw, ok := envelope["error"]
	if !ok {
		t.Fatalf("expected error envelope, got %v", envelope)
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Code != wantCode {
		t.Fatalf("expected error code %s, got %s", wantCode, body.Code)
	}
	if body.Message == "" || body.Type == "" {
		t.Fatalf("error body must carry message and type: %+v", body)
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp := env.do(t, http.MethodGet, path, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}

func TestSubmitRequiresAuth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/v1/dashboard/submissions", "", map[string]any{
		"campaignId":  env.campaignID,
		"entityTypes": []string{"socials"},
	})
	assertErrorCode(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestSubmitForReviewEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/v1/dashboard/submissions", "user-token", map[string]any{
		"campaignId":  env.campaignID,
		"entityTypes": []string{"socials"},
		"note":        "first pass",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	envelope := decodeEnvelope(t, resp)
	var data struct {
		SubmissionID uuid.UUID         `json:"submissionId"`
		Status       string            `json:"status"`
		Results      map[string]string `json:"results"`
	}
	if err := json.Unmarshal(envelope["data"], &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.SubmissionID == uuid.Nil || data.Status != "completed" {
		t.Fatalf("unexpected submission payload: %+v", data)
	}
	if data.Results["socials"] != "missing" {
		t.Fatalf("expected socials missing, got %v", data.Results)
	}
}

func TestSocialsFallbackEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/v1/dashboard/socials/acme-solar", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	envelope := decodeEnvelope(t, resp)
	var data struct {
		Source     string `json:"source"`
		TwitterURL string `json:"twitterUrl"`
	}
	if err := json.Unmarshal(envelope["data"], &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Source != "issuer" || data.TwitterURL != "https://twitter.com/acme" {
		t.Fatalf("expected issuer fallback, got %+v", data)
	}

	missing := env.do(t, http.MethodGet, "/v1/dashboard/socials/no-such-campaign", "", nil)
	assertErrorCode(t, missing, http.StatusNotFound, "CAMPAIGN_NOT_FOUND")
}

func TestAdminReviewEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	submit := env.do(t, http.MethodPost, "/v1/dashboard/submissions", "user-token", map[string]any{
		"campaignId":  env.campaignID,
		"entityTypes": []string{"socials"},
	})
	if submit.StatusCode != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d", submit.StatusCode)
	}

	review := map[string]any{
		"campaignId":  env.campaignID,
		"action":      "approve",
		"entityTypes": []string{"socials"},
	}

	forbidden := env.do(t, http.MethodPost, "/v1/admin/dashboard/reviews", "user-token", review)
	assertErrorCode(t, forbidden, http.StatusForbidden, "FORBIDDEN")

	ok := env.do(t, http.MethodPost, "/v1/admin/dashboard/reviews", "admin-token", review)
	if ok.StatusCode != http.StatusOK {
		t.Fatalf("review: expected 200, got %d", ok.StatusCode)
	}
	envelope := decodeEnvelope(t, ok)
	var data struct {
		Approval struct {
			Status string `json:"status"`
		} `json:"approval"`
		History []struct {
			EntityType string `json:"entityType"`
		} `json:"history"`
	}
	if err := json.Unmarshal(envelope["data"], &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Approval.Status != "approved" || len(data.History) != 1 {
		t.Fatalf("unexpected review payload: %+v", data)
	}

	conflict := env.do(t, http.MethodPost, "/v1/admin/dashboard/reviews", "admin-token", review)
	assertErrorCode(t, conflict, http.StatusConflict, "STATE_CONFLICT")
}

func TestRejectWithoutCommentEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	submit := env.do(t, http.MethodPost, "/v1/dashboard/submissions", "user-token", map[string]any{
		"campaignId":  env.campaignID,
		"entityTypes": []string{"socials"},
	})
	if submit.StatusCode != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d", submit.StatusCode)
	}

	resp := env.do(t, http.MethodPost, "/v1/admin/dashboard/reviews", "admin-token", map[string]any{
		"campaignId":  env.campaignID,
		"action":      "reject",
		"entityTypes": []string{"socials"},
	})
	assertErrorCode(t, resp, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestPendingCampaignsEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	submit := env.do(t, http.MethodPost, "/v1/dashboard/submissions", "user-token", map[string]any{
		"campaignId":  env.campaignID,
		"entityTypes": []string{"campaign-info"},
	})
	if submit.StatusCode != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d", submit.StatusCode)
	}

	resp := env.do(t, http.MethodGet, "/v1/admin/campaigns/pending?page=1&perPage=10&searchTerm=acme", "admin-token", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	envelope := decodeEnvelope(t, resp)
	var data struct {
		Items []struct {
			CampaignID uuid.UUID `json:"campaignId"`
			IssuerName string    `json:"issuerName"`
		} `json:"items"`
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PerPage    int   `json:"perPage"`
		TotalPages int   `json:"totalPages"`
	}
	if err := json.Unmarshal(envelope["data"], &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Total != 1 || len(data.Items) != 1 || data.Items[0].CampaignID != env.campaignID {
		t.Fatalf("unexpected pending payload: %+v", data)
	}
	if data.Page != 1 || data.PerPage != 10 || data.TotalPages != 1 {
		t.Fatalf("unexpected pagination: %+v", data)
	}
}

func TestApprovalReadEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	submit := env.do(t, http.MethodPost, "/v1/dashboard/submissions", "user-token", map[string]any{
		"campaignId":  env.campaignID,
		"entityTypes": []string{"socials"},
	})
	if submit.StatusCode != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d", submit.StatusCode)
	}

	base := fmt.Sprintf("/v1/dashboard/approvals/%s", env.campaignID)
	resp := env.do(t, http.MethodGet, base, "user-token", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get approval: expected 200, got %d", resp.StatusCode)
	}

	history := env.do(t, http.MethodGet, base+"/history", "user-token", nil)
	if history.StatusCode != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", history.StatusCode)
	}
}

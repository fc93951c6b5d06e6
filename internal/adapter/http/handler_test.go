package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clip-market/internal/adapter/memory"
	"clip-market/internal/adapter/metrics"
	"clip-market/internal/adapter/usecase"
	"clip-market/internal/core/domain"
	"clip-market/internal/core/port/mocks"
)

const (
	adminID   = "admin"
	creatorID = "creator"
	clipperID = "clipper"
)

type testServer struct {
	t      *testing.T
	router http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	for id, role := range map[string]domain.Role{adminID: domain.RoleAdmin, creatorID: domain.RoleCreator, clipperID: domain.RoleClipper} {
		require.NoError(t, store.CreateUser(ctx, domain.User{ID: id, Email: id + "@example.com", Role: role}))
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	svc := usecase.NewLedgerUseCase(store,
		usecase.WithLogger(logger),
		usecase.WithMetrics(metrics.NewLedgerMetrics(reg)),
	)
	h := NewHandler(svc, logger, WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	return &testServer{t: t, router: h.Router()}
}

func (s *testServer) do(method, path, user string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = strings.NewReader(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(s.t, err)
			rd = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if user != "" {
		req.Header.Set(DefaultUserHeader, user)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[errorBody](t, rec).Error.Code
}

func (s *testServer) createCampaign(budget, reward string) campaignResponse {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/campaigns", creatorID, map[string]any{
		"title":           "Trailer",
		"reward_per_1000": reward,
		"budget":          budget,
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[campaignResponse](s.t, rec)
}

func (s *testServer) submit(campaignID string, views int64) submissionResponse {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/submissions", clipperID, submitRequest{
		CampaignID:    campaignID,
		Platform:      "tiktok",
		VideoLink:     "https://tiktok.example/v",
		ViewCount:     views,
		ScreenshotRef: "shots/1.png",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[submissionResponse](s.t, rec)
}

func TestRequiresAuthentication(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", errorCode(t, rec))

	rec = s.do(http.MethodGet, "/api/v1/campaigns", "stranger", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCampaignLifecycle(t *testing.T) {
	s := newTestServer(t)

	c := s.createCampaign("1000", "10")
	assert.Equal(t, "1000.00", c.RemainingBudget.String())
	assert.Equal(t, "active", c.Status)
	assert.Equal(t, creatorID, c.CreatorID)

	rec := s.do(http.MethodPatch, "/api/v1/campaigns/"+c.ID+"/status", creatorID, setStatusRequest{Status: "paused"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "paused", decodeBody[campaignResponse](t, rec).Status)

	rec = s.do(http.MethodGet, "/api/v1/campaigns", clipperID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]campaignResponse](t, rec))

	rec = s.do(http.MethodGet, "/api/v1/campaigns?mine=true", creatorID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]campaignResponse](t, rec), 1)

	rec = s.do(http.MethodPatch, "/api/v1/campaigns/"+c.ID+"/status", clipperID, setStatusRequest{Status: "active"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, "/api/v1/campaigns/"+c.ID+"/status", adminID, setStatusRequest{Status: "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/campaigns/missing", adminID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "campaign_not_found", errorCode(t, rec))
}

func TestCreateCampaignValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/campaigns", creatorID, `{"title":"x","reward_per_1000":"0.001","budget":"10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_amount", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/v1/campaigns", creatorID, `{"title":"x","reward_per_1000":"1","budget":"-5"}`)
	assert.Equal(t, "invalid_amount", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/v1/campaigns", creatorID, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/v1/campaigns", adminID, `{"title":"x","reward_per_1000":"1","budget":"5"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateCampaignRejectsOversizedInput(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/campaigns", creatorID, `{"title":"x","reward_per_1000":"1","budget":"1e999999999"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_amount", errorCode(t, rec))
	assert.Less(t, rec.Body.Len(), 512)

	rec = s.do(http.MethodPost, "/api/v1/campaigns", creatorID, `{"title":"x","reward_per_1000":1e-999999999,"budget":"5"}`)
	assert.Equal(t, "invalid_amount", errorCode(t, rec))

	big := `{"title":"` + strings.Repeat("x", maxBodyBytes) + `","reward_per_1000":"1","budget":"5"}`
	rec = s.do(http.MethodPost, "/api/v1/campaigns", creatorID, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request_too_large", errorCode(t, rec))
}

func TestReviewFlow(t *testing.T) {
	s := newTestServer(t)

	c := s.createCampaign("1000", "10")
	first := s.submit(c.ID, 50000)
	assert.Equal(t, "500.00", first.PayoutAmount.String())
	assert.Equal(t, "pending", first.Status)
	assert.Equal(t, "shots/1.png", first.ScreenshotRef)

	rec := s.do(http.MethodPost, "/api/v1/submissions/"+first.ID+"/approve", creatorID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/submissions/"+first.ID+"/approve", adminID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	approved := decodeBody[approveResponse](t, rec)
	assert.Equal(t, "approved", approved.Submission.Status)
	assert.Equal(t, "500.00", approved.RemainingBudget.String())
	assert.Equal(t, adminID, approved.Submission.ReviewedBy)

	second := s.submit(c.ID, 80000)
	rec = s.do(http.MethodPost, "/api/v1/submissions/"+second.ID+"/approve", adminID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "insufficient_budget", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/v1/submissions/"+second.ID+"/mark-paid", adminID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/v1/submissions/"+second.ID+"/reject", adminID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rejected", decodeBody[submissionResponse](t, rec).Status)

	rec = s.do(http.MethodPost, "/api/v1/submissions/"+first.ID+"/mark-paid", adminID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	paid := decodeBody[submissionResponse](t, rec)
	assert.True(t, paid.IsPaid)
	assert.NotNil(t, paid.PaidAt)

	rec = s.do(http.MethodGet, "/api/v1/campaigns/"+c.ID+"/stats", creatorID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decodeBody[campaignStatsResponse](t, rec)
	assert.Equal(t, 2, st.Submissions)
	assert.Equal(t, 1, st.Approved)
	assert.Equal(t, 1, st.Rejected)
	assert.Equal(t, "500.00", st.Spent.String())

	rec = s.do(http.MethodGet, "/api/v1/analytics/overview", adminID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ov := decodeBody[overviewResponse](t, rec)
	assert.Equal(t, int64(3), ov.TotalUsers)
	assert.Equal(t, "500.00", ov.TotalPayout.String())
	assert.Equal(t, "0.00", ov.PendingPayout.String())
	assert.Equal(t, "500.00", ov.PaidPayout.String())
	require.Len(t, ov.TopPerformers, 1)
	assert.Equal(t, clipperID, ov.TopPerformers[0].ClipperID)
	assert.Equal(t, clipperID+"@example.com", ov.TopPerformers[0].Email)

	rec = s.do(http.MethodGet, "/api/v1/me/stats", clipperID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cs := decodeBody[clipperStatsResponse](t, rec)
	assert.Equal(t, "500.00", cs.TotalEarnings.String())
	assert.Equal(t, 2, cs.TotalSubmissions)

	rec = s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ledger_reviews_total{outcome="approved"} 1`)
	assert.Contains(t, rec.Body.String(), `ledger_review_errors_total{operation="approve",reason="insufficient_budget"} 1`)
}

func TestSubmitValidation(t *testing.T) {
	s := newTestServer(t)
	c := s.createCampaign("100", "1")

	rec := s.do(http.MethodPost, "/api/v1/submissions", clipperID, submitRequest{CampaignID: c.ID, Platform: "tiktok", VideoLink: "l", ViewCount: -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_view_count", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/v1/submissions", clipperID, submitRequest{CampaignID: c.ID, Platform: "tiktok", ViewCount: 10})
	assert.Equal(t, "invalid_input", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/v1/submissions", clipperID, submitRequest{CampaignID: "nope", Platform: "tiktok", VideoLink: "l"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPatch, "/api/v1/campaigns/"+c.ID+"/status", creatorID, setStatusRequest{Status: "paused"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, "/api/v1/submissions", clipperID, submitRequest{CampaignID: c.ID, Platform: "tiktok", VideoLink: "l", ViewCount: 10})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "campaign_inactive", errorCode(t, rec))
}

func TestSubmissionVisibility(t *testing.T) {
	s := newTestServer(t)
	c := s.createCampaign("100", "1")
	sub := s.submit(c.ID, 1000)

	rec := s.do(http.MethodGet, "/api/v1/submissions/"+sub.ID, creatorID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/submissions?status=pending", clipperID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]submissionResponse](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/v1/submissions?status=unknown", adminID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/submissions/missing", adminID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "submission_not_found", errorCode(t, rec))
}

func TestInternalErrorsAreHidden(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetUser(mock.Anything, "admin").Return(nil, errors.New("dial tcp: connection refused"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(usecase.NewLedgerUseCase(repo, usecase.WithLogger(logger)), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview", nil)
	req.Header.Set(DefaultUserHeader, "admin")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "internal", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "connection refused")
}

func TestCustomUserHeader(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetUser(mock.Anything, "clipper").Return(&domain.User{ID: "clipper", Role: domain.RoleClipper}, nil)
	repo.EXPECT().ListSubmissions(mock.Anything, mock.Anything).Return(nil, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(usecase.NewLedgerUseCase(repo, usecase.WithLogger(logger)), logger, WithUserHeader("X-Auth-Subject"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/stats", nil)
	req.Header.Set("X-Auth-Subject", "clipper")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	st := decodeBody[clipperStatsResponse](t, rec)
	assert.Equal(t, "0.00", st.TotalEarnings.String())
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astra-cloud/astra/internal/config"
	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/store"
)

// stubStore satisfies Store in memory, recording calls the tests assert on.
type stubStore struct {
	sandboxes map[string]model.Sandbox
	reports   map[string]model.CarbonReport
	hashes    map[string]string
	awarded   []model.GreenPointsTransaction
	badges    map[string][]model.UserBadge
	points    map[string]int
}

func newStubStore() *stubStore {
	return &stubStore{
		sandboxes: make(map[string]model.Sandbox),
		reports:   make(map[string]model.CarbonReport),
		hashes:    make(map[string]string),
		badges:    make(map[string][]model.UserBadge),
		points:    make(map[string]int),
	}
}

func (s *stubStore) PublishSandbox(ctx context.Context, name, desc string, arch model.Architecture) (model.Sandbox, error) {
	sandbox := model.Sandbox{SandboxID: "stub1234", ProjectName: name, Description: desc, Architecture: arch, IsPublic: true}
	s.sandboxes[sandbox.SandboxID] = sandbox
	return sandbox, nil
}

func (s *stubStore) GetSandbox(ctx context.Context, id string) (model.Sandbox, error) {
	sandbox, ok := s.sandboxes[id]
	if !ok {
		return model.Sandbox{}, store.ErrNotFound
	}
	return sandbox, nil
}

func (s *stubStore) ListSandboxes(ctx context.Context, filter store.SandboxFilter) ([]model.Sandbox, error) {
	var out []model.Sandbox
	for _, sb := range s.sandboxes {
		out = append(out, sb)
	}
	return out, nil
}

func (s *stubStore) SaveReport(ctx context.Context, report model.CarbonReport, hash string) error {
	s.reports[report.ReportID] = report
	s.hashes[report.ReportID] = hash
	return nil
}

func (s *stubStore) GetReport(ctx context.Context, id string) (model.CarbonReport, string, error) {
	report, ok := s.reports[id]
	if !ok {
		return model.CarbonReport{}, "", store.ErrNotFound
	}
	return report, s.hashes[id], nil
}

func (s *stubStore) GetReportByHash(ctx context.Context, hash string) (model.CarbonReport, string, error) {
	for id, h := range s.hashes {
		if h == hash {
			return s.reports[id], h, nil
		}
	}
	return model.CarbonReport{}, "", store.ErrNotFound
}

func (s *stubStore) ListReports(ctx context.Context, limit, skip int) ([]model.CarbonReport, error) {
	var out []model.CarbonReport
	for _, r := range s.reports {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubStore) AwardPoints(ctx context.Context, userID string, points int, reason, category string, carbonSavedKg float64) (model.GreenPointsTransaction, error) {
	tx := model.GreenPointsTransaction{TxID: "tx-1", UserID: userID, Points: points, Reason: reason, Category: category}
	s.awarded = append(s.awarded, tx)
	s.points[userID] += points
	return tx, nil
}

func (s *stubStore) UserPoints(ctx context.Context, userID string) (model.GreenUser, error) {
	return model.GreenUser{UserID: userID, TotalPoints: s.points[userID], BadgesCount: len(s.badges[userID])}, nil
}

func (s *stubStore) PointsHistory(ctx context.Context, userID string, limit int) ([]model.GreenPointsTransaction, error) {
	return s.awarded, nil
}

func (s *stubStore) GrantBadge(ctx context.Context, userID, badgeID string) (model.UserBadge, error) {
	badge := model.UserBadge{BadgeID: badgeID}
	s.badges[userID] = append(s.badges[userID], badge)
	return badge, nil
}

func (s *stubStore) UserBadges(ctx context.Context, userID string) ([]model.UserBadge, error) {
	return s.badges[userID], nil
}

func (s *stubStore) EligibleBadges(ctx context.Context, userID string) ([]model.BadgeDefinition, error) {
	return nil, nil
}

func (s *stubStore) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	return []model.LeaderboardEntry{}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := newStubStore()
	srv := New(config.Default(), nil, nil, st)
	return srv.SetupRouter(), st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])

	w = doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListComponents(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("all", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/components", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Greater(t, body["count"].(float64), 50.0)
	})

	t.Run("by category", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/components?category=database", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Greater(t, body["count"].(float64), 0.0)
		for _, raw := range body["components"].([]interface{}) {
			comp := raw.(map[string]interface{})
			assert.Equal(t, "database", comp["category"])
		}
	})
}

func TestGenerateArchitecture(t *testing.T) {
	router, _ := newTestRouter(t)
	scope := model.Scope{Users: 1000, TrafficLevel: 2, DataVolumeGB: 10, Regions: 1, Availability: 99.9}

	t.Run("ok", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/architecture/generate",
			GenerateRequest{Components: []string{"nextjs", "nodejs", "postgresql"}, Scope: scope})
		require.Equal(t, http.StatusOK, w.Code)

		var arch model.Architecture
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &arch))
		assert.Len(t, arch.Nodes, 3)
		assert.NotEmpty(t, arch.Edges)
		require.NotNil(t, arch.CostEstimate)
		assert.Greater(t, arch.CostEstimate.Total, 0.0)
	})

	t.Run("unknown components only", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/architecture/generate",
			GenerateRequest{Components: []string{"no_such_thing"}, Scope: scope})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing scope", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/architecture/generate",
			map[string]interface{}{"components": []string{"nextjs"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEstimateCost(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/architecture/cost", GenerateRequest{
		Components: []string{"postgresql"},
		Scope:      model.Scope{Users: 1000, TrafficLevel: 2, DataVolumeGB: 100, Regions: 1, Availability: 99.9},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var estimate model.CostEstimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &estimate))
	assert.Equal(t, 62.3, estimate.Total)
}

func TestCarbonReportFlow(t *testing.T) {
	router, st := newTestRouter(t)

	arch := model.Architecture{
		Nodes: []model.Node{{
			ID:   "postgresql-1",
			Data: model.NodeData{Label: "PostgreSQL", ComponentID: "postgresql", Category: model.CategoryDatabase},
		}},
		Scope: model.Scope{Users: 1000, TrafficLevel: 3, Regions: 1, Availability: 99.9},
	}

	w := doJSON(t, router, http.MethodPost, "/api/carbon/report",
		CarbonReportRequest{Architecture: arch, Region: "eu-north-1", UserID: "user-1"})
	require.Equal(t, http.StatusOK, w.Code)

	var created CarbonReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Report.ReportID)
	assert.NotEmpty(t, created.Hash)
	assert.Equal(t, "eu-north-1", created.Report.Metrics.Region)
	require.Len(t, st.reports, 1)

	t.Run("get", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/carbon/report/"+created.Report.ReportID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/carbon/report/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("verify", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/carbon/verify/"+created.Hash, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["verified"])
	})

	t.Run("verify unknown hash", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/carbon/verify/ffffffff", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["verified"])
	})

	t.Run("regions", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/carbon/regions", nil)
		require.Equal(t, http.StatusOK, w.Code)
		regions := decodeBody(t, w)["regions"].(map[string]interface{})
		assert.Equal(t, 8.0, regions["eu-north-1"])
	})
}

func TestSustainabilityScore(t *testing.T) {
	router, st := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/carbon/score", ScoreRequest{
		CurrentCarbonKg:  50,
		PreviousCarbonKg: 100,
		Region:           "us-east-1",
		UserID:           "user-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var score model.SustainabilityScore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &score))
	assert.Equal(t, 80.0, score.Score)
	assert.Equal(t, 265, score.GreenPoints)

	require.Len(t, st.awarded, 1)
	assert.Equal(t, "carbon_reduction", st.awarded[0].Category)
	assert.Equal(t, 265, st.awarded[0].Points)
}

func TestSandboxEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	arch := model.Architecture{
		Nodes: []model.Node{{ID: "n1", Data: model.NodeData{Label: "Next.js", ComponentID: "nextjs"}}},
		Scope: model.Scope{Users: 100, TrafficLevel: 1, Regions: 1, Availability: 99.0},
	}

	w := doJSON(t, router, http.MethodPost, "/api/sandboxes",
		PublishSandboxRequest{ProjectName: "Demo", Architecture: arch})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("get", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/sandboxes/stub1234", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/sandboxes/missing1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/sandboxes?search=Demo&limit=5", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1.0, decodeBody(t, w)["count"])
	})
}

func TestChatEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	// With no LLM configured the service answers in demo mode but still
	// creates a session.
	w := doJSON(t, router, http.MethodPost, "/api/chat", map[string]interface{}{
		"message": "hello",
		"scope":   model.Scope{Users: 100, TrafficLevel: 1, Regions: 1, Availability: 99.0},
	})
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := decodeBody(t, w)["session_id"].(string)
	require.NotEmpty(t, sessionID)

	t.Run("get session", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/chat/sessions/"+sessionID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		messages := decodeBody(t, w)["messages"].([]interface{})
		assert.Len(t, messages, 2)
	})

	t.Run("delete session", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/chat/sessions/"+sessionID, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/api/chat/sessions/"+sessionID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIncentiveEndpoints(t *testing.T) {
	router, st := newTestRouter(t)

	t.Run("award points", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/incentives/points",
			AwardPointsRequest{UserID: "user-1", Points: 120, Reason: "manual grant"})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 120, st.points["user-1"])
	})

	t.Run("user points", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/incentives/users/user-1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 120.0, decodeBody(t, w)["total_points"])
	})

	t.Run("badge catalog", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/incentives/badges", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["badges"].([]interface{}), 6)
	})

	t.Run("claim badge", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/incentives/claim",
			ClaimRequest{UserID: "user-1", ClaimType: "badge", BadgeID: "green_starter"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["success"])
	})

	t.Run("claim tokens insufficient", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/incentives/claim",
			ClaimRequest{UserID: "user-1", ClaimType: "tokens", TokenAmount: 100000})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("claim tokens", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/incentives/claim",
			ClaimRequest{UserID: "user-1", ClaimType: "tokens", TokenAmount: 50})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 70, st.points["user-1"])
	})

	t.Run("bad claim type", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/incentives/claim",
			ClaimRequest{UserID: "user-1", ClaimType: "gold"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("leaderboard", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/incentives/leaderboard", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/components", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

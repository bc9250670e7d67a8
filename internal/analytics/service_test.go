package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/glp1-companion/internal/auth"
	"github.com/redmonkez12/glp1-companion/internal/content"
	"github.com/redmonkez12/glp1-companion/internal/symptom"
)

type fixture struct {
	service  *Service
	symptoms *symptom.MemoryStore
	userID   uuid.UUID
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	items, err := content.DefaultItems()
	require.NoError(t, err)
	catalog := content.NewMemoryCatalog()
	_, err = content.Seed(context.Background(), catalog, items)
	require.NoError(t, err)

	symptoms := symptom.NewMemoryStore()
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	svc := NewService(symptoms, catalog)
	svc.now = func() time.Time { return now }

	return &fixture{service: svc, symptoms: symptoms, userID: uuid.New(), now: now}
}

func (f *fixture) log(t *testing.T, userID uuid.UUID, s symptom.Symptom, severity int, ts time.Time) {
	t.Helper()
	_, err := f.symptoms.Create(context.Background(), &symptom.Entry{UserID: userID, Symptom: s, Severity: severity, Timestamp: ts})
	require.NoError(t, err)
}

func TestService_DashboardStats(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		f.log(t, f.userID, symptom.Nausea, 5, f.now.Add(-time.Duration(i)*time.Hour))
	}
	for i := 1; i <= 7; i++ {
		f.log(t, f.userID, symptom.Fatigue, 3, f.now.Add(-time.Duration(i)*20*time.Hour))
	}
	f.log(t, f.userID, symptom.Fatigue, 3, f.now.Add(-10*24*time.Hour))
	f.log(t, uuid.New(), symptom.Nausea, 9, f.now)

	stats, err := f.service.DashboardStats(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, Stats{SymptomsToday: 3, AdherenceRate: "50%", ContentViewed: 4}, stats)
}

func TestService_Progress(t *testing.T) {
	f := newFixture(t)

	for i, sev := range []int{2, 2, 8, 8} {
		f.log(t, f.userID, symptom.Nausea, sev, f.now.Add(-time.Duration(i)*24*time.Hour))
	}

	progress, err := f.service.Progress(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, Improving, progress[symptom.Nausea].Trend)
	assert.InDelta(t, 50, progress[symptom.Nausea].Progress, 1e-9)
	assert.Equal(t, Stable, progress[symptom.Fatigue].Trend)
}

type failingStore struct{ symptom.MemoryStore }

func (*failingStore) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]symptom.Entry, error) {
	return nil, errors.New("db down")
}

func TestService_DashboardStatsStoreError(t *testing.T) {
	svc := NewService(&failingStore{}, content.NewMemoryCatalog())

	_, err := svc.DashboardStats(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestHandler_Stats(t *testing.T) {
	f := newFixture(t)
	f.log(t, f.userID, symptom.Nausea, 5, f.now)
	h := NewHandler(f.service)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), f.userID))
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"symptomsToday":1,"adherenceRate":"95%","contentViewed":4}`, rec.Body.String())
}

func TestHandler_Progress(t *testing.T) {
	f := newFixture(t)
	f.log(t, f.userID, symptom.Digestive, 5, f.now)
	h := NewHandler(f.service)

	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), f.userID))
	rec := httptest.NewRecorder()
	h.Progress(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]SymptomProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 3)
	assert.Equal(t, SymptomProgress{Progress: 50, Trend: Stable, AvgSeverity: 5}, body["digestive"])
	assert.Contains(t, rec.Body.String(), `"avgSeverity"`)
}

func TestHandler_RequiresUser(t *testing.T) {
	h := NewHandler(newFixture(t).service)

	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	rec := httptest.NewRecorder()
	h.Progress(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/medications/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/medications/{id}", "404"))

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/medications/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/medications/{id}", "404"))
	assert.Equal(t, before+3, after)
}

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(authAttempts.WithLabelValues("login", "invalid_credentials"))
	RecordAuthAttempt("login", "invalid_credentials")
	assert.Equal(t, before+1, testutil.ToFloat64(authAttempts.WithLabelValues("login", "invalid_credentials")))

	before = testutil.ToFloat64(symptomsLogged.WithLabelValues("nausea"))
	RecordSymptomLogged("nausea")
	assert.Equal(t, before+1, testutil.ToFloat64(symptomsLogged.WithLabelValues("nausea")))

	before = testutil.ToFloat64(medicationChanges.WithLabelValues("update"))
	RecordMedicationChange("update")
	assert.Equal(t, before+1, testutil.ToFloat64(medicationChanges.WithLabelValues("update")))

	before = testutil.ToFloat64(rateLimited.WithLabelValues("register"))
	RecordRateLimited("register")
	assert.Equal(t, before+1, testutil.ToFloat64(rateLimited.WithLabelValues("register")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordSymptomLogged("fatigue")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `glp1_records_symptoms_logged_total{symptom="fatigue"}`))
}

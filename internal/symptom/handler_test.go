package symptom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/glp1-companion/internal/auth"
	"github.com/redmonkez12/glp1-companion/internal/httputil"
	"github.com/redmonkez12/glp1-companion/internal/logging"
)

func authedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(auth.WithUserID(context.Background(), userID))
}

func TestHandler_LogAndList(t *testing.T) {
	h := NewHandler(NewService(NewMemoryStore(), logging.Discard()))
	userID := uuid.New()

	rec := httptest.NewRecorder()
	h.Log(rec, authedRequest(http.MethodPost, "/api/side-effects", `{"symptom":"nausea","severity":6,"notes":"morning"}`, userID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "nausea", created["symptom"])
	assert.Equal(t, userID.String(), created["userId"])
	assert.Contains(t, created, "timestamp")

	rec = httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/api/side-effects?limit=5", "", userID))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestHandler_LogValidation(t *testing.T) {
	h := NewHandler(NewService(NewMemoryStore(), logging.Discard()))

	rec := httptest.NewRecorder()
	h.Log(rec, authedRequest(http.MethodPost, "/api/side-effects", `{"symptom":"nausea","severity":42}`, uuid.New()))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, httputil.CodeValidationFailed, resp.Code)
	assert.Contains(t, resp.Fields, "severity")
}

func TestHandler_ListBadLimit(t *testing.T) {
	h := NewHandler(NewService(NewMemoryStore(), logging.Discard()))

	for _, q := range []string{"abc", "-1"} {
		rec := httptest.NewRecorder()
		h.List(rec, authedRequest(http.MethodGet, "/api/side-effects?limit="+q, "", uuid.New()))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", q)
	}
}

func TestHandler_RequiresUser(t *testing.T) {
	h := NewHandler(NewService(NewMemoryStore(), logging.Discard()))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/side-effects", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package symptom

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/redmonkez12/glp1-companion/internal/auth"
	"github.com/redmonkez12/glp1-companion/internal/httputil"
	"github.com/redmonkez12/glp1-companion/internal/logging"
	"github.com/redmonkez12/glp1-companion/internal/metrics"
	"github.com/redmonkez12/glp1-companion/internal/validation"
)

// Handler serves the side-effect log endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Log records a side effect for the current user
// @Summary      Log a side effect
// @Tags         side-effects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LogInput true "Symptom, severity 1-10 and optional notes"
// @Success      201 {object} Entry
// @Failure      400 {object} httputil.ErrorResponse "Invalid request or validation error"
// @Failure      401 {object} httputil.ErrorResponse "Unauthenticated"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/side-effects [post]
func (h *Handler) Log(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req LogInput
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Warn("invalid side effect request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	entry, err := h.service.Log(r.Context(), userID, req)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			httputil.RespondValidationError(w, ve)
			return
		}
		logger.Error("failed to log side effect", "user_id", userID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to log side effect", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	metrics.RecordSymptomLogged(string(entry.Symptom))
	httputil.RespondJSON(w, entry, http.StatusCreated)
}

// List returns the current user's side effects, newest first
// @Summary      List side effects
// @Tags         side-effects
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of entries (0 or omitted for all)"
// @Success      200 {array} Entry
// @Failure      400 {object} httputil.ErrorResponse "Invalid limit"
// @Failure      401 {object} httputil.ErrorResponse "Unauthenticated"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/side-effects [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httputil.RespondErrorWithCode(w, "limit must be a non-negative integer", httputil.CodeInvalidQuery, http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := h.service.List(r.Context(), userID, limit)
	if err != nil {
		logger.Error("failed to list side effects", "user_id", userID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to fetch side effects", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, entries, http.StatusOK)
}

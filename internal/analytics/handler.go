package analytics

import (
	"net/http"

	"github.com/redmonkez12/glp1-companion/internal/auth"
	"github.com/redmonkez12/glp1-companion/internal/httputil"
	"github.com/redmonkez12/glp1-companion/internal/logging"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Stats returns the dashboard summary for the current user
// @Summary      Dashboard stats
// @Description  Symptoms logged today, estimated weekly adherence and content viewed
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Stats
// @Failure      401 {object} httputil.ErrorResponse "Unauthenticated"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/dashboard/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	stats, err := h.service.DashboardStats(r.Context(), userID)
	if err != nil {
		logger.Error("failed to compute dashboard stats", "user_id", userID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to fetch dashboard stats", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, stats, http.StatusOK)
}

// Progress returns trend and progress per tracked symptom
// @Summary      Symptom progress
// @Description  Progress score and trend for nausea, fatigue and digestive symptoms
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]SymptomProgress
// @Failure      401 {object} httputil.ErrorResponse "Unauthenticated"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/progress [get]
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	progress, err := h.service.Progress(r.Context(), userID)
	if err != nil {
		logger.Error("failed to compute progress", "user_id", userID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to fetch progress", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, progress, http.StatusOK)
}

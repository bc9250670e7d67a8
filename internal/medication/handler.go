package medication

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/redmonkez12/glp1-companion/internal/auth"
	"github.com/redmonkez12/glp1-companion/internal/httputil"
	"github.com/redmonkez12/glp1-companion/internal/logging"
	"github.com/redmonkez12/glp1-companion/internal/metrics"
	"github.com/redmonkez12/glp1-companion/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create adds a medication for the current user
// @Summary      Add a medication
// @Tags         medications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateInput true "Medication details"
// @Success      201 {object} View
// @Failure      400 {object} httputil.ErrorResponse "Invalid request or validation error"
// @Failure      401 {object} httputil.ErrorResponse "Unauthenticated"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/medications [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req CreateInput
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	m, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			httputil.RespondValidationError(w, ve)
			return
		}
		logger.Error("failed to create medication", "user_id", userID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create medication", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	metrics.RecordMedicationChange("create")
	httputil.RespondJSON(w, NewView(*m, h.service.Now()), http.StatusCreated)
}

// List returns the current user's active medications
// @Summary      List active medications
// @Tags         medications
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} View
// @Failure      401 {object} httputil.ErrorResponse "Unauthenticated"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/medications [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	meds, err := h.service.List(r.Context(), userID)
	if err != nil {
		logger.Error("failed to list medications", "user_id", userID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to fetch medications", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	now := h.service.Now()
	views := make([]View, 0, len(meds))
	for _, m := range meds {
		views = append(views, NewView(m, now))
	}
	httputil.RespondJSON(w, views, http.StatusOK)
}

// Update partially updates a medication
// @Summary      Update a medication
// @Description  Change any of name, dosage, frequency, timeOfDay or isActive. Set isActive=false to retire a medication.
// @Tags         medications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Medication ID"
// @Param        request body Patch true "Fields to change"
// @Success      200 {object} View
// @Failure      400 {object} httputil.ErrorResponse "Invalid request or validation error"
// @Failure      401 {object} httputil.ErrorResponse "Unauthenticated"
// @Failure      404 {object} httputil.ErrorResponse "Medication not found"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/medications/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	// A malformed id can't name an existing medication
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "medication not found", httputil.CodeNotFound, http.StatusNotFound)
		return
	}

	var req Patch
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	m, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			httputil.RespondValidationError(w, ve)
		case errors.Is(err, ErrNotFound):
			httputil.RespondErrorWithCode(w, "medication not found", httputil.CodeNotFound, http.StatusNotFound)
		default:
			logger.Error("failed to update medication", "user_id", userID, "medication_id", id, "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to update medication", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	metrics.RecordMedicationChange("update")
	httputil.RespondJSON(w, NewView(*m, h.service.Now()), http.StatusOK)
}

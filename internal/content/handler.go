package content

import (
	"net/http"

	"github.com/redmonkez12/glp1-companion/internal/httputil"
	"github.com/redmonkez12/glp1-companion/internal/logging"
)

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List returns educational content, optionally filtered by tag
// @Summary      List educational content
// @Description  Returns all items, or only those sharing at least one of the comma separated tags
// @Tags         content
// @Produce      json
// @Param        tags query string false "Comma separated tags, e.g. nausea,fatigue"
// @Success      200 {array} Item
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/content [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	items, err := h.catalog.List(r.Context(), ParseTags(r.URL.Query().Get("tags")))
	if err != nil {
		logger.Error("failed to list content", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to fetch content", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, items, http.StatusOK)
}

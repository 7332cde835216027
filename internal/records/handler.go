package records

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/urlmap-dev/urlmap/pkg/handlers"
	"github.com/urlmap-dev/urlmap/pkg/pagination"
	pkgweb "github.com/urlmap-dev/urlmap/pkg/web"
	"github.com/urlmap-dev/urlmap/web"
)

// latestPageSize bounds how many records the HTML page shows.
const latestPageSize = 25

// Handler serves the record-backed views.
type Handler struct {
	sys        System
	templates  *pkgweb.TemplateSet
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a records handler.
func NewHandler(sys System, templates *pkgweb.TemplateSet, logger *slog.Logger, cfg pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		templates:  templates,
		logger:     logger,
		pagination: cfg,
	}
}

// DataRender serves a paginated JSON listing of records.
func (h *Handler) DataRender(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Detail serves a single record as JSON.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HTMLPage renders the second HTML page with the latest records.
func (h *Handler) HTMLPage(w http.ResponseWriter, r *http.Request) {
	latest, err := h.sys.Latest(r.Context(), latestPageSize)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	data := pkgweb.PageData{Title: web.HTML2.Title, Data: latest}
	if err := h.templates.Render(w, web.Layout, web.HTML2.Template, data); err != nil {
		h.logger.Error("render html2", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

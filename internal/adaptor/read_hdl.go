package adaptor

import (
	"fmt"
	"net/http"
	"net/url"

	"movie-review/internal/dto/response"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const readTitle = "View Movies"

type ReadHandler struct {
	service  usecase.ReadService
	renderer *Renderer
	log      *zap.Logger
}

func NewReadHandler(service usecase.ReadService, renderer *Renderer, log *zap.Logger) *ReadHandler {
	return &ReadHandler{
		service:  service,
		renderer: renderer,
		log:      log.With(zap.String("handler", "read")),
	}
}

// List handles GET /read and GET /read?page=n
func (h *ReadHandler) List(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	query := r.URL.Query()
	var (
		page *response.ReadPageResponse
		err  error
	)
	if query.Has("page") {
		page, err = h.service.SetPage(r.Context(), sid, utils.ParseInt(query.Get("page"), 1))
	} else {
		page, err = h.service.Mount(r.Context(), sid)
	}
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "list movie reviews")
		return
	}

	renderPage(w, h.renderer, h.log, "read", readTitle, page)
}

// BeginEdit handles POST /read/movies/{id}/edit
func (h *ReadHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	reviewID, ok := reviewIDParam(w, r)
	if !ok {
		return
	}

	page, err := h.service.BeginEdit(r.Context(), sid, reviewID)
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "edit movie review")
		return
	}

	h.showPage(w, r, page)
}

// ChangeEditField handles POST /read/edit/fields/{field}
func (h *ReadHandler) ChangeEditField(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	req, ok := parseFieldChange(w, r)
	if !ok {
		return
	}

	field, err := h.service.ChangeEditField(r.Context(), sid, req)
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "change edit field")
		return
	}

	if err := h.renderer.Fragment(w, http.StatusOK, "field_help", fieldView{Action: "/read/edit/fields", Prefix: "edit-", Field: *field}); err != nil {
		h.log.Error("Failed to render field", zap.Error(err))
	}
}

// CancelEdit handles POST /read/edit/cancel
func (h *ReadHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	page, err := h.service.CancelEdit(r.Context(), sid)
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "cancel edit")
		return
	}

	h.showPage(w, r, page)
}

// Update handles POST /read/movies/{id}
func (h *ReadHandler) Update(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	reviewID, ok := reviewIDParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	page, err := h.service.Update(r.Context(), sid, reviewID, parseReviewForm(r))
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "update movie review")
		return
	}

	h.showPage(w, r, page)
}

// Remove handles POST /read/movies/{id}/delete
func (h *ReadHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	reviewID, ok := reviewIDParam(w, r)
	if !ok {
		return
	}

	page, err := h.service.Remove(r.Context(), sid, reviewID)
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "delete movie review")
		return
	}

	h.showPage(w, r, page)
}

// CloseDialog handles POST /read/dialog/close
func (h *ReadHandler) CloseDialog(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	page, err := h.service.CloseDialog(r.Context(), sid)
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "close read dialog")
		return
	}

	h.showPage(w, r, page)
}

// reviewIDParam decodes {id}. chi matches on the escaped path, so the
// parameter arrives still percent-encoded.
func reviewIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	reviewID, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil || reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return "", false
	}
	return reviewID, true
}

// showPage redirects a form post back to the page it came from, so a reload
// repeats the GET rather than the action.
func (h *ReadHandler) showPage(w http.ResponseWriter, r *http.Request, page *response.ReadPageResponse) {
	http.Redirect(w, r, fmt.Sprintf("/read?page=%d", page.Reviews.Pagination.Page), http.StatusSeeOther)
}

package adaptor

import (
	"net/http"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const createTitle = "Add Movie Review"

type CreateHandler struct {
	service  usecase.CreateService
	renderer *Renderer
	log      *zap.Logger
}

func NewCreateHandler(service usecase.CreateService, renderer *Renderer, log *zap.Logger) *CreateHandler {
	return &CreateHandler{
		service:  service,
		renderer: renderer,
		log:      log.With(zap.String("handler", "create")),
	}
}

// Show handles GET /create. It also renders the outcome of a submit, which
// redirects here.
func (h *CreateHandler) Show(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	page, err := h.service.Mount(r.Context(), sid)
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "show create form")
		return
	}

	renderPage(w, h.renderer, h.log, "create", createTitle, page)
}

// ChangeField handles POST /create/fields/{field}
func (h *CreateHandler) ChangeField(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	req, ok := parseFieldChange(w, r)
	if !ok {
		return
	}

	field, err := h.service.ChangeField(r.Context(), sid, req)
	if err != nil {
		handleServiceError(w, h.renderer, h.log, err, "change create field")
		return
	}

	if err := h.renderer.Fragment(w, http.StatusOK, "field_help", fieldView{Action: "/create/fields", Field: *field}); err != nil {
		h.log.Error("Failed to render field", zap.Error(err))
	}
}

// Submit handles POST /create
func (h *CreateHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	if _, err := h.service.Submit(r.Context(), sid, parseReviewForm(r)); err != nil {
		handleServiceError(w, h.renderer, h.log, err, "add movie review")
		return
	}

	http.Redirect(w, r, "/create", http.StatusSeeOther)
}

// CloseDialog handles POST /create/dialog/close
func (h *CreateHandler) CloseDialog(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		utils.ResponseInternalError(w, "Session required")
		return
	}

	if _, err := h.service.CloseDialog(r.Context(), sid); err != nil {
		handleServiceError(w, h.renderer, h.log, err, "close create dialog")
		return
	}

	http.Redirect(w, r, "/create", http.StatusSeeOther)
}

// parseReviewForm reads the four review fields from a parsed form post.
func parseReviewForm(r *http.Request) *request.MovieReviewRequest {
	return &request.MovieReviewRequest{
		FirstName: r.PostForm.Get(entity.FieldFirstName),
		LastName:  r.PostForm.Get(entity.FieldLastName),
		Email:     r.PostForm.Get(entity.FieldEmail),
		Comments:  r.PostForm.Get(entity.FieldComments),
	}
}

// parseFieldChange reads {field} from the route and its value from the form,
// answering 400 itself when the field is not a form input.
func parseFieldChange(w http.ResponseWriter, r *http.Request) (*request.FieldChangeRequest, bool) {
	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return nil, false
	}

	field := chi.URLParam(r, "field")
	req := &request.FieldChangeRequest{
		Field: field,
		Value: r.PostForm.Get(field),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	return req, true
}

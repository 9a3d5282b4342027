package adaptor

import (
	"net/http"
	"strings"

	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Home   *HomeHandler
	Create *CreateHandler
	Read   *ReadHandler
}

func NewHandler(service *usecase.Service, renderer *Renderer, log *zap.Logger) *Handler {
	return &Handler{
		Home:   NewHomeHandler(renderer, log),
		Create: NewCreateHandler(service.Create, renderer, log),
		Read:   NewReadHandler(service.Read, renderer, log),
	}
}

// sessionID reads the view session set by middleware.ViewSession.
func sessionID(r *http.Request) (string, bool) {
	id, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		return "", false
	}
	return id.String(), true
}

// handleServiceError maps service errors onto an HTML error page.
func handleServiceError(w http.ResponseWriter, rd *Renderer, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	var status int
	switch {
	case strings.Contains(errMsg, "session") && strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - session expired",
			zap.Error(err),
			zap.String("operation", operation))
		status = http.StatusGone
		errMsg = "Your session has expired. Please start again."

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		status = http.StatusNotFound

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		status = http.StatusBadRequest

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		status = http.StatusInternalServerError
		errMsg = "Internal server error"
	}

	if renderErr := rd.Error(w, status, errMsg); renderErr != nil {
		log.Error("Failed to render error page", zap.Error(renderErr))
	}
}

func renderPage(w http.ResponseWriter, rd *Renderer, log *zap.Logger, name, title string, data any) {
	if err := rd.Page(w, http.StatusOK, name, title, data); err != nil {
		log.Error("Failed to render page", zap.Error(err), zap.String("page", name))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

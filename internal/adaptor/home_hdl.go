package adaptor

import (
	"net/http"

	"go.uber.org/zap"
)

type HomeHandler struct {
	renderer *Renderer
	log      *zap.Logger
}

func NewHomeHandler(renderer *Renderer, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		renderer: renderer,
		log:      log.With(zap.String("handler", "home")),
	}
}

// Index handles GET /
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.renderer, h.log, "home", "Home", nil)
}

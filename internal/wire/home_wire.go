package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHome(r chi.Router, homeHandler *adaptor.HomeHandler) {
	r.Get("/", homeHandler.Index)
}

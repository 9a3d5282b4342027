package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCreate(r chi.Router, createHandler *adaptor.CreateHandler) {
	r.Route("/create", func(r chi.Router) {
		// GET /create - mount a fresh form
		r.Get("/", createHandler.Show)

		// POST /create - submit the review
		r.Post("/", createHandler.Submit)

		// POST /create/fields/{field} - per keystroke check
		r.Post("/fields/{field}", createHandler.ChangeField)

		// POST /create/dialog/close - dismiss the status dialog
		r.Post("/dialog/close", createHandler.CloseDialog)
	})
}

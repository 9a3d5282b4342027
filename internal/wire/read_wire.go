package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRead(r chi.Router, readHandler *adaptor.ReadHandler) {
	r.Route("/read", func(r chi.Router) {
		// GET /read[?page=n] - mount, or change page
		r.Get("/", readHandler.List)

		// POST /read/movies/{id}/edit - open the inline edit form
		r.Post("/movies/{id}/edit", readHandler.BeginEdit)

		// POST /read/movies/{id} - submit the inline edit
		r.Post("/movies/{id}", readHandler.Update)

		// POST /read/movies/{id}/delete - remove the row
		r.Post("/movies/{id}/delete", readHandler.Remove)

		r.Post("/edit/fields/{field}", readHandler.ChangeEditField)
		r.Post("/edit/cancel", readHandler.CancelEdit)
		r.Post("/dialog/close", readHandler.CloseDialog)
	})
}

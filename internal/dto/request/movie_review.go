package request

import "movie-review/internal/data/entity"

// MovieReviewRequest is a submitted Create or Edit form. The tags apply only
// when submission-blocking validation is turned on.
type MovieReviewRequest struct {
	FirstName string `json:"firstName" validate:"required,letters"`
	LastName  string `json:"lastName" validate:"required,letters"`
	Email     string `json:"email" validate:"required,email"`
	Comments  string `json:"comments" validate:"letterspace"`
}

// Fields maps the request onto form field names.
func (r MovieReviewRequest) Fields() map[string]string {
	return map[string]string{
		entity.FieldFirstName: r.FirstName,
		entity.FieldLastName:  r.LastName,
		entity.FieldEmail:     r.Email,
		entity.FieldComments:  r.Comments,
	}
}

// FieldChangeRequest is a single keystroke on one form input.
type FieldChangeRequest struct {
	Field string `json:"field" validate:"required,oneof=firstName lastName email comments"`
	Value string `json:"value"`
}

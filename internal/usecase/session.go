package usecase

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/pkg/utils"
)

// NewSessionFactory seeds a new view session with a fresh Create and Read screen.
func NewSessionFactory(config utils.ViewConfig) repository.SessionFactory {
	return func(session *entity.Session) {
		session.Create = entity.NewCreateState(CreateDialogTitle)
		session.Read = entity.NewListState(config.PageSize, ReadDialogTitle)
	}
}

func loadSession(ctx context.Context, repo repository.SessionRepository, sessionID string) (*entity.Session, error) {
	session, err := repo.FindValidSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	return session, nil
}

// fieldRules maps each form field to the validator tags checked on every
// keystroke. Email relies on the browser's email input alone.
var fieldRules = map[string]string{
	entity.FieldFirstName: "letters",
	entity.FieldLastName:  "letters",
	entity.FieldEmail:     "",
	entity.FieldComments:  "letterspace",
}

// checkField returns the advisory message for value, or an error when field
// is not one of the form's inputs.
func checkField(field, value string) (string, error) {
	tag, ok := fieldRules[field]
	if !ok {
		return "", fmt.Errorf("invalid field %q", field)
	}
	return utils.ValidateField(value, tag), nil
}

// applyForm stores every field of req into form, recomputing messages.
func applyForm(form *entity.FormState, req *request.MovieReviewRequest) {
	for field, value := range req.Fields() {
		msg, _ := checkField(field, value)
		form.Set(field, value, msg)
	}
}

// blockSubmission reports whether strict validation rejects req. Struct
// rule messages fill in fields that have no keystroke message yet.
func blockSubmission(form *entity.FormState, req *request.MovieReviewRequest) bool {
	errs := utils.ValidateStruct(req)
	for field, msg := range errs {
		if form.Has(field) && form.Error(field) == "" {
			form.Errors[field] = msg
		}
	}
	return len(errs) > 0 || form.HasErrors()
}

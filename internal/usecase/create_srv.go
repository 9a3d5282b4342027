package usecase

import (
	"context"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/backend"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type CreateService interface {
	// Mount resets the Create screen, as on navigating to it. Right after a
	// Submit or CloseDialog it shows that result once instead.
	Mount(ctx context.Context, sessionID string) (*response.CreatePageResponse, error)
	ChangeField(ctx context.Context, sessionID string, req *request.FieldChangeRequest) (*response.FieldResponse, error)
	Submit(ctx context.Context, sessionID string, req *request.MovieReviewRequest) (*response.CreatePageResponse, error)
	CloseDialog(ctx context.Context, sessionID string) (*response.CreatePageResponse, error)
}

type createService struct {
	repo   *repository.Repository
	strict bool
	log    *zap.Logger
}

func NewCreateService(repo *repository.Repository, config utils.ViewConfig, log *zap.Logger) CreateService {
	return &createService{
		repo:   repo,
		strict: config.StrictValidation,
		log:    log.With(zap.String("service", "create")),
	}
}

func (s *createService) Mount(ctx context.Context, sessionID string) (*response.CreatePageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if session.Create.Pending {
		session.Create.Pending = false
		return createPage(session.Create), nil
	}

	session.Create.Reset()
	return createPage(session.Create), nil
}

func (s *createService) ChangeField(ctx context.Context, sessionID string, req *request.FieldChangeRequest) (*response.FieldResponse, error) {
	msg, err := checkField(req.Field, req.Value)
	if err != nil {
		return nil, err
	}

	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	session.Create.Form.Set(req.Field, req.Value, msg)

	values, errs := session.Create.Form.Snapshot()
	field := response.FormToResponse(values, errs).Field(req.Field)
	return &field, nil
}

func (s *createService) Submit(ctx context.Context, sessionID string, req *request.MovieReviewRequest) (*response.CreatePageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	session.Create.Pending = true
	applyForm(session.Create.Form, req)
	if s.strict && blockSubmission(session.Create.Form, req) {
		s.log.Warn("Create submission blocked by validation",
			zap.String("errors", utils.FormatValidationErrors(session.Create.Form.Errors)),
		)
		page := createPage(session.Create)
		session.Unlock()
		return page, nil
	}
	review := &entity.MovieReview{
		FirstName: session.Create.Form.Value(entity.FieldFirstName),
		LastName:  session.Create.Form.Value(entity.FieldLastName),
		Email:     session.Create.Form.Value(entity.FieldEmail),
		Comments:  session.Create.Form.Value(entity.FieldComments),
	}
	session.Unlock()

	err = s.repo.MovieReview.Create(ctx, review)

	session.Lock()
	defer session.Unlock()

	session.Create.Pending = true
	switch {
	case err == nil:
		session.Create.Form.Reset()
		session.Create.Dialog.Show(MsgAdded)
		s.log.Info("Movie review added", zap.String("email", review.Email))

	case backend.IsStatusError(err):
		// the backend answered; the form is cleared as for a success
		session.Create.Form.Reset()
		session.Create.Dialog.Show(MsgAddFailed)
		s.log.Warn("Movie review rejected by backend", zap.Error(err))

	default:
		session.Create.Dialog.Show(MsgAddFailed)
		s.log.Error("Movie review not sent", zap.Error(err))
	}

	return createPage(session.Create), nil
}

func (s *createService) CloseDialog(ctx context.Context, sessionID string) (*response.CreatePageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	session.Create.Dialog.Close()
	session.Create.Pending = true
	return createPage(session.Create), nil
}

// createPage must be called with the session locked.
func createPage(state *entity.CreateState) *response.CreatePageResponse {
	values, errs := state.Form.Snapshot()
	return &response.CreatePageResponse{
		Form:   response.FormToResponse(values, errs),
		Dialog: response.DialogToResponse(state.Dialog),
	}
}

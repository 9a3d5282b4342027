package usecase

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type ReadService interface {
	// Mount resets the Read screen to page 1 and fetches the collection.
	Mount(ctx context.Context, sessionID string) (*response.ReadPageResponse, error)
	// SetPage changes page; the full collection is fetched again and re-sliced.
	SetPage(ctx context.Context, sessionID string, page int) (*response.ReadPageResponse, error)
	BeginEdit(ctx context.Context, sessionID, reviewID string) (*response.ReadPageResponse, error)
	ChangeEditField(ctx context.Context, sessionID string, req *request.FieldChangeRequest) (*response.FieldResponse, error)
	CancelEdit(ctx context.Context, sessionID string) (*response.ReadPageResponse, error)
	Update(ctx context.Context, sessionID, reviewID string, req *request.MovieReviewRequest) (*response.ReadPageResponse, error)
	Remove(ctx context.Context, sessionID, reviewID string) (*response.ReadPageResponse, error)
	CloseDialog(ctx context.Context, sessionID string) (*response.ReadPageResponse, error)
}

type readService struct {
	repo   *repository.Repository
	strict bool
	log    *zap.Logger
}

func NewReadService(repo *repository.Repository, config utils.ViewConfig, log *zap.Logger) ReadService {
	return &readService{
		repo:   repo,
		strict: config.StrictValidation,
		log:    log.With(zap.String("service", "read")),
	}
}

// fetchAll replaces the session's collection. Failures are logged and leave
// the previous collection in place.
func (s *readService) fetchAll(ctx context.Context, session *entity.Session) {
	movies, err := s.repo.MovieReview.FindAll(ctx)
	if err != nil {
		s.log.Warn("Movie list not refreshed", zap.Error(err))
		return
	}

	session.Lock()
	defer session.Unlock()

	session.Read.Movies = movies
	if session.Read.EditingID != nil {
		if _, ok := session.Read.Find(session.Read.EditingID.String()); !ok {
			session.Read.CancelEdit()
		}
	}
}

func (s *readService) Mount(ctx context.Context, sessionID string) (*response.ReadPageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	session.Read.Reset()
	session.Unlock()

	s.fetchAll(ctx, session)
	return s.page(session), nil
}

func (s *readService) SetPage(ctx context.Context, sessionID string, page int) (*response.ReadPageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	session.Read.SetPage(page)
	session.Unlock()

	s.fetchAll(ctx, session)
	return s.page(session), nil
}

func (s *readService) BeginEdit(ctx context.Context, sessionID, reviewID string) (*response.ReadPageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	review, ok := session.Read.Find(reviewID)
	if !ok {
		return nil, fmt.Errorf("movie review %s not found", reviewID)
	}

	session.Read.BeginEdit(review)
	return readPage(session.Read), nil
}

func (s *readService) ChangeEditField(ctx context.Context, sessionID string, req *request.FieldChangeRequest) (*response.FieldResponse, error) {
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

	if session.Read.EditingID == nil {
		return nil, fmt.Errorf("invalid edit: no row is being edited")
	}

	session.Read.Edit.Set(req.Field, req.Value, msg)

	values, errs := session.Read.Edit.Snapshot()
	field := response.FormToResponse(values, errs).Field(req.Field)
	return &field, nil
}

func (s *readService) CancelEdit(ctx context.Context, sessionID string) (*response.ReadPageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	session.Read.CancelEdit()
	return readPage(session.Read), nil
}

func (s *readService) Update(ctx context.Context, sessionID, reviewID string, req *request.MovieReviewRequest) (*response.ReadPageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	if session.Read.EditingID == nil || session.Read.EditingID.String() != reviewID {
		review, ok := session.Read.Find(reviewID)
		if !ok {
			session.Unlock()
			return nil, fmt.Errorf("movie review %s not found", reviewID)
		}
		session.Read.BeginEdit(review)
	}

	applyForm(session.Read.Edit, req)
	if s.strict && blockSubmission(session.Read.Edit, req) {
		s.log.Warn("Update blocked by validation",
			zap.String("review_id", reviewID),
			zap.String("errors", utils.FormatValidationErrors(session.Read.Edit.Errors)),
		)
		page := readPage(session.Read)
		session.Unlock()
		return page, nil
	}

	record, _ := session.Read.EditedRecord()
	session.Unlock()

	if err := s.repo.MovieReview.Update(ctx, &record); err != nil {
		s.log.Warn("Movie review not updated", zap.Error(err), zap.String("review_id", reviewID))

		session.Lock()
		defer session.Unlock()
		session.Read.Dialog.Show(MsgUpdateFailed)
		return readPage(session.Read), nil
	}

	s.log.Info("Movie review updated", zap.String("review_id", reviewID))
	s.fetchAll(ctx, session)

	session.Lock()
	defer session.Unlock()

	if session.Read.IsEditing(record.ID) {
		session.Read.CancelEdit()
	}
	session.Read.Dialog.Show(MsgUpdated)
	return readPage(session.Read), nil
}

func (s *readService) Remove(ctx context.Context, sessionID, reviewID string) (*response.ReadPageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	id := entity.NewReviewID(reviewID)
	if review, ok := session.Read.Find(reviewID); ok {
		id = review.ID
	}
	session.Unlock()

	if err := s.repo.MovieReview.Delete(ctx, id); err != nil {
		s.log.Warn("Movie review not deleted", zap.Error(err), zap.String("review_id", reviewID))

		session.Lock()
		defer session.Unlock()
		session.Read.Dialog.Show(MsgDeleteFailed)
		return readPage(session.Read), nil
	}

	s.log.Info("Movie review deleted", zap.String("review_id", reviewID))
	s.fetchAll(ctx, session)

	session.Lock()
	defer session.Unlock()

	session.Read.Dialog.Show(MsgDeleted)
	return readPage(session.Read), nil
}

func (s *readService) CloseDialog(ctx context.Context, sessionID string) (*response.ReadPageResponse, error) {
	session, err := loadSession(ctx, s.repo.Session, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	session.Read.Dialog.Close()
	return readPage(session.Read), nil
}

func (s *readService) page(session *entity.Session) *response.ReadPageResponse {
	session.Lock()
	defer session.Unlock()
	return readPage(session.Read)
}

// readPage must be called with the session locked.
func readPage(state *entity.ListState) *response.ReadPageResponse {
	visible := state.Visible()
	rows := make([]response.MovieReviewResponse, 0, len(visible))
	for _, m := range visible {
		rows = append(rows, response.ReviewToResponse(m, state.IsEditing(m.ID)))
	}

	page := &response.ReadPageResponse{
		Reviews: *response.NewPaginatedResponse(rows, state.Page, state.PageSize, int64(len(state.Movies))),
		Dialog:  response.DialogToResponse(state.Dialog),
	}

	if state.EditingID != nil {
		values, errs := state.Edit.Snapshot()
		page.Edit = &response.EditResponse{
			ID:   state.EditingID.String(),
			Form: response.FormToResponse(values, errs),
		}
	}

	return page
}

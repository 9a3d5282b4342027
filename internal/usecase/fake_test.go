package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/pkg/backend"
	"movie-review/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	errTransport = fmt.Errorf("request failed: %w", errors.New("connection refused"))
	errStatus    = &backend.APIError{Method: http.MethodPost, StatusCode: http.StatusInternalServerError, Body: "boom"}
)

// fakeReviews stands in for the backend collection.
type fakeReviews struct {
	mu sync.Mutex

	movies []entity.MovieReview

	findErr   error
	createErr error
	updateErr error
	deleteErr error

	findCalls int
	created   []entity.MovieReview
	updated   []entity.MovieReview
	deleted   []entity.ReviewID
}

func (f *fakeReviews) FindAll(ctx context.Context) ([]entity.MovieReview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.findErr != nil {
		return nil, fmt.Errorf("failed to fetch movie reviews: %w", f.findErr)
	}
	out := make([]entity.MovieReview, len(f.movies))
	copy(out, f.movies)
	return out, nil
}

func (f *fakeReviews) Create(ctx context.Context, review *entity.MovieReview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, *review)
	if f.createErr != nil {
		return fmt.Errorf("failed to create movie review: %w", f.createErr)
	}
	review.ID = entity.NewReviewID(fmt.Sprintf("new-%d", len(f.movies)))
	f.movies = append(f.movies, *review)
	return nil
}

func (f *fakeReviews) Update(ctx context.Context, review *entity.MovieReview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, *review)
	if f.updateErr != nil {
		return fmt.Errorf("failed to update movie review: %w", f.updateErr)
	}
	for i := range f.movies {
		if f.movies[i].ID == review.ID {
			f.movies[i] = *review
			return nil
		}
	}
	return fmt.Errorf("failed to update movie review: %w", &backend.APIError{StatusCode: http.StatusNotFound})
}

func (f *fakeReviews) Delete(ctx context.Context, id entity.ReviewID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return fmt.Errorf("failed to delete movie review: %w", f.deleteErr)
	}
	for i := range f.movies {
		if f.movies[i].ID == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("failed to delete movie review: %w", &backend.APIError{StatusCode: http.StatusNotFound})
}

func (f *fakeReviews) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.movies {
		if f.movies[i].ID.String() == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return
		}
	}
}

func seedReviews(n int) []entity.MovieReview {
	out := make([]entity.MovieReview, n)
	for i := range out {
		out[i] = entity.MovieReview{
			ID:        entity.NewReviewID(fmt.Sprintf("m%d", i)),
			FirstName: "Reviewer",
			LastName:  fmt.Sprintf("Number%c", 'A'+i),
			Email:     fmt.Sprintf("r%d@example.com", i),
			Comments:  "Fine film",
		}
	}
	return out
}

// newTestRepository returns a repository over fake plus a live session id.
func newTestRepository(t *testing.T, fake *fakeReviews, view utils.ViewConfig) (*repository.Repository, string) {
	t.Helper()

	if view.PageSize == 0 {
		view.PageSize = 3
	}
	sessions := repository.NewSessionRepository(
		utils.SessionConfig{TTL: time.Minute, MaxEntries: 10, CookieName: "s"},
		NewSessionFactory(view),
		zap.NewNop(),
	)
	session, err := sessions.Create(context.Background())
	require.NoError(t, err)

	return &repository.Repository{MovieReview: fake, Session: sessions}, session.Token.String()
}

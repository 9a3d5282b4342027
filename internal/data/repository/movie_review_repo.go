package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"movie-review/internal/data/entity"
	"movie-review/pkg/backend"

	"go.uber.org/zap"
)

type MovieReviewRepository interface {
	FindAll(ctx context.Context) ([]entity.MovieReview, error)
	Create(ctx context.Context, review *entity.MovieReview) error
	Update(ctx context.Context, review *entity.MovieReview) error
	Delete(ctx context.Context, id entity.ReviewID) error
}

type movieReviewRepository struct {
	client backend.Iface
	log    *zap.Logger
}

func NewMovieReviewRepository(client backend.Iface, log *zap.Logger) MovieReviewRepository {
	return &movieReviewRepository{
		client: client,
		log:    log.With(zap.String("repository", "movie_review")),
	}
}

type listResponse struct {
	Movies []entity.MovieReview `json:"movies"`
}

type createPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Comments  string `json:"comments"`
}

type deletePayload struct {
	ID entity.ReviewID `json:"id"`
}

func (r *movieReviewRepository) FindAll(ctx context.Context) ([]entity.MovieReview, error) {
	body, err := r.client.Do(ctx, http.MethodGet, "", nil)
	if err != nil {
		r.log.Error("Failed to fetch movie reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch movie reviews: %w", err)
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		r.log.Error("Failed to decode movie reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to decode movie reviews: %w", err)
	}

	if resp.Movies == nil {
		resp.Movies = []entity.MovieReview{}
	}

	r.log.Debug("Fetched movie reviews", zap.Int("count", len(resp.Movies)))
	return resp.Movies, nil
}

// Create posts the four fields; the id the backend assigns is not read back.
func (r *movieReviewRepository) Create(ctx context.Context, review *entity.MovieReview) error {
	payload := createPayload{
		FirstName: review.FirstName,
		LastName:  review.LastName,
		Email:     review.Email,
		Comments:  review.Comments,
	}

	if _, err := r.client.Do(ctx, http.MethodPost, "", payload); err != nil {
		r.log.Error("Failed to create movie review",
			zap.Error(err),
			zap.String("email", review.Email),
		)
		return fmt.Errorf("failed to create movie review: %w", err)
	}

	return nil
}

func (r *movieReviewRepository) Update(ctx context.Context, review *entity.MovieReview) error {
	if review.ID.IsZero() {
		return fmt.Errorf("invalid movie review: id is required")
	}

	if _, err := r.client.Do(ctx, http.MethodPut, backend.ResourcePath(review.ID.String()), review); err != nil {
		r.log.Error("Failed to update movie review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("failed to update movie review %s: %w", review.ID, err)
	}

	return nil
}

func (r *movieReviewRepository) Delete(ctx context.Context, id entity.ReviewID) error {
	if id.IsZero() {
		return fmt.Errorf("invalid movie review: id is required")
	}

	if _, err := r.client.Do(ctx, http.MethodDelete, backend.ResourcePath(id.String()), deletePayload{ID: id}); err != nil {
		r.log.Error("Failed to delete movie review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("failed to delete movie review %s: %w", id, err)
	}

	return nil
}

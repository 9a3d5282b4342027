package repository

import (
	"context"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// SessionRepository keeps view sessions in memory. Nothing survives a restart.
type SessionRepository interface {
	Create(ctx context.Context) (*entity.Session, error)
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Len() int
}

// SessionFactory builds the per-screen state of a new session.
type SessionFactory func(session *entity.Session)

type sessionRepository struct {
	store   *expirable.LRU[uuid.UUID, *entity.Session]
	factory SessionFactory
	log     *zap.Logger
}

func NewSessionRepository(config utils.SessionConfig, factory SessionFactory, log *zap.Logger) SessionRepository {
	r := &sessionRepository{
		factory: factory,
		log:     log.With(zap.String("repository", "session")),
	}
	r.store = expirable.NewLRU[uuid.UUID, *entity.Session](config.MaxEntries, r.onEvict, config.TTL)
	return r
}

func (r *sessionRepository) onEvict(token uuid.UUID, _ *entity.Session) {
	r.log.Debug("Session evicted", zap.String("token", token.String()))
}

func (r *sessionRepository) Create(ctx context.Context) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Token:      utils.GenerateSessionToken(),
		LastSeenAt: now,
	}
	if r.factory != nil {
		r.factory(session)
	}

	r.store.Add(session.Token, session)
	return session, nil
}

// FindValidSession returns nil, nil for unknown or expired tokens. A hit
// re-adds the session, restarting its idle timer.
func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	parsed, err := utils.ParseUUID(token)
	if err != nil {
		return nil, nil
	}

	session, ok := r.store.Get(parsed)
	if !ok {
		return nil, nil
	}

	session.Lock()
	session.LastSeenAt = time.Now()
	session.Unlock()

	r.store.Add(parsed, session)
	return session, nil
}

func (r *sessionRepository) Len() int {
	return r.store.Len()
}

package conversation

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunSessionRepository implements SessionRepository with optional caching.
type BunSessionRepository struct {
	repo repository.Repository[*Session]
}

// NewBunSessionRepository creates a session repository without caching.
func NewBunSessionRepository(db *bun.DB) *BunSessionRepository {
	return NewBunSessionRepositoryWithCache(db, nil, nil)
}

// NewBunSessionRepositoryWithCache creates a session repository with caching.
// Session rows change rarely relative to how often viewers read them, which
// makes them the cache-friendly half of the schema.
func NewBunSessionRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunSessionRepository {
	base := NewSessionRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunSessionRepository{repo: base}
}

func (r *BunSessionRepository) Create(ctx context.Context, session *Session) (*Session, error) {
	record, err := r.repo.Create(ctx, session)
	if err != nil {
		return nil, mapRepositoryError(err, "session", session.ExternalKey)
	}
	return record, nil
}

func (r *BunSessionRepository) Update(ctx context.Context, session *Session) (*Session, error) {
	record, err := r.repo.Update(ctx, session)
	if err != nil {
		return nil, mapRepositoryError(err, "session", session.ID.String())
	}
	return record, nil
}

func (r *BunSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "session", id.String())
	}
	return record, nil
}

func (r *BunSessionRepository) GetByKey(ctx context.Context, externalKey string) (*Session, error) {
	record, err := r.repo.GetByIdentifier(ctx, externalKey)
	if err != nil {
		return nil, mapRepositoryError(err, "session", externalKey)
	}
	return record, nil
}

// List pages through sessions ordered by most recent activity.
func (r *BunSessionRepository) List(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	return r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("last_activity_at DESC")
		}),
		repository.SelectPaginate(limit, offset),
	)
}

// BunMessageRepository implements MessageRepository. Messages are append-only
// and read in full pages, so no cache wrapping is offered.
type BunMessageRepository struct {
	repo repository.Repository[*Message]
}

// NewBunMessageRepository creates a message repository.
func NewBunMessageRepository(db *bun.DB) *BunMessageRepository {
	return &BunMessageRepository{repo: NewMessageRepository(db)}
}

// Save upserts by primary key so transcript replays land on the same rows.
func (r *BunMessageRepository) Save(ctx context.Context, message *Message) (*Message, error) {
	record, err := r.repo.Upsert(ctx, message)
	if err != nil {
		return nil, mapRepositoryError(err, "message", message.ID.String())
	}
	return record, nil
}

func (r *BunMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*Message, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "message", id.String())
	}
	return record, nil
}

// ListBySession pages through one session's messages in transcript order.
func (r *BunMessageRepository) ListBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*Message, int, error) {
	return r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.session_id = ?", sessionID).Order("created_at ASC")
		}),
		repository.SelectPaginate(limit, offset),
	)
}

// FirstBySessionAndRole returns the earliest message in a session authored by
// the given role, or a NotFoundError when none exists.
func (r *BunMessageRepository) FirstBySessionAndRole(ctx context.Context, sessionID uuid.UUID, role Role) (*Message, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.session_id = ?", sessionID).
				Where("?TableAlias.role = ?", string(role)).
				Order("created_at ASC")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "message", Key: sessionID.String()}
	}
	return records[0], nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

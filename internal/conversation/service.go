package conversation

import (
	"context"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-conversations/internal/identity"
	"github.com/goliatone/go-conversations/internal/logging"
	"github.com/goliatone/go-conversations/pkg/interfaces"
)

const defaultPageSize = 50

// SessionRepository is the persistence contract the service needs for sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) (*Session, error)
	Update(ctx context.Context, session *Session) (*Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	GetByKey(ctx context.Context, externalKey string) (*Session, error)
	List(ctx context.Context, limit, offset int) ([]*Session, int, error)
}

// MessageRepository is the persistence contract the service needs for
// messages. Save carries upsert semantics: message identifiers are
// deterministic, so replaying a transcript must not duplicate rows.
type MessageRepository interface {
	Save(ctx context.Context, message *Message) (*Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Message, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*Message, int, error)
	FirstBySessionAndRole(ctx context.Context, sessionID uuid.UUID, role Role) (*Message, error)
}

// Service exposes the conversation retrieval and append use cases.
type Service interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	GetSessionByKey(ctx context.Context, externalKey string) (*Session, error)
	ListSessions(ctx context.Context, req ListSessionsRequest) (*SessionPage, error)
	ListMessages(ctx context.Context, req ListMessagesRequest) (*MessagePage, error)
	AppendMessage(ctx context.Context, req AppendMessageRequest) (*Message, error)
	FirstUserMessage(ctx context.Context, sessionID uuid.UUID) (*Message, error)
	SetTitle(ctx context.Context, sessionID uuid.UUID, title string) (*Session, error)
}

type service struct {
	sessions SessionRepository
	messages MessageRepository
	renderer interfaces.MessageRenderer
	logger   interfaces.Logger
	clock    func() time.Time
	pageSize int
}

// ServiceOption configures optional service collaborators.
type ServiceOption func(*service)

// WithLogger attaches a logger provider; the service scopes its own child.
func WithLogger(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *service) {
		s.logger = logging.ConversationLogger(provider)
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithDefaultPageSize overrides the page size applied when a request leaves
// its limit unset.
func WithDefaultPageSize(size int) ServiceOption {
	return func(s *service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewService wires the conversation service. The renderer is required: every
// message read path projects raw bodies through it.
func NewService(sessions SessionRepository, messages MessageRepository, renderer interfaces.MessageRenderer, opts ...ServiceOption) (Service, error) {
	if sessions == nil || messages == nil {
		return nil, ErrRepositoryRequired
	}
	if renderer == nil {
		return nil, ErrRendererRequired
	}

	s := &service{
		sessions: sessions,
		messages: messages,
		renderer: renderer,
		logger:   logging.NoOp(),
		clock:    time.Now,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error) {
	key := strings.TrimSpace(req.ExternalKey)
	if key == "" {
		return nil, ErrSessionKeyRequired
	}

	// Get-or-create: session identity derives from the external key, so a
	// second create for the same key returns the stored row.
	if existing, err := s.sessions.GetByKey(ctx, key); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}

	started := s.clock().UTC()
	if req.StartedAt != nil {
		started = req.StartedAt.UTC()
	}

	session := &Session{
		ID:             identity.SessionUUID(key),
		ExternalKey:    key,
		Title:          strings.TrimSpace(req.Title),
		Channel:        strings.TrimSpace(req.Channel),
		StartedAt:      started,
		LastActivityAt: started,
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	logging.WithSessionContext(s.logger, key, "").Debug("conversation.session.created", "session_id", created.ID)
	return created, nil
}

func (s *service) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	if id == uuid.Nil {
		return nil, ErrSessionIDRequired
	}
	return s.sessions.GetByID(ctx, id)
}

func (s *service) GetSessionByKey(ctx context.Context, externalKey string) (*Session, error) {
	key := strings.TrimSpace(externalKey)
	if key == "" {
		return nil, ErrSessionKeyRequired
	}
	return s.sessions.GetByKey(ctx, key)
}

func (s *service) ListSessions(ctx context.Context, req ListSessionsRequest) (*SessionPage, error) {
	limit, offset := s.normalizePage(req.Limit, req.Offset)
	sessions, total, err := s.sessions.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &SessionPage{Sessions: sessions, Total: total}, nil
}

func (s *service) ListMessages(ctx context.Context, req ListMessagesRequest) (*MessagePage, error) {
	if req.SessionID == uuid.Nil {
		return nil, ErrSessionIDRequired
	}
	// Resolve the session first so missing ids surface as not-found instead
	// of an empty page.
	if _, err := s.sessions.GetByID(ctx, req.SessionID); err != nil {
		return nil, err
	}

	limit, offset := s.normalizePage(req.Limit, req.Offset)
	records, total, err := s.messages.ListBySession(ctx, req.SessionID, limit, offset)
	if err != nil {
		return nil, err
	}

	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	now := s.clock()

	views := make([]*MessageView, 0, len(records))
	for _, record := range records {
		views = append(views, &MessageView{
			ID:          record.ID,
			SessionID:   record.SessionID,
			Role:        record.Role,
			BodyHTML:    s.renderer.Render(record.Body),
			CreatedAt:   record.CreatedAt,
			CreatedText: FormatTimestamp(record.CreatedAt, loc, now),
		})
	}
	return &MessagePage{Messages: views, Total: total}, nil
}

func (s *service) AppendMessage(ctx context.Context, req AppendMessageRequest) (*Message, error) {
	if err := validateAppend(req); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	created := s.clock().UTC()
	if req.CreatedAt != nil {
		created = req.CreatedAt.UTC()
	}

	sequenceKey := strings.TrimSpace(req.SequenceKey)
	if sequenceKey == "" {
		sequenceKey = created.Format(time.RFC3339Nano)
	}

	message := &Message{
		ID:        identity.MessageUUID(session.ID, sequenceKey),
		SessionID: session.ID,
		Role:      req.Role,
		Body:      req.Body,
		CreatedAt: created,
	}

	record, err := s.messages.Save(ctx, message)
	if err != nil {
		return nil, err
	}

	if created.After(session.LastActivityAt) {
		session.LastActivityAt = created
		if _, err := s.sessions.Update(ctx, session); err != nil {
			logging.WithSessionContext(s.logger, session.ExternalKey, string(req.Role)).
				Warn("conversation.session.activity_update_failed", "error", err)
		}
	}

	return record, nil
}

func (s *service) FirstUserMessage(ctx context.Context, sessionID uuid.UUID) (*Message, error) {
	if sessionID == uuid.Nil {
		return nil, ErrSessionIDRequired
	}
	return s.messages.FirstBySessionAndRole(ctx, sessionID, RoleUser)
}

func (s *service) SetTitle(ctx context.Context, sessionID uuid.UUID, title string) (*Session, error) {
	if sessionID == uuid.Nil {
		return nil, ErrSessionIDRequired
	}
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Title = strings.TrimSpace(title)
	return s.sessions.Update(ctx, session)
}

func validateAppend(req AppendMessageRequest) error {
	return validation.Errors{
		"session_id": func() error {
			if req.SessionID == uuid.Nil {
				return ErrSessionIDRequired
			}
			return nil
		}(),
		"role": func() error {
			if !req.Role.Valid() {
				return ErrRoleInvalid
			}
			return nil
		}(),
		"body": func() error {
			if strings.TrimSpace(req.Body) == "" {
				return ErrBodyRequired
			}
			return nil
		}(),
	}.Filter()
}

func (s *service) normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.pageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

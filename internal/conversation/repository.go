package conversation

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewSessionRepository builds the generic bun-backed repository for sessions.
// The identifier lookup is the platform-side external key so viewers can
// resolve a session without knowing its UUID.
func NewSessionRepository(db *bun.DB) repository.Repository[*Session] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Session]{
		NewRecord: func() *Session { return &Session{} },
		GetID: func(s *Session) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Session, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "external_key"
		},
		GetIdentifierValue: func(s *Session) string {
			return s.ExternalKey
		},
	})
}

// NewMessageRepository builds the generic bun-backed repository for messages.
func NewMessageRepository(db *bun.DB) repository.Repository[*Message] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Message]{
		NewRecord: func() *Message { return &Message{} },
		GetID: func(m *Message) uuid.UUID {
			return m.ID
		},
		SetID: func(m *Message, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(m *Message) string {
			return m.ID.String()
		},
	})
}

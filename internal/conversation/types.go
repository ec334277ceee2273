package conversation

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Valid reports whether the role is one of the recognized authors.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAgent
}

// Session models one conversation between an end user and an agent.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID             uuid.UUID  `bun:",pk,type:uuid"          json:"id"`
	ExternalKey    string     `bun:"external_key,notnull,unique" json:"external_key"`
	Title          string     `bun:"title"                  json:"title"`
	Channel        string     `bun:"channel"                json:"channel,omitempty"`
	StartedAt      time.Time  `bun:"started_at,nullzero,default:current_timestamp" json:"started_at"`
	LastActivityAt time.Time  `bun:"last_activity_at,nullzero,default:current_timestamp" json:"last_activity_at"`
	DeletedAt      *time.Time `bun:"deleted_at,nullzero"    json:"deleted_at,omitempty"`
}

// Message models a single transcript entry. Body holds the raw text as the
// platform delivered it; rendered HTML is derived per read and never stored.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID        uuid.UUID `bun:",pk,type:uuid"      json:"id"`
	SessionID uuid.UUID `bun:"session_id,notnull,type:uuid" json:"session_id"`
	Role      Role      `bun:"role,notnull"       json:"role"`
	Body      string    `bun:"body,notnull"       json:"body"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// MessageView is the display projection of a stored message: the raw body
// rendered to HTML plus a viewer-timezone timestamp label.
type MessageView struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	Role        Role      `json:"role"`
	BodyHTML    string    `json:"body_html"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedText string    `json:"created_text"`
}

// ListSessionsRequest pages through sessions, newest activity first.
type ListSessionsRequest struct {
	Limit  int
	Offset int
}

// ListMessagesRequest pages through one session's messages in chronological
// order. Location, when set, controls the timezone used for timestamp labels;
// it defaults to UTC.
type ListMessagesRequest struct {
	SessionID uuid.UUID
	Limit     int
	Offset    int
	Location  *time.Location
}

// AppendMessageRequest captures a new transcript entry. SequenceKey is any
// stable per-session key (platform message id, transcript index) used to
// derive a deterministic message identifier.
type AppendMessageRequest struct {
	SessionID   uuid.UUID
	Role        Role
	Body        string
	SequenceKey string
	CreatedAt   *time.Time
}

// CreateSessionRequest captures a new session keyed by the platform-side
// conversation identifier.
type CreateSessionRequest struct {
	ExternalKey string
	Title       string
	Channel     string
	StartedAt   *time.Time
}

// MessagePage bundles one page of projected messages with the total count so
// callers can build pagination controls.
type MessagePage struct {
	Messages []*MessageView
	Total    int
}

// SessionPage bundles one page of sessions with the total count.
type SessionPage struct {
	Sessions []*Session
	Total    int
}

// Package titles derives short display titles for conversation sessions,
// delegating to an external language-model generator when one is configured
// and falling back to a first-message truncation heuristic otherwise.
package titles

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/goliatone/go-conversations/internal/conversation"
	"github.com/goliatone/go-conversations/internal/logging"
	"github.com/goliatone/go-conversations/pkg/interfaces"
)

const (
	defaultMaxLength = 40
	fallbackTitle    = "New conversation"
)

var ErrConversationsRequired = errors.New("titles: conversation service is required")

// Service resolves display titles for sessions.
type Service struct {
	conversations conversation.Service
	generator     interfaces.TitleGenerator
	logger        interfaces.Logger
	maxLength     int
}

// Option configures optional collaborators.
type Option func(*Service)

// WithGenerator attaches the external title generator. Without one the
// service always uses the heuristic.
func WithGenerator(generator interfaces.TitleGenerator) Option {
	return func(s *Service) {
		s.generator = generator
	}
}

// WithLogger attaches a logger provider; the service scopes its own child.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.logger = logging.TitlesLogger(provider)
	}
}

// WithMaxLength overrides the maximum title length in runes.
func WithMaxLength(max int) Option {
	return func(s *Service) {
		if max > 0 {
			s.maxLength = max
		}
	}
}

// NewService wires the titles service on top of the conversation service.
func NewService(conversations conversation.Service, opts ...Option) (*Service, error) {
	if conversations == nil {
		return nil, ErrConversationsRequired
	}
	s := &Service{
		conversations: conversations,
		logger:        logging.NoOp(),
		maxLength:     defaultMaxLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// EnsureTitle returns the session's title, generating and persisting one when
// it is empty. Generator failures degrade to the heuristic; EnsureTitle only
// errors when the session cannot be loaded.
func (s *Service) EnsureTitle(ctx context.Context, sessionID uuid.UUID) (string, error) {
	session, err := s.conversations.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if title := strings.TrimSpace(session.Title); title != "" {
		return title, nil
	}

	prompt := ""
	if first, err := s.conversations.FirstUserMessage(ctx, sessionID); err == nil {
		prompt = first.Body
	}

	title := s.generate(ctx, session.ExternalKey, prompt)
	if _, err := s.conversations.SetTitle(ctx, sessionID, title); err != nil {
		logging.WithSessionContext(s.logger, session.ExternalKey, "").
			Warn("titles.persist_failed", "error", err)
	}
	return title, nil
}

func (s *Service) generate(ctx context.Context, sessionKey, prompt string) string {
	if s.generator != nil && strings.TrimSpace(prompt) != "" {
		generated, err := s.generator.GenerateTitle(ctx, prompt)
		if err == nil {
			if title := strings.TrimSpace(generated); title != "" {
				return Truncate(title, s.maxLength)
			}
		} else {
			logging.WithSessionContext(s.logger, sessionKey, "").
				Warn("titles.generator_failed", "error", err)
		}
	}
	return heuristicTitle(prompt, s.maxLength)
}

// HeuristicTitle builds a title from the opening user message: collapse
// whitespace, truncate at a word boundary, fall back to a generic label for
// empty prompts.
func HeuristicTitle(prompt string) string {
	return heuristicTitle(prompt, defaultMaxLength)
}

func heuristicTitle(prompt string, max int) string {
	collapsed := strings.Join(strings.Fields(prompt), " ")
	if collapsed == "" {
		return fallbackTitle
	}
	return Truncate(collapsed, max)
}

// Truncate shortens text to at most max runes, preferring to cut at the last
// space and appending an ellipsis when anything was dropped.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	cut := runes[:max]
	if idx := lastSpace(cut); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace) + "…"
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}

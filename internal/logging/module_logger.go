package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-conversations/pkg/interfaces"
)

const (
	rootModule         = "conversations"
	conversationModule = "conversations.conversation"
	titlesModule       = "conversations.titles"
	transcriptModule   = "conversations.transcript"
)

const (
	fieldSessionKey  = "session_key"
	fieldMessageRole = "role"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ConversationLogger returns the logger namespace reserved for session and
// message services.
func ConversationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, conversationModule)
}

// TitlesLogger returns the logger namespace reserved for title generation.
func TitlesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, titlesModule)
}

// TranscriptLogger returns the logger namespace reserved for transcript imports.
func TranscriptLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, transcriptModule)
}

// WithSessionContext enriches the provided logger with common conversation
// fields. Empty values are ignored.
func WithSessionContext(logger interfaces.Logger, sessionKey, role string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(sessionKey); trimmed != "" {
		fields[fieldSessionKey] = trimmed
	}
	if trimmed := strings.TrimSpace(role); trimmed != "" {
		fields[fieldMessageRole] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

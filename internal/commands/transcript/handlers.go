package transcript

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-conversations/internal/commands"
	"github.com/goliatone/go-conversations/internal/conversation"
	"github.com/goliatone/go-conversations/internal/logging"
	"github.com/goliatone/go-conversations/pkg/interfaces"
)

const importOperation = "transcript.import_file"

var _ command.Commander[ImportFileCommand] = (*ImportFileHandler)(nil)

// ImportFileHandler persists a transcript file through the conversation
// service, wrapped in the shared command handler foundation.
type ImportFileHandler struct {
	inner *commands.Handler[ImportFileCommand]
}

// NewImportFileHandler creates a handler bound to the supplied conversation
// service. The command wrapper logs under the commands namespace; the import
// itself logs under the transcript namespace.
func NewImportFileHandler(service conversation.Service, provider interfaces.LoggerProvider, opts ...commands.HandlerOption[ImportFileCommand]) *ImportFileHandler {
	commandLogger := commands.CommandLogger(provider, "transcript")
	importLogger := logging.TranscriptLogger(provider)

	exec := func(ctx context.Context, msg ImportFileCommand) error {
		return importFile(ctx, service, importLogger, msg)
	}

	handlerOpts := append([]commands.HandlerOption[ImportFileCommand]{
		commands.WithLogger[ImportFileCommand](commandLogger),
		commands.WithOperation[ImportFileCommand](importOperation),
	}, opts...)

	return &ImportFileHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ImportFileHandler) Execute(ctx context.Context, msg ImportFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

func importFile(ctx context.Context, service conversation.Service, logger interfaces.Logger, msg ImportFileCommand) error {
	source, err := os.ReadFile(msg.Path)
	if err != nil {
		return fmt.Errorf("transcript: read %s: %w", msg.Path, err)
	}

	parsed, err := Parse(source)
	if err != nil {
		return err
	}

	log := logging.WithSessionContext(logger, parsed.Header.Session, "")
	if msg.DryRun {
		log.Info("transcript.import.dry_run", "path", msg.Path, "messages", len(parsed.Entries))
		return nil
	}

	started := parsed.Header.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	}

	session, err := service.CreateSession(ctx, conversation.CreateSessionRequest{
		ExternalKey: parsed.Header.Session,
		Title:       parsed.Header.Title,
		Channel:     parsed.Header.Channel,
		StartedAt:   &started,
	})
	if err != nil {
		return err
	}

	for i, entry := range parsed.Entries {
		// Entries carry no timestamps of their own; offsetting from the
		// session start keeps transcript order stable across re-imports.
		createdAt := started.Add(time.Duration(i) * time.Second)
		if _, err := service.AppendMessage(ctx, conversation.AppendMessageRequest{
			SessionID:   session.ID,
			Role:        entry.Role,
			Body:        entry.Body,
			SequenceKey: strconv.Itoa(i),
			CreatedAt:   &createdAt,
		}); err != nil {
			return fmt.Errorf("transcript: append message %d: %w", i, err)
		}
	}

	log.Info("transcript.import.complete", "path", msg.Path, "messages", len(parsed.Entries))
	return nil
}

package conversations_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	conversations "github.com/goliatone/go-conversations"
)

func newModule(t *testing.T) *conversations.Module {
	t.Helper()
	cfg := conversations.DefaultConfig()
	cfg.Storage.DSN = "file:" + t.Name() + "?mode=memory&cache=shared"

	module, err := conversations.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	return module
}

func TestModule_DisabledConfig(t *testing.T) {
	cfg := conversations.DefaultConfig()
	cfg.Enabled = false

	if _, err := conversations.New(cfg); !errors.Is(err, conversations.ErrModuleDisabled) {
		t.Fatalf("expected ErrModuleDisabled, got %v", err)
	}
}

func TestModule_InvalidConfig(t *testing.T) {
	cfg := conversations.DefaultConfig()
	cfg.Storage.DSN = ""

	if _, err := conversations.New(cfg); !errors.Is(err, conversations.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestModule_ConversationRoundTrip(t *testing.T) {
	module := newModule(t)
	svc := module.Conversations()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, conversations.CreateSessionRequest{ExternalKey: "conv-900"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if _, err := svc.AppendMessage(ctx, conversations.AppendMessageRequest{
		SessionID:   session.ID,
		Role:        "user",
		Body:        "Steps:\n- restart the router\n- wait **two** minutes",
		SequenceKey: "1",
	}); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	page, err := svc.ListMessages(ctx, conversations.ListMessagesRequest{SessionID: session.ID})
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected one message, got %d", page.Total)
	}
	want := "<p>Steps:</p><ul><li>restart the router</li><li>wait <strong>two</strong> minutes</li></ul>"
	if page.Messages[0].BodyHTML != want {
		t.Fatalf("rendered body mismatch:\n got %q\nwant %q", page.Messages[0].BodyHTML, want)
	}
}

func TestModule_CachedSessionReads(t *testing.T) {
	cfg := conversations.DefaultConfig()
	cfg.Storage.DSN = "file:" + t.Name() + "?mode=memory&cache=shared"
	cfg.Features.Cache = true
	cfg.Cache.Enabled = true
	cfg.Cache.DefaultTTL = 30 * time.Second

	module, err := conversations.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	ctx := context.Background()
	session, err := module.Conversations().CreateSession(ctx, conversations.CreateSessionRequest{ExternalKey: "conv-910"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	// Read twice so the second lookup goes through the cache wrapper.
	for i := 0; i < 2; i++ {
		got, err := module.Conversations().GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession round %d: %v", i, err)
		}
		if got.ExternalKey != "conv-910" {
			t.Fatalf("round %d returned wrong session: %+v", i, got)
		}
	}
}

func TestModule_TitlesEnabledByDefault(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	session, err := module.Conversations().CreateSession(ctx, conversations.CreateSessionRequest{ExternalKey: "conv-901"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := module.Conversations().AppendMessage(ctx, conversations.AppendMessageRequest{
		SessionID:   session.ID,
		Role:        "user",
		Body:        "my invoice totals do not match the statement",
		SequenceKey: "1",
	}); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	title, err := module.Titles().EnsureTitle(ctx, session.ID)
	if err != nil {
		t.Fatalf("EnsureTitle: %v", err)
	}
	if title == "" {
		t.Fatalf("expected a derived title")
	}
}

func TestModule_ImporterWiresTranscripts(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	src := "---\nsession: conv-902\ntitle: Router reset\n---\nuser: my router keeps dropping\nagent: Power cycle it first.\n"
	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	if err := module.Importer().Execute(ctx, conversations.ImportFileCommand{Path: path}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	session, err := module.Conversations().GetSessionByKey(ctx, "conv-902")
	if err != nil {
		t.Fatalf("GetSessionByKey: %v", err)
	}
	if session.Title != "Router reset" {
		t.Fatalf("title mismatch: %q", session.Title)
	}
}

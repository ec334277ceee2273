// Package conversations is the embeddable runtime for storing, rendering, and
// titling chat transcripts. Hosts construct a Module from a Config and reach
// the underlying services through its accessors.
package conversations

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-conversations/internal/commands/transcript"
	"github.com/goliatone/go-conversations/internal/conversation"
	"github.com/goliatone/go-conversations/internal/logging/console"
	"github.com/goliatone/go-conversations/internal/logging/gologger"
	"github.com/goliatone/go-conversations/internal/markdown"
	"github.com/goliatone/go-conversations/internal/titles"
	"github.com/goliatone/go-conversations/pkg/interfaces"
	"github.com/goliatone/go-conversations/render"
)

// ErrModuleDisabled indicates the module was constructed with Enabled set to false.
var ErrModuleDisabled = errors.New("conversations: module is disabled")

// ConversationService exports the session and message service contract.
type ConversationService = conversation.Service

// TitleService exports the session title service.
type TitleService = *titles.Service

// Session exports the session record type.
type Session = conversation.Session

// Message exports the message record type.
type Message = conversation.Message

// MessageView exports the render-ready message projection.
type MessageView = conversation.MessageView

// CreateSessionRequest exports the session creation input.
type CreateSessionRequest = conversation.CreateSessionRequest

// AppendMessageRequest exports the message append input.
type AppendMessageRequest = conversation.AppendMessageRequest

// ListSessionsRequest exports the session listing input.
type ListSessionsRequest = conversation.ListSessionsRequest

// ListMessagesRequest exports the message listing input.
type ListMessagesRequest = conversation.ListMessagesRequest

// ImportFileCommand exports the transcript import message.
type ImportFileCommand = transcript.ImportFileCommand

// Module is the top level runtime façade.
type Module struct {
	config Config

	db    *bun.DB
	ownDB bool

	loggerProvider interfaces.LoggerProvider
	renderer       interfaces.MessageRenderer
	parser         interfaces.MarkdownParser
	titleGenerator interfaces.TitleGenerator
	cacheService   cache.CacheService
	keySerializer  cache.KeySerializer

	conversations conversation.Service
	titles        *titles.Service
	importer      *transcript.ImportFileHandler
}

// Option overrides a collaborator the module would otherwise build itself.
type Option func(*Module)

// WithDB injects an existing bun handle; the module will not close it.
func WithDB(db *bun.DB) Option {
	return func(m *Module) {
		m.db = db
	}
}

// WithLoggerProvider overrides the logging provider selected by the config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.loggerProvider = provider
	}
}

// WithRenderer overrides the message body renderer.
func WithRenderer(renderer interfaces.MessageRenderer) Option {
	return func(m *Module) {
		m.renderer = renderer
	}
}

// WithTitleGenerator attaches an external title generator, typically backed by
// a language model. Without one, titles fall back to the first-message heuristic.
func WithTitleGenerator(generator interfaces.TitleGenerator) Option {
	return func(m *Module) {
		m.titleGenerator = generator
	}
}

// WithCache attaches a cache service and key serializer for the session
// repository. Both must be provided for caching to engage.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(m *Module) {
		m.cacheService = service
		m.keySerializer = serializer
	}
}

// New constructs the module from configuration, opening storage and running
// schema migrations before any service is handed out.
func New(cfg Config, opts ...Option) (*Module, error) {
	if !cfg.Enabled {
		return nil, ErrModuleDisabled
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.loggerProvider == nil && cfg.Features.Logger {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.loggerProvider = provider
	}

	if m.db == nil {
		db, err := openDatabase(cfg.Storage)
		if err != nil {
			return nil, err
		}
		m.db = db
		m.ownDB = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := conversation.EnsureSchema(ctx, m.db); err != nil {
		m.closeOwnedDB()
		return nil, err
	}

	if m.renderer == nil {
		m.renderer = render.Renderer{}
	}
	m.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
		Extensions: cfg.Markdown.Extensions,
		Sanitize:   cfg.Markdown.Sanitize,
		HardWraps:  cfg.Markdown.HardWraps,
		SafeMode:   cfg.Markdown.SafeMode,
	})

	m.configureCacheDefaults()

	sessions := conversation.NewBunSessionRepositoryWithCache(m.db, m.sessionCache(), m.keySerializer)
	messages := conversation.NewBunMessageRepository(m.db)

	svc, err := conversation.NewService(sessions, messages, m.renderer,
		conversation.WithLogger(m.loggerProvider),
		conversation.WithDefaultPageSize(cfg.Display.DefaultPageSize),
	)
	if err != nil {
		m.closeOwnedDB()
		return nil, err
	}
	m.conversations = svc

	if cfg.Features.Titles {
		titleOpts := []titles.Option{
			titles.WithLogger(m.loggerProvider),
			titles.WithMaxLength(cfg.Titles.MaxLength),
		}
		if m.titleGenerator != nil {
			titleOpts = append(titleOpts, titles.WithGenerator(m.titleGenerator))
		}
		titleSvc, err := titles.NewService(svc, titleOpts...)
		if err != nil {
			m.closeOwnedDB()
			return nil, err
		}
		m.titles = titleSvc
	}

	m.importer = transcript.NewImportFileHandler(svc, m.loggerProvider)
	return m, nil
}

// Conversations returns the session and message service.
func (m *Module) Conversations() ConversationService {
	if m == nil {
		return nil
	}
	return m.conversations
}

// Titles returns the title service, or nil when the feature is disabled.
func (m *Module) Titles() TitleService {
	if m == nil {
		return nil
	}
	return m.titles
}

// Renderer returns the message body renderer used by read paths.
func (m *Module) Renderer() interfaces.MessageRenderer {
	if m == nil {
		return nil
	}
	return m.renderer
}

// Markdown returns the rich Markdown parser for trusted long-form content.
func (m *Module) Markdown() interfaces.MarkdownParser {
	if m == nil {
		return nil
	}
	return m.parser
}

// Importer returns the transcript file import handler.
func (m *Module) Importer() *transcript.ImportFileHandler {
	if m == nil {
		return nil
	}
	return m.importer
}

// DB exposes the underlying bun handle for advanced integrations.
func (m *Module) DB() *bun.DB {
	if m == nil {
		return nil
	}
	return m.db
}

// Location resolves the configured display timezone, defaulting to UTC.
func (m *Module) Location() *time.Location {
	tz := strings.TrimSpace(m.config.Display.Timezone)
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Close releases resources the module owns. Injected handles stay open.
func (m *Module) Close() error {
	if m == nil || !m.ownDB {
		return nil
	}
	return m.db.Close()
}

func (m *Module) closeOwnedDB() {
	if m.ownDB && m.db != nil {
		_ = m.db.Close()
	}
}

// configureCacheDefaults builds the cache collaborators when caching is
// enabled but the host injected none, honouring the configured TTL.
func (m *Module) configureCacheDefaults() {
	if !m.config.Features.Cache || !m.config.Cache.Enabled {
		return
	}

	if m.cacheService == nil {
		cacheCfg := cache.DefaultConfig()
		if m.config.Cache.DefaultTTL > 0 {
			cacheCfg.TTL = m.config.Cache.DefaultTTL
		}
		if service, err := cache.NewCacheService(cacheCfg); err == nil {
			m.cacheService = service
		}
	}

	if m.cacheService != nil && m.keySerializer == nil {
		m.keySerializer = cache.NewDefaultKeySerializer()
	}
}

func (m *Module) sessionCache() cache.CacheService {
	if !m.config.Features.Cache || !m.config.Cache.Enabled {
		return nil
	}
	return m.cacheService
}

func openDatabase(cfg StorageConfig) (*bun.DB, error) {
	driver := strings.TrimSpace(cfg.Driver)
	if driver == "" {
		driver = "sqlite3"
	}
	sqldb, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return console.NewProvider(console.Options{
			MinLevel: consoleLevel(cfg.Level),
		}), nil
	}
}

func consoleLevel(level string) *console.Level {
	var l console.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		l = console.LevelTrace
	case "debug":
		l = console.LevelDebug
	case "info":
		l = console.LevelInfo
	case "warn", "warning":
		l = console.LevelWarn
	case "error":
		l = console.LevelError
	case "fatal":
		l = console.LevelFatal
	default:
		return nil
	}
	return &l
}


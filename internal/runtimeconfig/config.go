package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrStorageDSNRequired = errors.New("conversations config: storage dsn is required")
var ErrStorageDriverUnknown = errors.New("conversations config: storage driver is invalid")
var ErrLoggingProviderRequired = errors.New("conversations config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("conversations config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("conversations config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("conversations config: logging format is invalid")
var ErrPageSizeInvalid = errors.New("conversations config: default page size must be zero or positive")
var ErrTitleLengthInvalid = errors.New("conversations config: title max length must be zero or positive")
var ErrTimezoneInvalid = errors.New("conversations config: timezone is invalid")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Storage  StorageConfig
	Cache    CacheConfig
	Display  DisplayConfig
	Titles   TitlesConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
	Features Features
}

// StorageConfig identifies the database backing sessions and messages.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures cache behaviour toggles for the session repository.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// DisplayConfig controls how message pages are shaped for rendering.
type DisplayConfig struct {
	DefaultPageSize int
	Timezone        string
}

// TitlesConfig controls generated session titles.
type TitlesConfig struct {
	MaxLength int
}

// MarkdownConfig captures parser behaviour for the rich Markdown path.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Titles bool
	Cache  bool
	Logger bool
}

// DefaultConfig returns opinionated defaults for embedding hosts.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Driver: "sqlite3",
			DSN:    "file:conversations.db?cache=shared",
		},
		Cache: CacheConfig{
			DefaultTTL: time.Minute,
		},
		Display: DisplayConfig{
			DefaultPageSize: 50,
			Timezone:        "UTC",
		},
		Titles: TitlesConfig{
			MaxLength: 40,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify"},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Titles: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrStorageDSNRequired
	}
	if driver := strings.TrimSpace(cfg.Storage.Driver); driver != "" && driver != "sqlite3" {
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, driver)
	}
	if cfg.Display.DefaultPageSize < 0 {
		return ErrPageSizeInvalid
	}
	if cfg.Titles.MaxLength < 0 {
		return ErrTitleLengthInvalid
	}
	if tz := strings.TrimSpace(cfg.Display.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("%w: %s", ErrTimezoneInvalid, tz)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

package conversations

import "github.com/goliatone/go-conversations/internal/runtimeconfig"

var (
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrPageSizeInvalid         = runtimeconfig.ErrPageSizeInvalid
	ErrTitleLengthInvalid      = runtimeconfig.ErrTitleLengthInvalid
	ErrTimezoneInvalid         = runtimeconfig.ErrTimezoneInvalid
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	DisplayConfig  = runtimeconfig.DisplayConfig
	TitlesConfig   = runtimeconfig.TitlesConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

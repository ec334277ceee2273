package transcript

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const importFileMessageType = "conversations.transcript.import_file"

// ImportFileCommand loads one transcript file and persists its session and
// messages. Imports are idempotent: session and message identifiers derive
// from the transcript's stable keys, so re-running an import does not
// duplicate rows.
type ImportFileCommand struct {
	// Path selects the transcript file to import.
	Path string `json:"path"`
	// DryRun parses and validates without persisting anything.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ImportFileCommand) Type() string { return importFileMessageType }

// Validate ensures the path is present before handlers execute.
func (cmd ImportFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("conversations.transcript.import_file.path_required", "path is required")
			}
			return nil
		})),
	)
}

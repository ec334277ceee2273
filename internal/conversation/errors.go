package conversation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSessionKeyRequired = errors.New("conversation: session external key is required")
	ErrSessionIDRequired  = errors.New("conversation: session id is required")
	ErrSessionNotFound    = errors.New("conversation: session not found")
	ErrMessageNotFound    = errors.New("conversation: message not found")
	ErrRoleInvalid        = errors.New("conversation: role must be user or agent")
	ErrBodyRequired       = errors.New("conversation: message body is required")
	ErrRendererRequired   = errors.New("conversation: message renderer is required")
	ErrRepositoryRequired = errors.New("conversation: repository is required")
)

// NotFoundError carries the resource and lookup key for missing records while
// unwrapping to the matching sentinel so callers can use errors.Is.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrSessionNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return fmt.Sprintf("conversation: %s not found", e.Resource)
	}
	return fmt.Sprintf("conversation: %s not found: %s", e.Resource, key)
}

func (e *NotFoundError) Unwrap() error {
	if e != nil && e.Resource == "message" {
		return ErrMessageNotFound
	}
	return ErrSessionNotFound
}

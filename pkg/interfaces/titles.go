package interfaces

import "context"

// TitleGenerator produces a short human-readable title for a conversation
// from its opening prompt. Implementations typically call an external
// language model; the module itself never performs that network call and
// treats any error as a signal to fall back to a heuristic title.
type TitleGenerator interface {
	GenerateTitle(ctx context.Context, prompt string) (string, error)
}

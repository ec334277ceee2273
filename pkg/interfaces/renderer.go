package interfaces

// MessageRenderer converts raw chat message text into a display-ready HTML
// fragment. Implementations must be pure: same input, same output, no I/O.
// The caller's rich-text surface is responsible for sanitizing the result.
type MessageRenderer interface {
	Render(text string) string
}

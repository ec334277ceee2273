package render

// Render converts raw message text into a display-ready HTML fragment. Text
// that already carries structural HTML markup passes through unchanged; the
// downstream rich-text surface is responsible for sanitizing it. Everything
// else goes through the Markdown converter. Empty input yields an empty
// string.
//
// Render is pure and deterministic. All working state is local to the call,
// so it is safe to invoke concurrently without coordination.
func Render(text string) string {
	if text == "" {
		return ""
	}
	if IsHTML(text) {
		return text
	}
	return ConvertMarkdown(text)
}

// Renderer adapts Render to the interfaces.MessageRenderer contract so it can
// be injected wherever a message rendering collaborator is expected. The zero
// value is ready to use.
type Renderer struct{}

// Render implements interfaces.MessageRenderer.
func (Renderer) Render(text string) string {
	return Render(text)
}

// Package render converts raw chat message text into HTML fragments suitable
// for a sanitizing rich-text display surface. Input may already be HTML, may
// be lightweight Markdown, or may be plain prose; the package decides which
// and always produces a single consistent HTML string.
package render

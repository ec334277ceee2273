package render

import "regexp"

// structuralTagPattern matches an opening or closing delimiter for one of the
// structural tag names a rich-text source emits. The tag name must be followed
// by whitespace, a self-closing slash, or the closing bracket so that prose
// like "x<y" or "1<2" is not misread as markup. Matching is case-insensitive
// and unanchored.
var structuralTagPattern = regexp.MustCompile(`(?i)</?(p|br|b|strong|i|em|ul|ol|li|h[1-6]|a|div|span|blockquote|pre|code|table)(\s|/|>)`)

// IsHTML reports whether the text already carries structural HTML markup.
// It is deliberately not a parser: the only job is to keep already-rendered
// HTML away from the Markdown converter, whose inline substitutions would
// corrupt it (a literal `*` inside an attribute would become emphasis).
func IsHTML(text string) bool {
	if text == "" {
		return false
	}
	return structuralTagPattern.MatchString(text)
}

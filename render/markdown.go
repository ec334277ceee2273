package render

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// inlineOrderedBreakPattern finds an ordered-list marker buried inside a
	// prose sentence: a sentence-ending period, spacing, then an integer with
	// a `.` or `)` delimiter and more spacing. Agent replies often emit an
	// entire numbered list as one line ("...as follows. 2. Up-sell: ..."); a
	// line break is inserted before the digit run so the line classifier can
	// see the marker. Known false positive: ordinary prose such as
	// "It costs $5. 2. are in stock." also matches.
	inlineOrderedBreakPattern = regexp.MustCompile(`\.[ ]+(\d+[.)])[ ]+`)

	unorderedItemPattern = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)
	orderedItemPattern   = regexp.MustCompile(`^\s*\d+[.)]\s+(.*)$`)
	orderedSplitPattern  = regexp.MustCompile(`\s+\d+[.)]\s+`)
	headingPattern       = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)
	codePattern   = regexp.MustCompile("`([^`]+)`")
)

type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// listAccumulator collects consecutive same-kind list items until they can be
// closed into a single list block. It holds items of exactly one kind at a
// time; switching kinds requires a flush first.
type listAccumulator struct {
	kind  listKind
	items []string
}

func (a *listAccumulator) open() bool { return len(a.items) > 0 }

func (a *listAccumulator) add(kind listKind, item string) {
	a.kind = kind
	a.items = append(a.items, item)
}

// flush closes the pending list into one block and resets the accumulator.
// It is a no-op when nothing has accumulated.
func (a *listAccumulator) flush(out *strings.Builder) {
	if !a.open() {
		return
	}
	tag := "ul"
	if a.kind == listOrdered {
		tag = "ol"
	}
	out.WriteString("<" + tag + ">")
	for _, item := range a.items {
		out.WriteString(item)
	}
	out.WriteString("</" + tag + ">")
	a.kind = listNone
	a.items = nil
}

// ConvertMarkdown transforms Markdown-flavored chat text into an HTML
// fragment. It is a total function: malformed or unmatched markers degrade to
// literal characters rather than producing an error.
func ConvertMarkdown(text string) string {
	if text == "" {
		return ""
	}

	text = inlineOrderedBreakPattern.ReplaceAllString(text, ".\n$1 ")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var out strings.Builder
	var acc listAccumulator

	for _, line := range strings.Split(text, "\n") {
		switch {
		case unorderedItemPattern.MatchString(line):
			if acc.kind == listOrdered {
				acc.flush(&out)
			}
			content := unorderedItemPattern.FindStringSubmatch(line)[1]
			acc.add(listUnordered, "<li>"+formatInline(content)+"</li>")

		case orderedItemPattern.MatchString(line):
			if acc.kind == listUnordered {
				acc.flush(&out)
			}
			content := orderedItemPattern.FindStringSubmatch(line)[1]
			for _, item := range splitOrderedItems(content) {
				acc.add(listOrdered, "<li>"+formatInline(item)+"</li>")
			}

		case strings.TrimSpace(line) == "":
			// Blank lines between items must not break list continuity.
			if acc.open() {
				continue
			}
			out.WriteString("<br/>")

		case headingPattern.MatchString(line):
			acc.flush(&out)
			match := headingPattern.FindStringSubmatch(line)
			level := len(match[1])
			out.WriteString(fmt.Sprintf("<h%d>%s</h%d>", level, formatInline(match[2]), level))

		default:
			acc.flush(&out)
			out.WriteString("<p>" + formatInline(line) + "</p>")
		}
	}

	acc.flush(&out)
	return out.String()
}

// splitOrderedItems breaks ordered-item content on any additional inline
// ordered markers, so "First 2. Second 3. Third" yields three items. Segments
// that trim to nothing are dropped.
func splitOrderedItems(content string) []string {
	parts := orderedSplitPattern.Split(content, -1)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// formatInline applies the inline substitutions to block content. Bold runs
// before italic so the asterisks consumed by a bold span are not reprocessed
// as nested emphasis; that ordering is load-bearing.
func formatInline(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")
	text = codePattern.ReplaceAllString(text, "<code>$1</code>")
	return text
}

// Package transcript imports conversation transcript files: a YAML
// frontmatter session header followed by role-prefixed message lines.
//
//	---
//	session: conv-001
//	title: Refund request
//	channel: web
//	started_at: 2026-05-01T12:00:00Z
//	---
//	user: I need help with a refund
//	agent: Sure. **What is** the order number?
package transcript

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-conversations/internal/conversation"
)

// Header models the transcript's frontmatter session metadata.
type Header struct {
	Session   string    `yaml:"session"`
	Title     string    `yaml:"title"`
	Channel   string    `yaml:"channel"`
	StartedAt time.Time `yaml:"started_at"`
}

// Entry is one parsed transcript message.
type Entry struct {
	Role conversation.Role
	Body string
}

// Transcript is the parsed form of one transcript file.
type Transcript struct {
	Header  Header
	Entries []Entry
}

// Parse extracts the session header and message entries from transcript
// source bytes. A line beginning with `user:` or `agent:` starts a new entry;
// any other non-empty line continues the previous entry's body, preserving
// multi-line messages. Blank lines inside a body are kept so Markdown block
// breaks survive the round trip.
func Parse(source []byte) (*Transcript, error) {
	var header Header
	body, err := frontmatter.Parse(bytes.NewReader(source), &header)
	if err != nil {
		return nil, fmt.Errorf("transcript: parse header: %w", err)
	}
	if strings.TrimSpace(header.Session) == "" {
		return nil, fmt.Errorf("transcript: header missing session key")
	}

	var entries []Entry
	for _, line := range strings.Split(string(body), "\n") {
		if role, rest, ok := matchRole(line); ok {
			entries = append(entries, Entry{Role: role, Body: rest})
			continue
		}
		if len(entries) == 0 {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, fmt.Errorf("transcript: content before first role marker: %q", line)
		}
		entries[len(entries)-1].Body += "\n" + line
	}

	for i := range entries {
		entries[i].Body = strings.TrimSpace(entries[i].Body)
	}

	return &Transcript{Header: header, Entries: entries}, nil
}

func matchRole(line string) (conversation.Role, string, bool) {
	for _, role := range []conversation.Role{conversation.RoleUser, conversation.RoleAgent} {
		prefix := string(role) + ":"
		if strings.HasPrefix(line, prefix) {
			return role, strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", "", false
}

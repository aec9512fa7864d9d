// Package model defines domain types for ccdash records and aggregates.
package model

import (
	"encoding/json"
	"time"
)

// Record is a single line of a Claude Code JSONL session transcript.
// Every field is optional; lines that fail to decode are dropped upstream.
type Record struct {
	Timestamp string   `json:"timestamp,omitempty"`
	Type      string   `json:"type,omitempty"`
	GitBranch string   `json:"gitBranch,omitempty"`
	SessionID string   `json:"sessionId,omitempty"`
	Cwd       string   `json:"cwd,omitempty"`
	Message   *Message `json:"message,omitempty"`
}

// Message is the message envelope inside a record. Content is either a plain
// string or an ordered array of content blocks, so it stays raw until asked for.
type Message struct {
	Role    string          `json:"role,omitempty"`
	Model   string          `json:"model,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// ContentBlock is one element of an assistant message's content array.
// Blocks of type "tool_use" carry the invoked tool's name.
type ContentBlock struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Text string `json:"text,omitempty"`
}

// Time parses the record timestamp. Returns a zero time when the field is
// absent or unparseable.
func (r *Record) Time() time.Time {
	if r.Timestamp == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// Blocks decodes the message content as an ordered block sequence.
// String content (the user-message shape) yields nil.
func (m *Message) Blocks() []ContentBlock {
	if m == nil || len(m.Content) == 0 || m.Content[0] != '[' {
		return nil
	}
	var blocks []ContentBlock
	if err := json.Unmarshal(m.Content, &blocks); err != nil {
		return nil
	}
	return blocks
}

// Text returns the display text of a message: string content as-is, otherwise
// the first text block. Used for session detail views only.
func (m *Message) Text() string {
	if m == nil || len(m.Content) == 0 {
		return ""
	}
	if m.Content[0] == '"' {
		var s string
		if err := json.Unmarshal(m.Content, &s); err == nil {
			return s
		}
		return ""
	}
	for _, b := range m.Blocks() {
		if b.Type == "text" && b.Text != "" {
			return b.Text
		}
	}
	return ""
}

// HistoryRecord is one line of the optional flat history.jsonl prompt log.
// Timestamp is epoch milliseconds.
type HistoryRecord struct {
	Timestamp int64  `json:"timestamp"`
	Display   string `json:"display"`
	Project   string `json:"project,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// Time converts the millisecond epoch timestamp.
func (h HistoryRecord) Time() time.Time {
	return time.UnixMilli(h.Timestamp)
}

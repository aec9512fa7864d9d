package model

import "time"

// SessionStats holds counts derived from a single session file.
type SessionStats struct {
	SessionID   string
	Project     string // raw directory name, the session's true key
	ProjectName string // best-effort display name
	FilePath    string

	Messages    int // records with type user or assistant
	ToolCalls   int // tool_use blocks in assistant records
	FirstBranch string

	StartTime time.Time
	EndTime   time.Time

	Tools  map[string]int // tool name -> call count
	Models map[string]int // display name -> assistant message count
}

// ProjectStats holds per-project totals accumulated over its sessions.
type ProjectStats struct {
	Project      string    `json:"project"`
	Name         string    `json:"name"`
	Sessions     int       `json:"sessions"`
	Messages     int       `json:"messages"`
	ToolCalls    int       `json:"toolCalls"`
	Branches     []string  `json:"branches,omitempty"`
	LastActivity time.Time `json:"lastActivity,omitzero"`
}

// NameCount is one entry of a ranked frequency listing.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

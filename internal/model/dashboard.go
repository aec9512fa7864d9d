package model

import "time"

// Dashboard is the batch-mode output artifact. Key set is fixed; consumers
// (the static frontend) rely on every top-level key being present.
type Dashboard struct {
	GeneratedAt     time.Time          `json:"generatedAt"`
	DateRange       DateRange          `json:"dateRange"`
	Summary         Summary            `json:"summary"`
	ModelUsage      []ModelBreakdown   `json:"modelUsage"`
	ToolUsage       []NameCount        `json:"toolUsage"`
	DailyActivity   []DailyActivity    `json:"dailyActivity"`
	HourlyActivity  [24]int            `json:"hourlyActivity"`
	WeekdayActivity [7]int             `json:"weekdayActivity"`
	Projects        []ProjectStats     `json:"projects"`
	GitBranches     []NameCount        `json:"gitBranches"`
	TokenTrends     []DailyModelTokens `json:"tokenTrends"`
	Insights        []string           `json:"insights"`
}

// DateRange bounds the data that went into the artifact.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Summary holds the top-level totals.
type Summary struct {
	TotalSessions int       `json:"totalSessions"`
	TotalMessages int       `json:"totalMessages"`
	TotalToolCalls int      `json:"totalToolCalls"`
	TotalProjects int       `json:"totalProjects"`
	ActiveDays    int       `json:"activeDays"`
	LastActivity  time.Time `json:"lastActivity,omitzero"`
	EstimatedCost float64   `json:"estimatedCost"`
}

// ModelBreakdown is one model's row in the artifact and the dashboard API:
// session count from the scan, token totals and cost from the cache.
type ModelBreakdown struct {
	Model        string  `json:"model"`
	Sessions     int     `json:"sessions"`
	InputTokens  int64   `json:"inputTokens"`
	OutputTokens int64   `json:"outputTokens"`
	CacheReadTokens  int64   `json:"cacheReadTokens"`
	CacheWriteTokens int64   `json:"cacheWriteTokens"`
	EstimatedCost    float64 `json:"estimatedCost"`
}

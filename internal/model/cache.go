package model

import "encoding/json"

// UsageCache mirrors the externally maintained stats-cache.json snapshot.
// It is trusted as-is; a parse failure drops the whole cache, never single fields.
type UsageCache struct {
	TotalSessions    int                    `json:"totalSessions"`
	TotalMessages    int                    `json:"totalMessages"`
	ModelUsage       map[string]ModelTokens `json:"modelUsage"`
	DailyActivity    []DailyActivity        `json:"dailyActivity"`
	HourCounts       map[string]int         `json:"hourCounts"`
	DailyModelTokens []DailyModelTokens     `json:"dailyModelTokens"`
	LongestSession   *LongestSession        `json:"longestSession,omitempty"`
	FirstSessionDate string                 `json:"firstSessionDate,omitempty"`
}

// ModelTokens holds precomputed token totals for one model.
type ModelTokens struct {
	InputTokens     int64 `json:"inputTokens"`
	OutputTokens    int64 `json:"outputTokens"`
	CacheReadTokens int64 `json:"cacheReadInputTokens"`
	CacheWriteTokens int64 `json:"cacheCreationInputTokens"`
}

// DailyActivity is one precomputed per-day row from the cache.
type DailyActivity struct {
	Date          string `json:"date"`
	MessageCount  int    `json:"messageCount"`
	SessionCount  int    `json:"sessionCount"`
	ToolCallCount int    `json:"toolCallCount"`
}

// LongestSession describes the cache's record-holding session.
type LongestSession struct {
	SessionID    string `json:"sessionId,omitempty"`
	MessageCount int    `json:"messageCount,omitempty"`
	DurationMs   int64  `json:"duration,omitempty"`
}

// DailyModelTokens is one row of the cache's dailyModelTokens array. The JSON
// shape is a flat object: a "date" key plus one numeric key per model.
type DailyModelTokens struct {
	Date   string
	Tokens map[string]int64
}

// UnmarshalJSON splits the date key from the per-model token counts.
// Non-numeric values other than date are ignored.
func (d *DailyModelTokens) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Tokens = make(map[string]int64, len(raw))
	for k, v := range raw {
		if k == "date" {
			_ = json.Unmarshal(v, &d.Date)
			continue
		}
		var n int64
		if err := json.Unmarshal(v, &n); err == nil {
			d.Tokens[k] = n
		}
	}
	return nil
}

// MarshalJSON restores the flat object shape.
func (d DailyModelTokens) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Tokens)+1)
	out["date"] = d.Date
	for k, v := range d.Tokens {
		out[k] = v
	}
	return json.Marshal(out)
}

// TotalTokens sums the day's tokens across models.
func (d DailyModelTokens) TotalTokens() int64 {
	var total int64
	for _, n := range d.Tokens {
		total += n
	}
	return total
}

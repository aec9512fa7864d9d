package pipeline

import (
	"github.com/theirongolddev/ccdash/internal/model"
)

// HistoryDay groups prompt-history entries under one calendar date.
type HistoryDay struct {
	Date    string                `json:"date"`
	Entries []model.HistoryRecord `json:"entries"`
}

// DefaultHistoryLimit is applied when the client supplies no usable limit.
const DefaultHistoryLimit = 20

// GroupHistory buckets history records by local date, preserving input order
// within each day, and keeps the trailing limit dates by input order.
func GroupHistory(records []model.HistoryRecord, limit int) []HistoryDay {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	byDate := make(map[string]*HistoryDay)
	var order []string

	for _, rec := range records {
		key := rec.Time().Local().Format(dateFormat)
		day, ok := byDate[key]
		if !ok {
			day = &HistoryDay{Date: key}
			byDate[key] = day
			order = append(order, key)
		}
		day.Entries = append(day.Entries, rec)
	}

	if len(order) > limit {
		order = order[len(order)-limit:]
	}

	out := make([]HistoryDay, 0, len(order))
	for _, key := range order {
		out = append(out, *byDate[key])
	}
	return out
}

package pipeline

import (
	"fmt"
	"time"

	"github.com/theirongolddev/ccdash/internal/config"
	"github.com/theirongolddev/ccdash/internal/model"
	"github.com/theirongolddev/ccdash/internal/source"
)

// ScanResult holds everything one full filesystem pass produced.
type ScanResult struct {
	Sessions []model.SessionStats
	Projects []model.ProjectStats
	Acc      *Accumulator
}

// Scan walks every discovered session file once, sequentially, and aggregates.
// Unreadable files contribute nothing; only an unreadable projects directory
// is an error.
func Scan(dataDir string, now time.Time, retentionMonths int) (*ScanResult, error) {
	files, err := source.ScanProjects(dataDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataDir, err)
	}

	if retentionMonths <= 0 {
		retentionMonths = 6
	}
	acc := NewAccumulator(now.AddDate(0, -retentionMonths, 0))

	result := &ScanResult{Acc: acc}
	for _, f := range files {
		records := source.ReadRecords(f.Path)
		result.Sessions = append(result.Sessions, acc.WalkSession(f, records))
	}
	result.Projects = AggregateProjects(result.Sessions)
	return result, nil
}

// BuildDashboard shapes a scan plus the trusted cache snapshot into the batch
// artifact. A nil cache drops only cache-derived sections (token totals, daily
// history beyond the window, trends); scan-derived sections always populate.
func BuildDashboard(scan *ScanResult, cache *model.UsageCache, now time.Time) model.Dashboard {
	acc := scan.Acc

	d := model.Dashboard{
		GeneratedAt:     now,
		HourlyActivity:  acc.Hourly,
		WeekdayActivity: acc.Weekday,
		ToolUsage:       TopN(acc.ToolCounts, TopTools),
		GitBranches:     TopN(acc.BranchCounts, TopBranches),
		Projects:        TruncateProjects(scan.Projects, TopProjects),
	}

	d.Summary = model.Summary{
		TotalSessions:  len(scan.Sessions),
		TotalMessages:  acc.Messages,
		TotalToolCalls: acc.ToolCalls,
		TotalProjects:  len(scan.Projects),
		ActiveDays:     acc.ActiveDays(),
		LastActivity:   acc.LastActivity,
	}

	d.DateRange = model.DateRange{To: now.Local().Format(dateFormat)}
	if days := acc.DailyList(); len(days) > 0 {
		d.DateRange.From = days[0].Date
	}
	d.DailyActivity = acc.DailyList()

	if cache != nil {
		// The cache is the trusted snapshot for lifetime totals; the scan only
		// covers the retention window.
		if cache.TotalSessions > d.Summary.TotalSessions {
			d.Summary.TotalSessions = cache.TotalSessions
		}
		if cache.TotalMessages > d.Summary.TotalMessages {
			d.Summary.TotalMessages = cache.TotalMessages
		}
		if cache.FirstSessionDate != "" {
			d.DateRange.From = cache.FirstSessionDate
		}
		if len(cache.DailyActivity) > 0 {
			d.DailyActivity = cache.DailyActivity
		}
		d.TokenTrends = trailingTrends(cache.DailyModelTokens, 30)
		d.ModelUsage = ModelBreakdowns(acc, cache)
		for _, mb := range d.ModelUsage {
			d.Summary.EstimatedCost += mb.EstimatedCost
		}
	} else {
		d.ModelUsage = ModelBreakdowns(acc, nil)
	}

	d.Insights = Insights(d)
	return d
}

// ModelBreakdowns merges per-model session counts from the scan with token
// totals from the cache, classified into display names, and prices each row.
func ModelBreakdowns(acc *Accumulator, cache *model.UsageCache) []model.ModelBreakdown {
	byName := make(map[string]*model.ModelBreakdown)

	get := func(display string) *model.ModelBreakdown {
		mb, ok := byName[display]
		if !ok {
			mb = &model.ModelBreakdown{Model: display}
			byName[display] = mb
		}
		return mb
	}

	for display, sessions := range acc.ModelSessions {
		get(display).Sessions += sessions
	}
	if cache != nil {
		for raw, mt := range cache.ModelUsage {
			mb := get(config.DisplayModelName(raw))
			mb.InputTokens += mt.InputTokens
			mb.OutputTokens += mt.OutputTokens
			mb.CacheReadTokens += mt.CacheReadTokens
			mb.CacheWriteTokens += mt.CacheWriteTokens
		}
	}

	counts := make(map[string]int, len(byName))
	for name, mb := range byName {
		mb.EstimatedCost = config.EstimateCost(name,
			mb.InputTokens, mb.OutputTokens, mb.CacheReadTokens, mb.CacheWriteTokens)
		// Rank by output tokens, then sessions, so scan-only rows still order.
		counts[name] = int(mb.OutputTokens) + mb.Sessions
	}

	ranked := TopN(counts, 0)
	out := make([]model.ModelBreakdown, 0, len(ranked))
	for _, nc := range ranked {
		out = append(out, *byName[nc.Name])
	}
	return out
}

// trailingTrends keeps the last n rows of the cache's daily token series.
func trailingTrends(trends []model.DailyModelTokens, n int) []model.DailyModelTokens {
	if len(trends) > n {
		return trends[len(trends)-n:]
	}
	return trends
}

// Timeline merges the cache's daily rows with freshly scanned activity over
// the trailing seven days. Scanned counts win for days where the scan saw
// anything; cached rows fill the rest. Every day is present, zeros included.
func Timeline(scan *ScanResult, cache *model.UsageCache, now time.Time) []model.DailyActivity {
	cached := make(map[string]model.DailyActivity)
	if cache != nil {
		for _, day := range cache.DailyActivity {
			cached[day.Date] = day
		}
	}

	out := make([]model.DailyActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		key := now.AddDate(0, 0, -i).Local().Format(dateFormat)
		entry := model.DailyActivity{Date: key}
		if day, ok := cached[key]; ok {
			entry = day
		}
		if day, ok := scan.Acc.Daily[key]; ok {
			entry = *day
		}
		out = append(out, entry)
	}
	return out
}

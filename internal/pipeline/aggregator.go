// Package pipeline turns parsed records into aggregate statistics and shapes
// them into the dashboard artifact. All state lives in accumulators passed in
// and returned; nothing here is package-global or persisted.
package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/ccdash/internal/config"
	"github.com/theirongolddev/ccdash/internal/model"
	"github.com/theirongolddev/ccdash/internal/source"
)

const dateFormat = "2006-01-02"

// Accumulator collects cross-session counters during a single scan pass.
type Accumulator struct {
	Cutoff time.Time // start of the retention window; earlier records skip time buckets

	Messages  int
	ToolCalls int

	Hourly  [24]int
	Weekday [7]int
	Daily   map[string]*model.DailyActivity // keyed by local date

	ToolCounts    map[string]int
	BranchCounts  map[string]int
	ModelSessions map[string]int // display name -> sessions the model appeared in

	LastActivity time.Time
}

// NewAccumulator returns an empty accumulator with the given retention cutoff.
func NewAccumulator(cutoff time.Time) *Accumulator {
	return &Accumulator{
		Cutoff:        cutoff,
		Daily:         make(map[string]*model.DailyActivity),
		ToolCounts:    make(map[string]int),
		BranchCounts:  make(map[string]int),
		ModelSessions: make(map[string]int),
	}
}

func (a *Accumulator) day(ts time.Time) *model.DailyActivity {
	key := ts.Local().Format(dateFormat)
	d, ok := a.Daily[key]
	if !ok {
		d = &model.DailyActivity{Date: key}
		a.Daily[key] = d
	}
	return d
}

// WalkSession iterates one session's records in file order, updating the
// shared counters and returning the session's own stats.
//
// Records without a timestamp, or outside the retention window, still count
// toward message and tool totals but never touch the time buckets. Branch
// attribution is first-seen-in-session.
func (a *Accumulator) WalkSession(df source.DiscoveredFile, records []model.Record) model.SessionStats {
	s := model.SessionStats{
		SessionID:   df.SessionID,
		Project:     df.ProjectDir,
		ProjectName: df.ProjectName,
		FilePath:    df.Path,
		Tools:       make(map[string]int),
		Models:      make(map[string]int),
	}

	modelSeen := make(map[string]bool)

	for i := range records {
		rec := &records[i]

		ts := rec.Time()
		inWindow := !ts.IsZero() && !ts.Before(a.Cutoff)
		var day *model.DailyActivity
		if inWindow {
			day = a.day(ts)
			local := ts.Local()
			a.Hourly[local.Hour()]++
			a.Weekday[int(local.Weekday())]++

			if s.StartTime.IsZero() || ts.Before(s.StartTime) {
				s.StartTime = ts
			}
			if ts.After(s.EndTime) {
				s.EndTime = ts
			}
			if ts.After(a.LastActivity) {
				a.LastActivity = ts
			}
		}

		isMessage := rec.Type == "user" || rec.Type == "assistant"
		if isMessage {
			s.Messages++
			a.Messages++
			if day != nil {
				day.MessageCount++
			}
		}

		if rec.GitBranch != "" && s.FirstBranch == "" {
			s.FirstBranch = rec.GitBranch
			a.BranchCounts[rec.GitBranch]++
		}

		if rec.Type == "assistant" {
			for _, block := range rec.Message.Blocks() {
				if block.Type != "tool_use" {
					continue
				}
				s.ToolCalls++
				a.ToolCalls++
				if day != nil {
					day.ToolCallCount++
				}
				if block.Name != "" {
					s.Tools[block.Name]++
					a.ToolCounts[block.Name]++
				}
			}
		}

		if rec.Message != nil && rec.Message.Model != "" {
			display := config.DisplayModelName(rec.Message.Model)
			s.Models[display]++
			if !modelSeen[display] {
				modelSeen[display] = true
				a.ModelSessions[display]++
			}
		}
	}

	if !s.StartTime.IsZero() {
		a.day(s.StartTime).SessionCount++
	}

	return s
}

// ActiveDays returns the number of distinct dates registered in the window.
func (a *Accumulator) ActiveDays() int {
	return len(a.Daily)
}

// DailyList returns the accumulated per-day rows sorted by date ascending.
func (a *Accumulator) DailyList() []model.DailyActivity {
	days := make([]model.DailyActivity, 0, len(a.Daily))
	for _, d := range a.Daily {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// AggregateProjects groups session stats by raw project directory. Project
// last-activity is the max of its sessions' end times; branch sets are sorted
// for stable output. Result is ordered by session count descending, name
// ascending on ties.
func AggregateProjects(sessions []model.SessionStats) []model.ProjectStats {
	byDir := make(map[string]*model.ProjectStats)
	branches := make(map[string]map[string]struct{})

	for _, s := range sessions {
		ps, ok := byDir[s.Project]
		if !ok {
			ps = &model.ProjectStats{Project: s.Project, Name: s.ProjectName}
			byDir[s.Project] = ps
			branches[s.Project] = make(map[string]struct{})
		}
		ps.Sessions++
		ps.Messages += s.Messages
		ps.ToolCalls += s.ToolCalls
		if s.FirstBranch != "" {
			branches[s.Project][s.FirstBranch] = struct{}{}
		}
		if s.EndTime.After(ps.LastActivity) {
			ps.LastActivity = s.EndTime
		}
	}

	projects := make([]model.ProjectStats, 0, len(byDir))
	for dir, ps := range byDir {
		for b := range branches[dir] {
			ps.Branches = append(ps.Branches, b)
		}
		sort.Strings(ps.Branches)
		projects = append(projects, *ps)
	}
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Sessions != projects[j].Sessions {
			return projects[i].Sessions > projects[j].Sessions
		}
		return projects[i].Project < projects[j].Project
	})
	return projects
}

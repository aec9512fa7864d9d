package pipeline

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/theirongolddev/ccdash/internal/model"
	"github.com/theirongolddev/ccdash/internal/source"
)

func testAccumulator() *Accumulator {
	return NewAccumulator(time.Now().AddDate(0, -6, 0))
}

func df(project, session string) source.DiscoveredFile {
	return source.DiscoveredFile{
		Path:        "/tmp/" + session + ".jsonl",
		ProjectDir:  project,
		ProjectName: source.DecodeProjectName(project),
		SessionID:   session,
	}
}

// records builds parsed records from JSONL lines.
func records(lines ...string) []model.Record {
	var data []byte
	for _, l := range lines {
		data = append(data, l...)
		data = append(data, '\n')
	}
	return source.ParseRecords(data)
}

func recent(offset time.Duration) string {
	return time.Now().Add(-offset).UTC().Format(time.RFC3339Nano)
}

func TestWalkSession_ProjectTotals(t *testing.T) {
	// Two session files in one project: one with 3 user/assistant records and
	// a single tool_use block named Read, the other with 1 user record.
	acc := testAccumulator()

	first := acc.WalkSession(df("-home-a-projects-app", "s1"), records(
		fmt.Sprintf(`{"type":"user","timestamp":%q}`, recent(3*time.Hour)),
		fmt.Sprintf(`{"type":"assistant","timestamp":%q,"message":{"model":"claude-opus-4","content":[{"type":"tool_use","name":"Read"}]}}`, recent(2*time.Hour)),
		fmt.Sprintf(`{"type":"user","timestamp":%q}`, recent(time.Hour)),
	))
	second := acc.WalkSession(df("-home-a-projects-app", "s2"), records(
		fmt.Sprintf(`{"type":"user","timestamp":%q}`, recent(30*time.Minute)),
	))

	projects := AggregateProjects([]model.SessionStats{first, second})
	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}
	p := projects[0]
	if p.Sessions != 2 || p.Messages != 4 || p.ToolCalls != 1 {
		t.Errorf("project = sessions:%d messages:%d toolCalls:%d, want 2/4/1",
			p.Sessions, p.Messages, p.ToolCalls)
	}
	if acc.ToolCounts["Read"] != 1 {
		t.Errorf("ToolCounts[Read] = %d, want 1", acc.ToolCounts["Read"])
	}
	if acc.ModelSessions["Opus"] != 1 {
		t.Errorf("ModelSessions[Opus] = %d, want 1", acc.ModelSessions["Opus"])
	}
}

func TestWalkSession_MalformedLineDoesNotChangeCounts(t *testing.T) {
	lines := []string{
		fmt.Sprintf(`{"type":"user","timestamp":%q}`, recent(time.Hour)),
		fmt.Sprintf(`{"type":"assistant","timestamp":%q,"message":{"content":[{"type":"tool_use","name":"Bash"}]}}`, recent(time.Hour)),
	}

	clean := testAccumulator()
	cleanStats := clean.WalkSession(df("p", "s"), records(lines...))

	dirty := testAccumulator()
	dirtyStats := dirty.WalkSession(df("p", "s"), records(
		lines[0], `{bad json`, lines[1],
	))

	if cleanStats.Messages != dirtyStats.Messages || cleanStats.ToolCalls != dirtyStats.ToolCalls {
		t.Errorf("malformed line changed counts: %+v vs %+v", cleanStats, dirtyStats)
	}
	if clean.Messages != dirty.Messages || clean.ToolCalls != dirty.ToolCalls {
		t.Errorf("malformed line changed accumulator totals")
	}
}

func TestWalkSession_FirstBranchWins(t *testing.T) {
	acc := testAccumulator()
	s := acc.WalkSession(df("p", "s"), records(
		fmt.Sprintf(`{"type":"user","gitBranch":"main","timestamp":%q}`, recent(2*time.Hour)),
		fmt.Sprintf(`{"type":"user","gitBranch":"feature/x","timestamp":%q}`, recent(time.Hour)),
	))

	if s.FirstBranch != "main" {
		t.Errorf("FirstBranch = %q, want main (first seen)", s.FirstBranch)
	}
	if acc.BranchCounts["main"] != 1 || acc.BranchCounts["feature/x"] != 0 {
		t.Errorf("BranchCounts = %v, want only main counted", acc.BranchCounts)
	}
}

func TestWalkSession_UntimestampedStillCounted(t *testing.T) {
	acc := testAccumulator()
	s := acc.WalkSession(df("p", "s"), records(
		`{"type":"user"}`,
		`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Grep"}]}}`,
	))

	if s.Messages != 2 || s.ToolCalls != 1 {
		t.Errorf("messages:%d toolCalls:%d, want 2/1", s.Messages, s.ToolCalls)
	}

	var hourSum int
	for _, n := range acc.Hourly {
		hourSum += n
	}
	if hourSum != 0 {
		t.Errorf("hourly sum = %d, want 0 for untimestamped records", hourSum)
	}
	if !s.StartTime.IsZero() {
		t.Errorf("StartTime = %v, want zero", s.StartTime)
	}
}

func TestWalkSession_OutsideRetentionWindowSkipsBuckets(t *testing.T) {
	acc := testAccumulator()
	old := time.Now().AddDate(-1, 0, 0).UTC().Format(time.RFC3339Nano)
	s := acc.WalkSession(df("p", "s"), records(
		fmt.Sprintf(`{"type":"user","timestamp":%q}`, old),
	))

	if s.Messages != 1 {
		t.Errorf("Messages = %d, want 1 (totals ignore the window)", s.Messages)
	}
	if acc.ActiveDays() != 0 {
		t.Errorf("ActiveDays = %d, want 0", acc.ActiveDays())
	}
}

// Hourly and weekday buckets each sum to the number of timestamped records
// within the retention window.
func TestBucketSums(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		acc := testAccumulator()

		n := rapid.IntRange(0, 50).Draw(t, "records")
		inWindow := 0
		var lines []string
		for i := 0; i < n; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "kind") {
			case 0: // recent timestamp
				hours := rapid.IntRange(0, 24*120).Draw(t, "age")
				lines = append(lines, fmt.Sprintf(`{"type":"user","timestamp":%q}`,
					recent(time.Duration(hours)*time.Hour)))
				inWindow++
			case 1: // ancient timestamp
				lines = append(lines, `{"type":"user","timestamp":"2019-01-01T00:00:00Z"}`)
			default: // no timestamp
				lines = append(lines, `{"type":"user"}`)
			}
		}

		acc.WalkSession(df("p", "s"), records(lines...))

		var hourSum, daySum int
		for _, c := range acc.Hourly {
			hourSum += c
		}
		for _, c := range acc.Weekday {
			daySum += c
		}
		if hourSum != inWindow || daySum != inWindow {
			t.Fatalf("bucket sums %d/%d, want %d", hourSum, daySum, inWindow)
		}
	})
}

func TestAggregateProjects_Ordering(t *testing.T) {
	acc := testAccumulator()
	var sessions []model.SessionStats
	for i := 0; i < 3; i++ {
		sessions = append(sessions, acc.WalkSession(df("busy", fmt.Sprintf("s%d", i)), records(
			fmt.Sprintf(`{"type":"user","timestamp":%q}`, recent(time.Hour)),
		)))
	}
	sessions = append(sessions, acc.WalkSession(df("quiet", "q1"), records(
		fmt.Sprintf(`{"type":"user","timestamp":%q}`, recent(time.Hour)),
	)))

	projects := AggregateProjects(sessions)
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].Project != "busy" || projects[0].Sessions != 3 {
		t.Errorf("first project = %+v, want busy with 3 sessions", projects[0])
	}
	if projects[0].LastActivity.IsZero() {
		t.Error("LastActivity not tracked")
	}
}

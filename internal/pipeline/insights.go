package pipeline

import (
	"fmt"
	"time"

	"github.com/theirongolddev/ccdash/internal/cli"
	"github.com/theirongolddev/ccdash/internal/model"
)

// Insights derives a short ordered list of one-line observations from an
// already-shaped dashboard. Pure presentation; sections with no data simply
// produce no line.
func Insights(d model.Dashboard) []string {
	var out []string

	if hour, count := argmax(d.HourlyActivity[:]); count > 0 {
		out = append(out, fmt.Sprintf("Most active hour: %02d:00 (%s events)",
			hour, cli.FormatNumber(int64(count))))
	}

	if day, count := argmax(d.WeekdayActivity[:]); count > 0 {
		out = append(out, fmt.Sprintf("Busiest day: %s", time.Weekday(day)))
	}

	if len(d.Projects) > 0 {
		p := d.Projects[0]
		out = append(out, fmt.Sprintf("Top project: %s (%d sessions)", p.Name, p.Sessions))
	}

	if len(d.ToolUsage) > 0 {
		t := d.ToolUsage[0]
		out = append(out, fmt.Sprintf("Most used tool: %s (%s calls)",
			t.Name, cli.FormatNumber(int64(t.Count))))
	}

	if top, tokens := topOutputModel(d.ModelUsage); top != "" {
		// Rough token-to-word estimate: one token is about three quarters of a word.
		words := tokens * 3 / 4
		out = append(out, fmt.Sprintf("Top model by output: %s (~%s words generated)",
			top, cli.FormatTokens(words)))
	}

	if d.Summary.ActiveDays > 0 {
		out = append(out, fmt.Sprintf("Active on %d days", d.Summary.ActiveDays))
	}

	return out
}

func argmax(buckets []int) (idx, count int) {
	for i, n := range buckets {
		if n > count {
			idx, count = i, n
		}
	}
	return idx, count
}

func topOutputModel(models []model.ModelBreakdown) (string, int64) {
	var name string
	var best int64
	for _, m := range models {
		if m.OutputTokens > best {
			name, best = m.Model, m.OutputTokens
		}
	}
	return name, best
}

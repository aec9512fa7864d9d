package pipeline

import (
	"sort"

	"github.com/theirongolddev/ccdash/internal/model"
)

// Top-N limits for the public artifact.
const (
	TopTools    = 20
	TopBranches = 15
	TopProjects = 10
)

// TopN ranks a frequency map descending by count and truncates to n entries.
// Ties order alphabetically: keys are pre-sorted before the stable sort, so
// the result is deterministic across runs regardless of map iteration order.
func TopN(counts map[string]int, n int) []model.NameCount {
	if len(counts) == 0 {
		return nil
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ranked := make([]model.NameCount, 0, len(keys))
	for _, k := range keys {
		ranked = append(ranked, model.NameCount{Name: k, Count: counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TruncateProjects keeps the first n entries of an already-ranked project list.
func TruncateProjects(projects []model.ProjectStats, n int) []model.ProjectStats {
	if n > 0 && len(projects) > n {
		return projects[:n]
	}
	return projects
}

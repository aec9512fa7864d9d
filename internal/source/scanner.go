package source

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoveredFile is one JSONL session file found under the projects tree.
type DiscoveredFile struct {
	Path        string
	ProjectDir  string // raw encoded directory name, the project's true key
	ProjectName string // decoded display name
	SessionID   string // filename without extension
}

// ScanProjects enumerates <dataDir>/projects/<dir>/*.jsonl. Unreadable entries
// are skipped; a missing projects directory yields an empty result, not an error.
func ScanProjects(dataDir string) ([]DiscoveredFile, error) {
	projectsDir := filepath.Join(dataDir, "projects")

	dirs, err := os.ReadDir(projectsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []DiscoveredFile
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(projectsDir, dir.Name()))
		if err != nil {
			continue
		}
		display := DecodeProjectName(dir.Name())
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || filepath.Ext(name) != ".jsonl" {
				continue
			}
			files = append(files, DiscoveredFile{
				Path:        filepath.Join(projectsDir, dir.Name(), name),
				ProjectDir:  dir.Name(),
				ProjectName: display,
				SessionID:   strings.TrimSuffix(name, ".jsonl"),
			})
		}
	}
	return files, nil
}

// SessionFilePath resolves a session file within a project directory, falling
// back to the agent-prefixed naming variant when the primary name is absent.
// Returns "" when neither exists.
func SessionFilePath(dataDir, projectDir, sessionID string) string {
	base := filepath.Join(dataDir, "projects", projectDir)
	for _, name := range []string{sessionID + ".jsonl", "agent-" + sessionID + ".jsonl"} {
		path := filepath.Join(base, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// CachePath returns the location of the precomputed usage cache file.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, "stats-cache.json")
}

// HistoryPath returns the location of the flat prompt history log.
func HistoryPath(dataDir string) string {
	return filepath.Join(dataDir, "history.jsonl")
}

// Known parent directory names that commonly precede the project name in the
// encoded path.
var knownParents = map[string]bool{
	"projects": true, "repos": true, "src": true,
	"code": true, "workspace": true, "dev": true,
}

// DecodeProjectName extracts a display name from an encoded directory name.
// Claude Code encodes absolute paths by replacing separators with "-", so
// "-Users-alice-projects-gitlore" -> "gitlore" and "C--Users-alice-src-app"
// -> "app". This is a best-effort display transform only; the raw directory
// name remains the project key.
func DecodeProjectName(dirName string) string {
	name := dirName
	// Windows-style drive prefix ("C--...") ends up as a single letter segment.
	if len(name) >= 3 && name[1] == '-' && name[2] == '-' {
		name = name[3:]
	}
	parts := strings.Split(name, "-")

	// Take everything after the last known parent marker.
	for i := len(parts) - 2; i >= 0; i-- {
		if knownParents[strings.ToLower(parts[i])] {
			if joined := strings.Join(parts[i+1:], "-"); joined != "" {
				return joined
			}
		}
	}

	// Fallback: last non-empty segment.
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return dirName
}

// CountProjects returns the number of distinct project directories in a set of
// discovered files.
func CountProjects(files []DiscoveredFile) int {
	seen := make(map[string]struct{})
	for _, f := range files {
		seen[f.ProjectDir] = struct{}{}
	}
	return len(seen)
}

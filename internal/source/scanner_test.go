package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeProjectName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "-Users-alice-projects-gitlore", "gitlore"},
		{"hyphenated project", "-Users-alice-projects-my-cool-app", "my-cool-app"},
		{"src parent", "-home-bob-src-ccdash", "ccdash"},
		{"drive prefix", "C--Users-alice-code-app", "app"},
		{"no known parent", "-opt-things-widget", "widget"},
		{"empty-ish", "---", "---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeProjectName(tt.input); got != tt.want {
				t.Errorf("DecodeProjectName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// makeDataDir builds a minimal ~/.claude-shaped tree.
func makeDataDir(t *testing.T, projects map[string][]string) string {
	t.Helper()
	dataDir := t.TempDir()
	for dir, sessions := range projects {
		full := filepath.Join(dataDir, "projects", dir)
		if err := os.MkdirAll(full, 0o755); err != nil {
			t.Fatal(err)
		}
		for _, name := range sessions {
			if err := os.WriteFile(filepath.Join(full, name), []byte("{}\n"), 0o600); err != nil {
				t.Fatal(err)
			}
		}
	}
	return dataDir
}

func TestScanProjects(t *testing.T) {
	dataDir := makeDataDir(t, map[string][]string{
		"-home-alice-projects-app": {"aaa.jsonl", "bbb.jsonl", "notes.txt"},
		"-home-alice-projects-lib": {"ccc.jsonl"},
	})

	files, err := ScanProjects(dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3 (non-jsonl skipped)", len(files))
	}
	if got := CountProjects(files); got != 2 {
		t.Errorf("CountProjects = %d, want 2", got)
	}

	for _, f := range files {
		if f.SessionID == "" || f.ProjectDir == "" {
			t.Errorf("incomplete discovery: %+v", f)
		}
		if f.ProjectName != "app" && f.ProjectName != "lib" {
			t.Errorf("ProjectName = %q, want decoded name", f.ProjectName)
		}
	}
}

func TestScanProjects_MissingDir(t *testing.T) {
	files, err := ScanProjects(t.TempDir())
	if err != nil {
		t.Fatalf("missing projects dir should not error: %v", err)
	}
	if files != nil {
		t.Errorf("got %d files, want none", len(files))
	}
}

func TestSessionFilePath_Fallback(t *testing.T) {
	dataDir := makeDataDir(t, map[string][]string{
		"-home-alice-projects-app": {"primary.jsonl", "agent-alt.jsonl"},
	})

	if got := SessionFilePath(dataDir, "-home-alice-projects-app", "primary"); filepath.Base(got) != "primary.jsonl" {
		t.Errorf("primary lookup = %q", got)
	}
	if got := SessionFilePath(dataDir, "-home-alice-projects-app", "alt"); filepath.Base(got) != "agent-alt.jsonl" {
		t.Errorf("fallback lookup = %q, want agent-alt.jsonl", got)
	}
	if got := SessionFilePath(dataDir, "-home-alice-projects-app", "nope"); got != "" {
		t.Errorf("absent session = %q, want empty", got)
	}
}

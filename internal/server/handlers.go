package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/theirongolddev/ccdash/internal/model"
	"github.com/theirongolddev/ccdash/internal/pipeline"
	"github.com/theirongolddev/ccdash/internal/source"
)

// scan performs the fresh filesystem pass each handler starts from.
func (s *Server) scan(now time.Time) (*pipeline.ScanResult, error) {
	return pipeline.Scan(s.cfg.DataDir, now, s.cfg.RetentionMonths)
}

// cache reads the usage cache; a missing or malformed cache degrades to nil
// so scan-derived fields still serve.
func (s *Server) cache() *model.UsageCache {
	cache, err := source.ReadUsageCache(s.cfg.DataDir)
	if err != nil {
		return nil
	}
	return cache
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// statsResponse is the summary payload for /api/stats.
type statsResponse struct {
	Summary   model.Summary   `json:"summary"`
	DateRange model.DateRange `json:"dateRange"`
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	now := time.Now()
	scan, err := s.scan(now)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	d := pipeline.BuildDashboard(scan, s.cache(), now)
	writeJSON(w, statsResponse{Summary: d.Summary, DateRange: d.DateRange})
}

func (s *Server) handleProjects(w http.ResponseWriter, _ *http.Request) {
	scan, err := s.scan(time.Now())
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, scan.Projects)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := pipeline.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records := source.ReadHistory(s.cfg.DataDir)
	writeJSON(w, pipeline.GroupHistory(records, limit))
}

// sessionMessage is one display row of a session detail response.
type sessionMessage struct {
	Role      string `json:"role"`
	Timestamp string `json:"timestamp,omitempty"`
	Model     string `json:"model,omitempty"`
	Text      string `json:"text,omitempty"`
}

// sessionDetail is the /api/sessions response.
type sessionDetail struct {
	SessionID   string           `json:"sessionId"`
	Project     string           `json:"project"`
	ProjectName string           `json:"projectName"`
	Messages    int              `json:"messages"`
	ToolCalls   int              `json:"toolCalls"`
	GitBranch   string           `json:"gitBranch,omitempty"`
	StartTime   time.Time        `json:"startTime,omitzero"`
	EndTime     time.Time        `json:"endTime,omitzero"`
	Records     []sessionMessage `json:"records"`
}

const maxMessageText = 500

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	projectDir := r.PathValue("project")
	sessionID := r.PathValue("session")

	path := source.SessionFilePath(s.cfg.DataDir, projectDir, sessionID)
	if path == "" {
		writeError(w, "session file not found")
		return
	}

	records := source.ReadRecords(path)
	if len(records) == 0 {
		writeError(w, "session file is empty or unreadable")
		return
	}

	df := source.DiscoveredFile{
		Path:        path,
		ProjectDir:  projectDir,
		ProjectName: source.DecodeProjectName(projectDir),
		SessionID:   sessionID,
	}
	now := time.Now()
	acc := pipeline.NewAccumulator(now.AddDate(0, -s.cfg.RetentionMonths, 0))
	stats := acc.WalkSession(df, records)

	detail := sessionDetail{
		SessionID:   stats.SessionID,
		Project:     stats.Project,
		ProjectName: stats.ProjectName,
		Messages:    stats.Messages,
		ToolCalls:   stats.ToolCalls,
		GitBranch:   stats.FirstBranch,
		StartTime:   stats.StartTime,
		EndTime:     stats.EndTime,
	}
	for i := range records {
		rec := &records[i]
		if rec.Type != "user" && rec.Type != "assistant" {
			continue
		}
		msg := sessionMessage{Role: rec.Type, Timestamp: rec.Timestamp}
		if rec.Message != nil {
			msg.Model = rec.Message.Model
			if text := rec.Message.Text(); text != "" {
				if len(text) > maxMessageText {
					text = text[:maxMessageText]
				}
				msg.Text = text
			}
		}
		detail.Records = append(detail.Records, msg)
	}

	writeJSON(w, detail)
}

func (s *Server) handleTimeline(w http.ResponseWriter, _ *http.Request) {
	now := time.Now()
	scan, err := s.scan(now)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, pipeline.Timeline(scan, s.cache(), now))
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	now := time.Now()
	scan, err := s.scan(now)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeJSON(w, pipeline.BuildDashboard(scan, s.cache(), now))
}

// Package source discovers and reads Claude Code data files: per-project JSONL
// session transcripts, the precomputed stats cache, and the flat prompt history.
package source

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/theirongolddev/ccdash/internal/model"
)

// ReadRecords reads a session file fully and parses each non-blank line as an
// independent JSON record. Lines that fail to parse are dropped; an unreadable
// file yields nil. Callers never see partial lines or read errors.
func ReadRecords(path string) []model.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return ParseRecords(data)
}

// ParseRecords splits raw transcript bytes on newlines and keeps whatever
// subset of lines decodes cleanly.
func ParseRecords(data []byte) []model.Record {
	var records []model.Record
	for line := range bytes.Lines(data) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var rec model.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// ReadHistory reads the optional history.jsonl prompt log, preserving input
// order. Missing file or malformed lines degrade to whatever parsed.
func ReadHistory(dataDir string) []model.HistoryRecord {
	data, err := os.ReadFile(HistoryPath(dataDir))
	if err != nil {
		return nil
	}

	var records []model.HistoryRecord
	for line := range bytes.Lines(data) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var rec model.HistoryRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

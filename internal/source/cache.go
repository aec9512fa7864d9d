package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theirongolddev/ccdash/internal/model"
)

// ReadUsageCache parses the precomputed stats-cache.json snapshot. Unlike
// session files, a malformed cache is reported: callers decide whether to
// degrade (batch mode warns and continues) or surface the failure.
func ReadUsageCache(dataDir string) (*model.UsageCache, error) {
	data, err := os.ReadFile(CachePath(dataDir))
	if err != nil {
		return nil, fmt.Errorf("reading stats cache: %w", err)
	}

	var cache model.UsageCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing stats cache: %w", err)
	}
	return &cache, nil
}

package config

import "strings"

// ModelPricing holds per-million-token prices for one model class.
type ModelPricing struct {
	InputPerMTok      float64
	OutputPerMTok     float64
	CacheReadPerMTok  float64
	CacheWritePerMTok float64
}

// Pricing is keyed by display name. Anything not in the table bills at the
// default (Sonnet-class) rates.
var (
	pricingTable = map[string]ModelPricing{
		"Opus": {
			InputPerMTok: 15.00, OutputPerMTok: 75.00,
			CacheReadPerMTok: 1.50, CacheWritePerMTok: 18.75,
		},
		"Sonnet": {
			InputPerMTok: 3.00, OutputPerMTok: 15.00,
			CacheReadPerMTok: 0.30, CacheWritePerMTok: 3.75,
		},
	}

	defaultPricing = pricingTable["Sonnet"]
)

// DisplayModelName classifies a raw model identifier into a short display
// name: substring match for the model family, otherwise the identifier passes
// through unchanged.
func DisplayModelName(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "opus"):
		return "Opus"
	case strings.Contains(lower, "sonnet"):
		return "Sonnet"
	default:
		return raw
	}
}

// LookupPricing returns the rate row for a display name, falling back to the
// default row for unknown models.
func LookupPricing(displayName string) ModelPricing {
	if p, ok := pricingTable[displayName]; ok {
		return p
	}
	return defaultPricing
}

// EstimateCost computes the estimated USD cost for the given token counts.
// No rounding happens here; display layers round to two decimals.
func EstimateCost(displayName string, inputTokens, outputTokens, cacheRead, cacheWrite int64) float64 {
	p := LookupPricing(displayName)

	cost := float64(inputTokens) * p.InputPerMTok / 1_000_000
	cost += float64(outputTokens) * p.OutputPerMTok / 1_000_000
	cost += float64(cacheRead) * p.CacheReadPerMTok / 1_000_000
	cost += float64(cacheWrite) * p.CacheWritePerMTok / 1_000_000
	return cost
}

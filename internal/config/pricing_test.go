package config

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDisplayModelName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"claude-opus-4-20250514", "Opus"},
		{"claude-3-opus-latest", "Opus"},
		{"claude-sonnet-4-5-20250929", "Sonnet"},
		{"claude-3-5-sonnet-20241022", "Sonnet"},
		{"claude-haiku-3-5", "claude-haiku-3-5"},
		{"gpt-4o", "gpt-4o"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayModelName(tt.input); got != tt.want {
			t.Errorf("DisplayModelName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEstimateCost_ZeroTokens(t *testing.T) {
	for _, name := range []string{"Opus", "Sonnet", "something-unknown"} {
		if got := EstimateCost(name, 0, 0, 0, 0); got != 0 {
			t.Errorf("EstimateCost(%q, zeros) = %v, want 0", name, got)
		}
	}
}

func TestEstimateCost_OpusAboveDefault(t *testing.T) {
	opus := EstimateCost("Opus", 1_000_000, 1_000_000, 0, 0)
	def := EstimateCost("whatever", 1_000_000, 1_000_000, 0, 0)
	if opus <= def {
		t.Errorf("Opus cost %v should exceed default cost %v", opus, def)
	}

	// 1M input + 1M output at the default (Sonnet) row: $3 + $15.
	if def != 18.00 {
		t.Errorf("default cost = %v, want 18.00", def)
	}
}

func TestEstimateCost_UnknownUsesDefaultRow(t *testing.T) {
	unknown := EstimateCost("mystery-model", 500_000, 0, 100_000, 0)
	sonnet := EstimateCost("Sonnet", 500_000, 0, 100_000, 0)
	if unknown != sonnet {
		t.Errorf("unknown model cost %v != default row cost %v", unknown, sonnet)
	}
}

// Cost must be monotonically non-decreasing in every token category.
func TestEstimateCost_Monotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom([]string{"Opus", "Sonnet", "other"}).Draw(t, "model")
		in := rapid.Int64Range(0, 1e9).Draw(t, "input")
		out := rapid.Int64Range(0, 1e9).Draw(t, "output")
		read := rapid.Int64Range(0, 1e9).Draw(t, "cacheRead")
		write := rapid.Int64Range(0, 1e9).Draw(t, "cacheWrite")
		extra := rapid.Int64Range(0, 1e6).Draw(t, "extra")

		base := EstimateCost(name, in, out, read, write)
		if base < 0 {
			t.Fatalf("negative cost %v", base)
		}
		if got := EstimateCost(name, in+extra, out, read, write); got < base {
			t.Fatalf("cost decreased when input grew: %v -> %v", base, got)
		}
		if got := EstimateCost(name, in, out+extra, read, write); got < base {
			t.Fatalf("cost decreased when output grew: %v -> %v", base, got)
		}
		if got := EstimateCost(name, in, out, read+extra, write); got < base {
			t.Fatalf("cost decreased when cache reads grew: %v -> %v", base, got)
		}
		if got := EstimateCost(name, in, out, read, write+extra); got < base {
			t.Fatalf("cost decreased when cache writes grew: %v -> %v", base, got)
		}
	})
}

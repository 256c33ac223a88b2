package merge

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultThreshold is the minimum token sort ratio for two titles to be
// considered the same work. Strict on purpose: a missed duplicate is cheaper
// than a false merge.
const DefaultThreshold = 92.0

// SourceWeight pairs a source with its precedence weight. Higher weight means
// more authoritative. Weights gate field overrides only, never identity.
type SourceWeight struct {
	Source Source
	Weight int
}

// Config is the configuration surface of the engine.
type Config struct {
	// Priority defines the processing order, most authoritative first, and
	// the per-source precedence weights.
	Priority []SourceWeight
	// Threshold is the minimum fuzzy title similarity (0-100) to reuse an
	// existing fuzzy key.
	Threshold float64
	// MinOverrideWeight is the minimum weight a source needs to replace an
	// existing non-empty free-text value with a longer one. Zero means use
	// the median of the configured weights.
	MinOverrideWeight int
}

// DefaultConfig mirrors the harvest order of the collectors. Every source
// the fetchers can produce is listed, so no snapshot is silently dropped.
func DefaultConfig() *Config {
	return &Config{
		Priority: []SourceWeight{
			{SourcePubmed, 5},
			{SourceOpenAlex, 4},
			{SourceSemanticScholar, 3},
			{SourceCrossref, 2},
			{SourceORCID, 1},
			{SourceWordPress, 1},
		},
		Threshold: DefaultThreshold,
	}
}

// Weights returns the configured weight per source. Unlisted sources weigh
// zero.
func (c *Config) Weights() map[Source]int {
	m := make(map[Source]int)
	for _, sw := range c.Priority {
		m[sw.Source] = sw.Weight
	}
	return m
}

// OverrideWeight resolves the effective minimum override weight, defaulting
// to the median of all configured weights.
func (c *Config) OverrideWeight() int {
	if c.MinOverrideWeight != 0 {
		return c.MinOverrideWeight
	}
	if len(c.Priority) == 0 {
		return 0
	}
	weights := make([]int, len(c.Priority))
	for i, sw := range c.Priority {
		weights[i] = sw.Weight
	}
	sort.Ints(weights)
	return weights[len(weights)/2]
}

// ParsePriority parses a "source:weight,source:weight,..." flag value into an
// ordered priority list.
func ParsePriority(s string) ([]SourceWeight, error) {
	var result []SourceWeight
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, w, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid source weight: %s", part)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil {
			return nil, fmt.Errorf("invalid weight in %s: %w", part, err)
		}
		result = append(result, SourceWeight{Source(strings.TrimSpace(name)), weight})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("empty priority list")
	}
	return result, nil
}

package search

import (
	"fmt"
	"strings"

	"github.com/harrison/tailseek/internal/pattern"
)

// BucketMode controls how a directory matching several priority patterns is bucketed.
type BucketMode int

const (
	// BucketEveryRank inserts the directory into every matching rank's bucket, so it can
	// be descended into once per matching rank.
	BucketEveryRank BucketMode = iota
	// BucketBestRank inserts the directory only into its lowest matching rank.
	BucketBestRank
)

// String returns the config spelling of the mode.
func (m BucketMode) String() string {
	switch m {
	case BucketEveryRank:
		return "every"
	case BucketBestRank:
		return "best"
	default:
		return "unknown"
	}
}

// ParseBucketMode parses "every" or "best". The empty string means every.
func ParseBucketMode(s string) (BucketMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "every":
		return BucketEveryRank, nil
	case "best":
		return BucketBestRank, nil
	default:
		return BucketEveryRank, fmt.Errorf("invalid bucket mode %q, must be one of: every, best", s)
	}
}

// Properties describes one search: the goal filename, the priority patterns (index 0
// ranks highest) and the exclusion patterns. It is never mutated after NewProperties
// and is shared by every Node of a search.
type Properties struct {
	goal       string
	priorities pattern.List
	exclusions pattern.List
	bucketMode BucketMode
}

// Option customizes Properties.
type Option func(*Properties)

// WithBucketMode selects how multi-rank directories are bucketed.
func WithBucketMode(mode BucketMode) Option {
	return func(p *Properties) {
		p.bucketMode = mode
	}
}

// NewProperties validates and compiles a search description.
func NewProperties(goal string, priorities, exclusions []string, opts ...Option) (*Properties, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, ErrEmptyGoal
	}
	if strings.ContainsAny(goal, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGoal, goal)
	}
	for i, p := range priorities {
		if p == "" {
			return nil, fmt.Errorf("priority %d: %w", i, ErrEmptyPattern)
		}
	}
	for i, e := range exclusions {
		if e == "" {
			return nil, fmt.Errorf("exclusion %d: %w", i, ErrEmptyPattern)
		}
	}

	props := &Properties{
		goal:       goal,
		priorities: pattern.CompileList(priorities),
		exclusions: pattern.CompileList(exclusions),
	}
	for _, opt := range opts {
		opt(props)
	}
	return props, nil
}

// Goal returns the filename being searched for.
func (p *Properties) Goal() string {
	return p.goal
}

// Priorities returns the priority patterns as written, highest rank first.
func (p *Properties) Priorities() []string {
	return p.priorities.Strings()
}

// Exclusions returns the exclusion patterns as written.
func (p *Properties) Exclusions() []string {
	return p.exclusions.Strings()
}

// BucketMode returns the configured bucketing mode.
func (p *Properties) BucketMode() BucketMode {
	return p.bucketMode
}

// isGoal reports whether a file name is the goal. The comparison is case-sensitive.
func (p *Properties) isGoal(name string) bool {
	return name == p.goal
}

// ranks returns the priority buckets a directory name belongs to.
func (p *Properties) ranks(name string) []int {
	if p.bucketMode == BucketBestRank {
		if best := p.priorities.Best(name); best >= 0 {
			return []int{best}
		}
		return nil
	}
	return p.priorities.Ranks(name)
}

func (p *Properties) excluded(name string) bool {
	return p.exclusions.Any(name)
}

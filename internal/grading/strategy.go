package grading

import "sort"

// Strategy decides whether a submitted answer matches a question's key.
// Implementations must be pure: no side effects, defined for every input.
type Strategy interface {
	Grade(answer, key string) bool
}

// ExactMatch accepts only a case-sensitive, byte-for-byte equal answer.
type ExactMatch struct{}

func (ExactMatch) Grade(answer, key string) bool { return answer == key }

// Option tunes the built-in strategies installed by NewRegistry.
type Option func(*config)

type config struct {
	MaxEditDistance  int     // for "fuzzy"
	NumericTolerance float64 // for "numeric"
}

func WithMaxEditDistance(n int) Option      { return func(c *config) { c.MaxEditDistance = n } }
func WithNumericTolerance(t float64) Option { return func(c *config) { c.NumericTolerance = t } }

// Registry maps strategy names to strategies.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry installs the built-in strategies.
func NewRegistry(opts ...Option) *Registry {
	cfg := &config{
		MaxEditDistance:  1,
		NumericTolerance: 0,
	}
	for _, o := range opts {
		o(cfg)
	}
	return &Registry{
		strategies: map[string]Strategy{
			"exact":      ExactMatch{},
			"normalized": Normalized{},
			"fuzzy":      Fuzzy{MaxEdit: cfg.MaxEditDistance},
			"numeric":    Numeric{Tolerance: cfg.NumericTolerance},
		},
	}
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (Strategy, bool) {
	s, ok := r.strategies[name]
	return s, ok
}

// Names lists registered strategy names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.strategies))
	for k := range r.strategies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var defaultRegistry = NewRegistry()

// Lookup fetches a built-in strategy by name.
func Lookup(name string) (Strategy, bool) { return defaultRegistry.Lookup(name) }

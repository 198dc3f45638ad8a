package mongy

import "sort"

// Default serialization settings.
const (
	DefaultDateFormat     = "%Y-%m-%d"
	DefaultDateTimeFormat = "%Y-%m-%d"
	DefaultMaxDepth       = 1
)

// Config is the serialization configuration a strategy is bound to.
// A Config is never mutated after construction; descending into a child
// produces a new snapshot.
type Config struct {
	dateFormat     string
	dateTimeFormat string
	depth          int
	maxDepth       int
	exclude        map[string]struct{}
}

// Option configures a strategy at construction time.
type Option func(*Config)

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) Config {
	c := Config{
		dateFormat:     DefaultDateFormat,
		dateTimeFormat: DefaultDateTimeFormat,
		maxDepth:       DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithDateFormat sets the strftime pattern used for date values.
func WithDateFormat(pattern string) Option {
	return func(c *Config) { c.dateFormat = pattern }
}

// WithDateTimeFormat sets the strftime pattern used for datetime values.
func WithDateTimeFormat(pattern string) Option {
	return func(c *Config) { c.dateTimeFormat = pattern }
}

// WithDepth sets the starting recursion depth. Negative values are clamped to 0.
func WithDepth(depth int) Option {
	return func(c *Config) { c.depth = max(depth, 0) }
}

// WithMaxDepth sets the depth budget. Negative values are clamped to 0.
func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.maxDepth = max(depth, 0) }
}

// WithExclude drops the named keys from a mapping's direct output.
// Keys with the same name in nested mappings are not excluded.
func WithExclude(names ...string) Option {
	return func(c *Config) {
		set := make(map[string]struct{}, len(c.exclude)+len(names))
		for name := range c.exclude {
			set[name] = struct{}{}
		}
		for _, name := range names {
			set[name] = struct{}{}
		}
		c.exclude = set
	}
}

// DateFormat returns the date pattern.
func (c Config) DateFormat() string { return c.dateFormat }

// DateTimeFormat returns the datetime pattern.
func (c Config) DateTimeFormat() string { return c.dateTimeFormat }

// Depth returns the current recursion depth.
func (c Config) Depth() int { return c.depth }

// MaxDepth returns the depth budget.
func (c Config) MaxDepth() int { return c.maxDepth }

// Excluded reports whether name is in the exclusion set.
func (c Config) Excluded(name string) bool {
	_, ok := c.exclude[name]
	return ok
}

// ExcludedFields returns the exclusion set, sorted.
func (c Config) ExcludedFields() []string {
	names := make([]string, 0, len(c.exclude))
	for name := range c.exclude {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Config) exceeded() bool { return c.depth > c.maxDepth }

// descend returns the configuration for the children of a composite value.
// Exclusions apply only at the level where they were declared.
func (c Config) descend() Config {
	child := c
	child.depth++
	child.exclude = nil
	return child
}

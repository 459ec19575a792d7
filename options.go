package cloom

// DefaultCounterBits is the counter width of a CountingFilter unless
// overridden with WithCounterBits. Four bits give counters in [0, 15].
const DefaultCounterBits = 4

type config struct {
	digester    Digester
	counterBits uint
}

func newConfig(opts []Option) config {
	c := config{
		digester:    Murmur3{},
		counterBits: DefaultCounterBits,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option configures a Filter or CountingFilter.
type Option func(*config)

// WithDigester selects the 128-bit digest keys are hashed with.
// The default is Murmur3. Filters only agree on membership when they use
// the same digester.
func WithDigester(d Digester) Option {
	return func(c *config) {
		if d != nil {
			c.digester = d
		}
	}
}

// WithCounterBits sets the width of each counter in a CountingFilter.
// It has no effect on a Filter.
func WithCounterBits(width uint) Option {
	return func(c *config) {
		c.counterBits = width
	}
}

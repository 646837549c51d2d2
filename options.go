package json5

// DefaultMaxDepth is the nesting limit used when [WithMaxDepth] is not given.
const DefaultMaxDepth = 1000

// Quotes selects which characters may delimit strings.
type Quotes int8

const (
	// QuoteBoth accepts "double" and 'single' quoted strings. This is the default.
	QuoteBoth = Quotes(iota)
	// QuoteDouble accepts only "double" quoted strings.
	QuoteDouble
)

type options struct {
	maxDepth int
	quotes   Quotes
}

// Option configures [Parse], [ParseBytes] and [Unmarshal].
type Option func(*options)

// WithMaxDepth limits how deeply arrays and objects may nest. Input nested
// deeper fails with [ErrTooDeep]. A limit of zero or less disables the check.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithQuotes restricts the accepted string delimiters.
func WithQuotes(q Quotes) Option {
	return func(o *options) {
		o.quotes = q
	}
}

func buildOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth, quotes: QuoteBoth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package docx2md

import "golang.org/x/text/encoding"

// Option configures a Converter.
type Option func(*Converter)

// WithStrategy selects the document reader (default: StrategyAuto).
func WithStrategy(s Strategy) Option {
	return func(c *Converter) {
		c.strategy = s
	}
}

// WithReader sets the document reader directly, overriding WithStrategy.
func WithReader(r DocumentReader) Option {
	return func(c *Converter) {
		c.reader = r
	}
}

// WithEncoding sets the output text encoding (default: UTF-8).
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *Converter) {
		c.encoding = enc
	}
}

// WithTablesLast emits all tables after the paragraphs instead of in
// document order.
func WithTablesLast(last bool) Option {
	return func(c *Converter) {
		c.emitter.TablesLast = last
	}
}

// WithLogger sets the logger used for progress and failure reports.
func WithLogger(l Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

package markin

// Option configures Compile.
type Option func(*compileConfig)

type compileConfig struct {
	grammar *Grammar
	tracer  Tracer
}

// WithTracer reports intermediate pipeline results to t.
func WithTracer(t Tracer) Option {
	return func(cfg *compileConfig) {
		cfg.tracer = t
	}
}

// WithGrammar replaces the default block grammar. Block names without a
// converter render nothing.
func WithGrammar(g *Grammar) Option {
	return func(cfg *compileConfig) {
		cfg.grammar = g
	}
}

package markin

// Compile converts markup source to HTML. It never fails: malformed constructs
// degrade to literal text.
func Compile(src string, opts ...Option) string {
	return RenderHTML(compileDocument(src, opts...))
}

func compileDocument(src string, opts ...Option) Document {
	cfg := compileConfig{grammar: DefaultGrammar}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.grammar == nil {
		cfg.grammar = DefaultGrammar
	}
	tokens := Scan(src)
	if cfg.tracer != nil {
		cfg.tracer.Lines(tokens)
	}
	tokens = RetagFences(tokens)
	if cfg.tracer != nil {
		cfg.tracer.Retagged(tokens)
	}
	doc := cfg.grammar.Parse(tokens)
	if cfg.tracer != nil {
		cfg.tracer.Blocks(doc)
	}
	return doc
}

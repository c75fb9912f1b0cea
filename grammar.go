package markin

import "fmt"

type ruleOp uint8

const (
	opIs ruleOp = iota
	opNot
	opAny
	opOptional
	opSequence
	opChoice
	opRepeat
	opRef
)

// Rule is a grammar expression over line tokens. Rules are immutable values
// built with the combinator constructors below and evaluated by a Grammar.
type Rule struct {
	op       ruleOp
	kind     LineKind
	children []Rule
	min      int
	max      int
	name     string
}

// Is matches one token of the given kind.
func Is(kind LineKind) Rule { return Rule{op: opIs, kind: kind} }

// Not matches one token of any kind other than kind.
func Not(kind LineKind) Rule { return Rule{op: opNot, kind: kind} }

// Any matches one token of any kind.
func Any() Rule { return Rule{op: opAny} }

// Optional matches zero or one token of the given kind and never fails.
func Optional(kind LineKind) Rule { return Rule{op: opOptional, kind: kind} }

// Sequence matches all rules consecutively or nothing at all.
func Sequence(rules ...Rule) Rule { return Rule{op: opSequence, children: rules} }

// OrderedChoice returns the first alternative that matches.
func OrderedChoice(rules ...Rule) Rule { return Rule{op: opChoice, children: rules} }

// Repeat matches rule greedily at least min and at most max times. A max of
// zero or less means unbounded.
func Repeat(rule Rule, min, max int) Rule {
	return Rule{op: opRepeat, children: []Rule{rule}, min: min, max: max}
}

// Ref matches the named production of the evaluating grammar and records the
// span it consumed as a child block.
func Ref(name string) Rule { return Rule{op: opRef, name: name} }

// Production binds a rule to the block name it emits.
type Production struct {
	Name string
	Rule Rule
}

// Grammar is an ordered table of named productions. Parse tries them in table
// order at every position and keeps the first one that matches.
type Grammar struct {
	productions []Production
	index       map[string]int
	fallback    string
}

// NewGrammar builds a grammar from productions in precedence order. Tokens no
// production accepts are emitted one at a time as blocks named fallback.
func NewGrammar(fallback string, productions ...Production) (*Grammar, error) {
	g := &Grammar{
		productions: productions,
		index:       make(map[string]int, len(productions)),
		fallback:    fallback,
	}
	for i, p := range productions {
		if p.Name == "" {
			return nil, fmt.Errorf("grammar: production %d has no name", i)
		}
		if _, dup := g.index[p.Name]; dup {
			return nil, fmt.Errorf("grammar: duplicate production %q", p.Name)
		}
		g.index[p.Name] = i
	}
	for _, p := range productions {
		if err := g.checkRefs(p.Rule); err != nil {
			return nil, fmt.Errorf("grammar: production %q: %w", p.Name, err)
		}
	}
	return g, nil
}

// MustGrammar is like NewGrammar but panics on an invalid table.
func MustGrammar(fallback string, productions ...Production) *Grammar {
	g, err := NewGrammar(fallback, productions...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grammar) checkRefs(r Rule) error {
	if r.op == opRef {
		if _, ok := g.index[r.name]; !ok {
			return fmt.Errorf("unknown production %q", r.name)
		}
	}
	for _, c := range r.children {
		if err := g.checkRefs(c); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the production names in precedence order.
func (g *Grammar) Names() []string {
	names := make([]string, len(g.productions))
	for i, p := range g.productions {
		names[i] = p.Name
	}
	return names
}

// Parse consumes the whole token sequence. Every iteration consumes at least
// one token, so parsing always terminates and the emitted blocks partition
// the input.
func (g *Grammar) Parse(tokens []Token) Document {
	var doc Document
	for pos := 0; pos < len(tokens); {
		block, n := g.parseAt(tokens, pos)
		if n == 0 {
			tok := tokens[pos]
			tok.Kind = LineText
			block = Block{Rule: g.fallback, Tokens: []Token{tok}}
			n = 1
		}
		doc = append(doc, block)
		pos += n
	}
	return doc
}

func (g *Grammar) parseAt(tokens []Token, pos int) (Block, int) {
	for _, p := range g.productions {
		if n, children, ok := g.Match(p.Rule, tokens, pos); ok && n > 0 {
			return Block{Rule: p.Name, Tokens: tokens[pos : pos+n : pos+n], Children: children}, n
		}
	}
	return Block{}, 0
}

// Match evaluates r at pos and reports how many tokens it consumed together
// with the child blocks recorded by Ref.
func (g *Grammar) Match(r Rule, tokens []Token, pos int) (int, []Block, bool) {
	switch r.op {
	case opIs:
		if pos < len(tokens) && tokens[pos].Kind == r.kind {
			return 1, nil, true
		}
		return 0, nil, false
	case opNot:
		if pos < len(tokens) && tokens[pos].Kind != r.kind {
			return 1, nil, true
		}
		return 0, nil, false
	case opAny:
		if pos < len(tokens) {
			return 1, nil, true
		}
		return 0, nil, false
	case opOptional:
		if pos < len(tokens) && tokens[pos].Kind == r.kind {
			return 1, nil, true
		}
		return 0, nil, true
	case opSequence:
		var children []Block
		at := pos
		for _, c := range r.children {
			n, kids, ok := g.Match(c, tokens, at)
			if !ok {
				return 0, nil, false
			}
			children = append(children, kids...)
			at += n
		}
		return at - pos, children, true
	case opChoice:
		for _, c := range r.children {
			if n, kids, ok := g.Match(c, tokens, pos); ok {
				return n, kids, true
			}
		}
		return 0, nil, false
	case opRepeat:
		var children []Block
		at, count := pos, 0
		for at < len(tokens) && (r.max <= 0 || count < r.max) {
			n, kids, ok := g.Match(r.children[0], tokens, at)
			if !ok {
				break
			}
			children = append(children, kids...)
			at += n
			count++
			if n == 0 {
				break
			}
		}
		if count < r.min {
			return 0, nil, false
		}
		return at - pos, children, true
	case opRef:
		i, ok := g.index[r.name]
		if !ok {
			return 0, nil, false
		}
		n, kids, ok := g.Match(g.productions[i].Rule, tokens, pos)
		if !ok {
			return 0, nil, false
		}
		child := Block{Rule: r.name, Tokens: tokens[pos : pos+n : pos+n], Children: kids}
		return n, []Block{child}, true
	}
	return 0, nil, false
}

package markin

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Tracer observes the intermediate results of a Compile call.
type Tracer interface {
	// Lines receives the classifier output.
	Lines(tokens []Token)
	// Retagged receives the tokens after fence pairing.
	Retagged(tokens []Token)
	// Blocks receives the parsed document.
	Blocks(doc Document)
}

const (
	traceNumberWidth = 4
	traceKindWidth   = 18
	traceBlockIndent = 4
)

// TextTracer writes a human readable dump of every pipeline stage. Token
// text is cut and block text wrapped at width; zero disables layout. Child
// blocks have no line range of their own and print their length instead.
type TextTracer struct {
	w     io.Writer
	width int
	err   error
}

// NewTextTracer returns a tracer writing to w.
func NewTextTracer(w io.Writer, width int) *TextTracer {
	return &TextTracer{w: w, width: width}
}

// Err returns the first write error.
func (t *TextTracer) Err() error { return t.err }

func (t *TextTracer) Lines(tokens []Token)    { t.tokens("lines", tokens) }
func (t *TextTracer) Retagged(tokens []Token) { t.tokens("retagged", tokens) }

func (t *TextTracer) Blocks(doc Document) {
	t.printf("== blocks (%d)\n", len(doc))
	line := 1
	for _, b := range doc {
		t.block(b, line, 0)
		line += len(b.Tokens)
	}
}

func (t *TextTracer) tokens(stage string, tokens []Token) {
	t.printf("== %s (%d)\n", stage, len(tokens))
	prefixWidth := traceNumberWidth + traceKindWidth + 2
	for i, tok := range tokens {
		text := tok.Text
		if t.width > prefixWidth {
			text = truncate.StringWithTail(text, uint(t.width-prefixWidth), "…")
		}
		kind := padding.String(tok.Kind.String(), traceKindWidth)
		t.printf("%*d %s %s\n", traceNumberWidth, i+1, kind, text)
	}
}

func (t *TextTracer) block(b Block, first, depth int) {
	head := fmt.Sprintf("%s (%d lines)", b.Rule, len(b.Tokens))
	if first > 0 {
		head = fmt.Sprintf("%s [%d-%d]", b.Rule, first, first+len(b.Tokens)-1)
	}
	t.printf("%s\n", indent.String(head, uint(depth*traceBlockIndent)))
	body := strings.Join(b.Lines(), "\n")
	if body != "" {
		margin := (depth + 1) * traceBlockIndent
		if t.width > margin {
			body = wordwrap.String(body, t.width-margin)
		}
		t.printf("%s\n", indent.String(body, uint(margin)))
	}
	for _, c := range b.Children {
		t.block(c, 0, depth+1)
	}
}

func (t *TextTracer) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

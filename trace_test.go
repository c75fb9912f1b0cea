package markin

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTextTracerDumpsStages(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tracer := NewTextTracer(&buf, 0)
	Compile("# T\n```\nx\n```", WithTracer(tracer))
	if err := tracer.Err(); err != nil {
		t.Fatalf("unexpected trace error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"== lines (4)",
		"== retagged (4)",
		"== blocks (2)",
		"code_fence ",
		"code_fence_begin",
		"heading [1-1]",
		"code [2-4]",
		"    x",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in trace:\n%s", want, out)
		}
	}
}

func TestTextTracerTruncatesTokens(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tracer := NewTextTracer(&buf, 30)
	tracer.Lines([]Token{{Kind: LineText, Text: "abcdefghijklmnopqrstuvwxyz"}})
	out := buf.String()
	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncated token text, got %q", out)
	}
	if strings.Contains(out, "abcdefghijklmnopqrstuvwxyz") {
		t.Fatalf("token text not truncated: %q", out)
	}
}

func TestTextTracerPrintsChildren(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tracer := NewTextTracer(&buf, 0)
	tracer.Blocks(Document{{
		Rule:     "outer",
		Tokens:   []Token{{Text: "a"}, {Text: "b"}},
		Children: []Block{{Rule: "inner", Tokens: []Token{{Text: "a"}, {Text: "b"}}}},
	}})
	out := buf.String()
	if !strings.Contains(out, "outer [1-2]") || !strings.Contains(out, "    inner (2 lines)") {
		t.Fatalf("unexpected child trace:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestTextTracerKeepsFirstError(t *testing.T) {
	t.Parallel()
	tracer := NewTextTracer(failingWriter{}, 0)
	Compile("a", WithTracer(tracer))
	if err := tracer.Err(); err == nil || err.Error() != "boom" {
		t.Fatalf("expected write error, got %v", err)
	}
}

package markin

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestCheckMarkupAcceptsCompilerOutput(t *testing.T) {
	t.Parallel()
	src := "Title\n===\n# h\n\n> **q**\n\n>>>\n<raw>\n>>>\n\n* ![i](x.png)\n\n-- c --\n\n```\n<tag>\n```\n[\n*[<a>]*\n[<b>, </i>]\n]\n\n[x](http://h/__init__.py)\n```\nopen"
	if err := CheckMarkup(strings.NewReader(Compile(src))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckMarkupRejectsUnbalanced(t *testing.T) {
	t.Parallel()
	for _, frag := range []string{"<p><b></p>", "<p>", "</p>", "<ul><li></ul>"} {
		err := CheckMarkup(strings.NewReader(frag))
		if !errors.Is(err, ErrUnbalancedMarkup) {
			t.Fatalf("expected ErrUnbalancedMarkup for %q, got %v", frag, err)
		}
	}
}

func countElements(n *html.Node, name string) int {
	count := 0
	if n.Type == html.ElementNode && n.Data == name {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countElements(c, name)
	}
	return count
}

func TestTableMarkupStructure(t *testing.T) {
	t.Parallel()
	out := Compile("[\n*[A, B]*\n[1, 2]\n[3, 4]\n]\n")
	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for name, want := range map[string]int{"table": 1, "tr": 3, "th": 2, "td": 4} {
		if got := countElements(doc, name); got != want {
			t.Fatalf("expected %d <%s>, got %d in %q", want, name, got, out)
		}
	}
}

package markin

import (
	"regexp"
	"strings"
)

var htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// EscapeHTML replaces '<' and '>' with entities. Nothing else is escaped, so
// escaping is idempotent.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

type inlineSpan struct {
	pattern *regexp.Regexp
	repl    string
}

// Multi-part spans go first; images before links since an image contains a
// link-shaped suffix.
var inlineSpans = [...]inlineSpan{
	{regexp.MustCompile(`!\[([^\]]*?)\]\(([^)]+?)\)`), `<img src="$2" alt="$1"/>`},
	{regexp.MustCompile(`\[([^\]]+?)\]\(([^)]+?)\)`), `<a href="$2">$1</a>`},
	{regexp.MustCompile(`\[([^\]]+?)\]\{([^}]+?)\}`), `<a href="$2">$1</a>`},
}

type delimiter struct {
	symbol string
	tag    string
}

var delimiters = [...]delimiter{
	{"**", "strong"},
	{"!!", "mark"},
	{"~~", "i"},
	{"__", "u"},
	{"``", "code"},
}

// ConvertInline escapes text and turns inline markup into HTML tags.
func ConvertInline(text string) string {
	line := EscapeHTML(text)
	for _, span := range inlineSpans {
		line = span.pattern.ReplaceAllString(line, span.repl)
	}
	for _, d := range delimiters {
		line = convertPairs(line, d.symbol, d.tag)
	}
	return line
}

// convertPairs replaces delimiter pairs left to right. An unpaired trailing
// delimiter stays literal. Delimiters inside tags written by the span pass,
// such as an href, are not pairs.
func convertPairs(line, symbol, tag string) string {
	open, close := "<"+tag+">", "</"+tag+">"
	var b strings.Builder
	rest := line
	for {
		start := indexOutsideTags(rest, symbol)
		if start < 0 {
			break
		}
		end := indexOutsideTags(rest[start+len(symbol):], symbol)
		if end < 0 {
			break
		}
		end += start + len(symbol)
		b.WriteString(rest[:start])
		b.WriteString(open)
		b.WriteString(rest[start+len(symbol) : end])
		b.WriteString(close)
		rest = rest[end+len(symbol):]
	}
	if b.Len() == 0 {
		return line
	}
	b.WriteString(rest)
	return b.String()
}

// indexOutsideTags is strings.Index skipping over "<...>". Source text is
// escaped before any tag is written, so every '<' opens a generated tag.
func indexOutsideTags(s, symbol string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '<' {
			if j := strings.IndexByte(s[i:], '>'); j > 0 {
				i += j
				continue
			}
		}
		if strings.HasPrefix(s[i:], symbol) {
			return i
		}
	}
	return -1
}

package markin

import (
	"regexp"
	"strconv"
	"strings"
)

const lineBreak = "<br>"

type converter func(b Block) string

var converters = map[string]converter{
	RuleText:               convertText,
	RuleCode:               convertCode,
	RuleFencedQuote:        convertFencedQuote,
	RulePrefixedQuote:      convertPrefixedQuote,
	RuleList:               convertList,
	RuleTable:              convertTable,
	RuleCenter:             convertCenter,
	RuleHeading:            convertHeading,
	RuleHeading1Underlined: underlinedHeading(1),
	RuleHeading2Underlined: underlinedHeading(2),
	RuleHeading3Underlined: underlinedHeading(3),
}

// RenderHTML converts a document to HTML. Fragments are joined by a newline
// and blocks without a converter, such as blank-line runs, emit nothing.
func RenderHTML(doc Document) string {
	parts := make([]string, 0, len(doc))
	for _, b := range doc {
		if html := renderBlock(b); html != "" {
			parts = append(parts, html)
		}
	}
	return strings.Join(parts, "\n")
}

func renderBlock(b Block) string {
	if conv, ok := converters[b.Rule]; ok {
		return conv(b)
	}
	if len(b.Children) == 0 {
		return ""
	}
	return RenderHTML(Document(b.Children))
}

func joinLines(lines []string, open, close, sep string, fn func(string) string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, line := range lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(fn(line))
	}
	sb.WriteString(close)
	return sb.String()
}

func convertText(b Block) string {
	return joinLines(b.Lines(), "<p>", "</p>", lineBreak, ConvertInline)
}

// interior drops the first and last line of a fenced block.
func interior(lines []string) []string {
	if len(lines) < 2 {
		return nil
	}
	return lines[1 : len(lines)-1]
}

func convertCode(b Block) string {
	lines := b.Lines()
	var sb strings.Builder
	sb.WriteString("<pre><code")
	if len(lines) > 0 {
		if lang := strings.TrimSpace(strings.TrimPrefix(lines[0], codeFenceMarker)); lang != "" {
			sb.WriteString(` class="language-`)
			sb.WriteString(EscapeHTML(strings.Fields(lang)[0]))
			sb.WriteString(`"`)
		}
	}
	sb.WriteString(">")
	for _, line := range interior(lines) {
		sb.WriteString(EscapeHTML(line))
		sb.WriteString("\n")
	}
	sb.WriteString("</code></pre>")
	return sb.String()
}

func convertFencedQuote(b Block) string {
	return joinLines(interior(b.Lines()), "<blockquote>", "</blockquote>", lineBreak, ConvertInline)
}

func convertPrefixedQuote(b Block) string {
	return joinLines(b.Lines(), "<blockquote>", "</blockquote>", lineBreak, func(line string) string {
		return ConvertInline(strings.TrimPrefix(line, quotePrefix))
	})
}

func convertList(b Block) string {
	var sb strings.Builder
	sb.WriteString("<ul>\n")
	for _, line := range b.Lines() {
		sb.WriteString("<li>")
		sb.WriteString(ConvertInline(listItemPattern.ReplaceAllString(line, "")))
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

func convertCenter(b Block) string {
	return joinLines(b.Lines(), `<p style="text-align:center">`, "</p>", "", func(line string) string {
		if m := centerPattern.FindStringSubmatch(line); m != nil {
			line = m[1]
		}
		return ConvertInline(line)
	})
}

var (
	headingLead  = regexp.MustCompile(`^\s*#+\s*`)
	headingTrail = regexp.MustCompile(`\s*#+\s*$`)
)

const maxHeadingLevel = 6

// HeadingLevel returns the length of the leading '#' run, clamped to 1..6.
func HeadingLevel(line string) int {
	_, hashes := titleRun(line)
	switch {
	case hashes < 1:
		return 1
	case hashes > maxHeadingLevel:
		return maxHeadingLevel
	}
	return hashes
}

func convertHeading(b Block) string {
	if len(b.Tokens) == 0 {
		return ""
	}
	line := b.Tokens[0].Text
	return heading(HeadingLevel(line), headingText(line))
}

// headingText strips the leading and trailing '#' runs.
func headingText(line string) string {
	return headingTrail.ReplaceAllString(headingLead.ReplaceAllString(line, ""), "")
}

func underlinedHeading(level int) converter {
	return func(b Block) string {
		if len(b.Tokens) == 0 {
			return ""
		}
		return heading(level, b.Tokens[0].Text)
	}
}

func heading(level int, text string) string {
	n := strconv.Itoa(level)
	return "<h" + n + ">" + text + "</h" + n + ">"
}

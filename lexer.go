package markin

import (
	"regexp"
	"strings"
)

type linePattern struct {
	kind  LineKind
	match func(line string) bool
}

var (
	tableHeadPattern = regexp.MustCompile(`^\s*\*\[(.*)\]\*\s*$`)
	tableRowPattern  = regexp.MustCompile(`^\s*\[(.*)\]\s*$`)
	listItemPattern  = regexp.MustCompile(`^\*\s+`)
	centerPattern    = regexp.MustCompile(`^\s*-- (.*) --$`)
)

// lineTable is evaluated top to bottom; the first match wins. Table heads
// must be tested before table rows and list items.
var lineTable = [...]linePattern{
	{LineEmpty, func(line string) bool { return strings.TrimSpace(line) == "" }},
	{LineTitle, isTitleLine},
	{LineRuleEquals, func(line string) bool { return isRuleLine(line, '=') }},
	{LineRuleMinus, func(line string) bool { return isRuleLine(line, '-') }},
	{LineRuleDots, func(line string) bool { return isRuleLine(line, '.') }},
	{LineCodeFence, func(line string) bool { return strings.HasPrefix(line, codeFenceMarker) }},
	{LineQuoteFence, func(line string) bool { return strings.HasPrefix(line, quoteFenceMarker) }},
	{LineQuotePrefixed, func(line string) bool { return strings.HasPrefix(line, quotePrefix) }},
	{LineTableHead, tableHeadPattern.MatchString},
	{LineListItem, listItemPattern.MatchString},
	{LineCenter, centerPattern.MatchString},
	{LineTableBegin, func(line string) bool { return strings.TrimSpace(line) == "[" }},
	{LineTableEnd, func(line string) bool { return strings.TrimSpace(line) == "]" }},
	{LineTableRow, tableRowPattern.MatchString},
}

const (
	codeFenceMarker  = "```"
	quoteFenceMarker = ">>>"
	quotePrefix      = "> "
	minRuleLen       = 3
)

// Classify returns the kind of a single source line.
func Classify(line string) LineKind {
	for _, p := range lineTable {
		if p.match(line) {
			return p.kind
		}
	}
	return LineText
}

// Scan splits src on '\n' and classifies every line. Carriage returns are not
// stripped; callers normalize line endings first.
func Scan(src string) []Token {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	tokens := make([]Token, len(lines))
	for i, line := range lines {
		tokens[i] = Token{Kind: Classify(line), Text: line}
	}
	return tokens
}

// titleRun returns the number of leading spaces and the length of the '#'
// run that follows them.
func titleRun(line string) (indent, hashes int) {
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	for indent+hashes < len(line) && line[indent+hashes] == '#' {
		hashes++
	}
	return indent, hashes
}

// A line of only '#' is not a title.
func isTitleLine(line string) bool {
	indent, hashes := titleRun(line)
	return hashes > 0 && indent+hashes < len(line)
}

func isRuleLine(line string, sym byte) bool {
	if len(line) < minRuleLen {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != sym {
			return false
		}
	}
	return true
}

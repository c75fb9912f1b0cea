package markin

// Token is one classified source line.
type Token struct {
	Kind LineKind
	Text string
}

// LineKind classifies a single source line.
type LineKind uint8

const (
	// LineText is a plain text line and the default kind.
	LineText LineKind = iota
	// LineEmpty is an empty or whitespace-only line.
	LineEmpty
	// LineTitle starts with a run of '#'.
	LineTitle
	// LineRuleEquals is a full line of '='.
	LineRuleEquals
	// LineRuleMinus is a full line of '-'.
	LineRuleMinus
	// LineRuleDots is a full line of '.'.
	LineRuleDots
	// LineQuotePrefixed starts with "> ".
	LineQuotePrefixed
	// LineQuoteFence is an unpaired ">>>" marker.
	LineQuoteFence
	// LineQuoteFenceBegin opens a paired quote fence.
	LineQuoteFenceBegin
	// LineQuoteFenceEnd closes a paired quote fence.
	LineQuoteFenceEnd
	// LineCodeFence is an unpaired "```" marker.
	LineCodeFence
	// LineCodeFenceBegin opens a paired code fence.
	LineCodeFenceBegin
	// LineCodeFenceEnd closes a paired code fence.
	LineCodeFenceEnd
	// LineTableBegin is a lone "[".
	LineTableBegin
	// LineTableEnd is a lone "]".
	LineTableEnd
	// LineTableHead is a "*[a, b]*" header line.
	LineTableHead
	// LineTableRow is a "[a, b]" data line.
	LineTableRow
	// LineListItem starts with "* ".
	LineListItem
	// LineCenter is a "-- text --" line.
	LineCenter
)

var lineKindNames = [...]string{
	LineText:            "text",
	LineEmpty:           "empty",
	LineTitle:           "title",
	LineRuleEquals:      "rule_equals",
	LineRuleMinus:       "rule_minus",
	LineRuleDots:        "rule_dots",
	LineQuotePrefixed:   "quote_prefixed",
	LineQuoteFence:      "quote_fence",
	LineQuoteFenceBegin: "quote_fence_begin",
	LineQuoteFenceEnd:   "quote_fence_end",
	LineCodeFence:       "code_fence",
	LineCodeFenceBegin:  "code_fence_begin",
	LineCodeFenceEnd:    "code_fence_end",
	LineTableBegin:      "table_begin",
	LineTableEnd:        "table_end",
	LineTableHead:       "table_head",
	LineTableRow:        "table_row",
	LineListItem:        "list_item",
	LineCenter:          "center",
}

func (k LineKind) String() string {
	if int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return "unknown"
}

func textsOf(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

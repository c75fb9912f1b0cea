package markin

// Block names emitted by the default grammar.
const (
	RuleHeading            = "heading"
	RuleHeading1Underlined = "heading_1_underlined"
	RuleHeading2Underlined = "heading_2_underlined"
	RuleHeading3Underlined = "heading_3_underlined"
	RuleCode               = "code"
	RulePrefixedQuote      = "prefixed_quote"
	RuleFencedQuote        = "fenced_quote"
	RuleList               = "list"
	RuleTable              = "table"
	RuleCenter             = "center"
	RuleEmpty              = "empty"
	RuleText               = "text"
)

// Block is a parsed unit of the document spanning one or more tokens.
type Block struct {
	Rule     string
	Tokens   []Token
	Children []Block
}

// Lines returns the raw text of every token in the block.
func (b Block) Lines() []string { return textsOf(b.Tokens) }

// Document is the ordered sequence of top-level blocks.
type Document []Block

// Tokens concatenates the token spans of all blocks. For a parsed document
// this reproduces the parser input.
func (d Document) Tokens() []Token {
	var out []Token
	for _, b := range d {
		out = append(out, b.Tokens...)
	}
	return out
}

// DefaultGrammar is the block grammar of the dialect. Order is precedence:
// underlined headings must be tried before the text run, which would
// otherwise swallow the underline.
var DefaultGrammar = MustGrammar(RuleText,
	Production{RuleHeading, Is(LineTitle)},
	Production{RuleHeading1Underlined, Sequence(Is(LineText), Is(LineRuleEquals))},
	Production{RuleHeading2Underlined, Sequence(Is(LineText), Is(LineRuleMinus))},
	Production{RuleHeading3Underlined, Sequence(Is(LineText), Is(LineRuleDots))},
	Production{RuleCode, Sequence(
		Is(LineCodeFenceBegin),
		Repeat(Not(LineCodeFenceEnd), 0, 0),
		Is(LineCodeFenceEnd),
	)},
	Production{RulePrefixedQuote, Repeat(Is(LineQuotePrefixed), 1, 0)},
	Production{RuleFencedQuote, Sequence(
		Is(LineQuoteFenceBegin),
		Repeat(Not(LineQuoteFenceEnd), 0, 0),
		Is(LineQuoteFenceEnd),
	)},
	Production{RuleList, Repeat(Is(LineListItem), 1, 0)},
	Production{RuleTable, Sequence(
		Is(LineTableBegin),
		Optional(LineTableHead),
		Repeat(Is(LineTableRow), 0, 0),
		Is(LineTableEnd),
	)},
	Production{RuleCenter, Is(LineCenter)},
	Production{RuleEmpty, Repeat(Is(LineEmpty), 1, 0)},
	Production{RuleText, Sequence(Any(), Repeat(Is(LineText), 0, 0))},
)

// Parse classifies, retags and parses src with the default grammar.
func Parse(src string) Document {
	return DefaultGrammar.Parse(RetagFences(Scan(src)))
}

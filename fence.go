package markin

type fencePair struct {
	begin LineKind
	end   LineKind
}

var fencePairs = map[LineKind]fencePair{
	LineCodeFence:  {begin: LineCodeFenceBegin, end: LineCodeFenceEnd},
	LineQuoteFence: {begin: LineQuoteFenceBegin, end: LineQuoteFenceEnd},
}

// RetagFences pairs fence markers and returns a new token slice in which each
// pair is relabelled as begin/end. A marker with no closing partner turns the
// marker and every following non-empty line into literal text. Fences do not
// nest: markers of another kind inside an open region are left untouched.
// The input slice is not modified.
func RetagFences(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	for i := 0; i < len(out); i++ {
		pair, ok := fencePairs[out[i].Kind]
		if !ok {
			continue
		}
		j := indexOfKind(out, i+1, out[i].Kind)
		if j < 0 {
			literalize(out[i:])
			break
		}
		out[i].Kind = pair.begin
		out[j].Kind = pair.end
		i = j
	}
	return out
}

func indexOfKind(tokens []Token, from int, kind LineKind) int {
	for j := from; j < len(tokens); j++ {
		if tokens[j].Kind == kind {
			return j
		}
	}
	return -1
}

func literalize(tokens []Token) {
	for i := range tokens {
		if tokens[i].Kind != LineEmpty {
			tokens[i].Kind = LineText
		}
	}
}

package markin

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// ErrUnbalancedMarkup reports a start tag without a matching end tag or the
// reverse.
var ErrUnbalancedMarkup = errors.New("unbalanced markup")

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// CheckMarkup tokenizes HTML from r and verifies that every element is
// closed in order.
func CheckMarkup(r io.Reader) error {
	z := html.NewTokenizer(r)
	var open []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("check markup: %w", err)
			}
			if len(open) > 0 {
				return fmt.Errorf("%w: <%s> is never closed", ErrUnbalancedMarkup, open[len(open)-1])
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements[string(name)] {
				open = append(open, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(open) == 0 {
				return fmt.Errorf("%w: stray </%s>", ErrUnbalancedMarkup, name)
			}
			if top := open[len(open)-1]; top != string(name) {
				return fmt.Errorf("%w: </%s> closes <%s>", ErrUnbalancedMarkup, name, top)
			}
			open = open[:len(open)-1]
		}
	}
}

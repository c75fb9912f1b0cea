package markin

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	// FrontMatter splits a leading metadata block off the source.
	FrontMatter bool
	// Standalone wraps the fragment in a complete HTML page.
	Standalone bool
	Options    []Option
}

// Render reads markup from Reader and writes HTML to Writer. The input must be
// UTF-8 text; line endings are normalized before compiling.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: Writer is nil")
	}
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(data); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	src := NormalizeLineEndings(string(data))
	var fm FrontMatter
	if req.FrontMatter {
		fm, src = SplitFrontMatter(src)
	}
	doc := compileDocument(src, req.Options...)
	body := RenderHTML(doc)
	if !req.Standalone {
		_, err = io.WriteString(req.Writer, body)
	} else {
		err = pageTemplate.Execute(req.Writer, page{
			Title: pageTitle(fm, doc),
			Lang:  frontMatterString(fm, "lang"),
			Body:  template.HTML(body),
		})
	}
	if err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

type page struct {
	Title string
	Lang  string
	Body  template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html{{if .Lang}} lang="{{.Lang}}"{{end}}>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))

const untitled = "Untitled"

// pageTitle prefers the front matter title, then the first heading block of
// the compiled document.
func pageTitle(fm FrontMatter, doc Document) string {
	if title := fm.Title(); title != "" {
		return title
	}
	if title := firstHeading(doc); title != "" {
		return title
	}
	return untitled
}

func firstHeading(blocks []Block) string {
	for _, b := range blocks {
		if len(b.Tokens) == 0 {
			continue
		}
		switch b.Rule {
		case RuleHeading:
			if text := headingText(b.Tokens[0].Text); text != "" {
				return text
			}
		case RuleHeading1Underlined, RuleHeading2Underlined, RuleHeading3Underlined:
			if text := strings.TrimSpace(b.Tokens[0].Text); text != "" {
				return text
			}
		}
		if text := firstHeading(b.Children); text != "" {
			return text
		}
	}
	return ""
}

func frontMatterString(fm FrontMatter, key string) string {
	s, _ := fm.Fields[key].(string)
	return strings.TrimSpace(s)
}

package markin

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Front matter formats, keyed by their delimiter line.
const (
	FrontMatterYAML = "yaml"
	FrontMatterTOML = "toml"
	FrontMatterJSON = "json"
)

var frontMatterDelimiters = map[string]string{
	"---": FrontMatterYAML,
	"+++": FrontMatterTOML,
	";;;": FrontMatterJSON,
}

// FrontMatter is a metadata block split off the start of a source.
type FrontMatter struct {
	Format string
	Raw    string
	Fields map[string]any
}

// Title returns the "title" field when it is a string.
func (fm FrontMatter) Title() string {
	return frontMatterString(fm, "title")
}

// SplitFrontMatter removes a leading front matter block from src and decodes
// it. The block must open on the first line, have a plausible metadata line
// right after the delimiter, be closed by the same delimiter and decode in its
// format. Otherwise src is returned unchanged with an empty FrontMatter, since
// "---" also underlines level 2 headings.
func SplitFrontMatter(src string) (FrontMatter, string) {
	lines := strings.SplitAfter(src, "\n")
	if len(lines) < 3 {
		return FrontMatter{}, src
	}
	delim := strings.TrimSpace(strings.TrimPrefix(lines[0], "\ufeff"))
	format, ok := frontMatterDelimiters[delim]
	if !ok || !frontMatterMetadataLikely(lines[1]) {
		return FrontMatter{}, src
	}
	end := -1
	for i := 2; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			end = i
			break
		}
	}
	if end < 0 {
		return FrontMatter{}, src
	}
	raw := strings.Join(lines[1:end], "")
	fields, err := decodeFrontMatter(format, raw)
	if err != nil {
		return FrontMatter{}, src
	}
	return FrontMatter{Format: format, Raw: raw, Fields: fields}, strings.Join(lines[end+1:], "")
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func decodeFrontMatter(format, raw string) (map[string]any, error) {
	fields := map[string]any{}
	var err error
	switch format {
	case FrontMatterYAML:
		err = yaml.Unmarshal([]byte(raw), &fields)
	case FrontMatterTOML:
		err = toml.Unmarshal([]byte(raw), &fields)
	case FrontMatterJSON:
		err = json.Unmarshal([]byte(raw), &fields)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return fields, nil
}

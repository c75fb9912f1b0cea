package markin

import (
	"regexp"
	"strings"
)

var (
	tableHeadCells = regexp.MustCompile(`^\s*\*\[(.+)\]\*\s*$`)
	tableRowCells  = regexp.MustCompile(`^\s*\[(.+)\]\s*$`)
)

func convertTable(b Block) string {
	return renderTable(interior(b.Lines()))
}

// renderTable renders the lines between the table brackets. An optional
// header line comes first; lines that are not rows are skipped. An empty
// interior still yields an empty table. Cells are escaped but carry no
// inline markup.
func renderTable(lines []string) string {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	offset := 0
	if len(lines) > 0 {
		if m := tableHeadCells.FindStringSubmatch(lines[0]); m != nil {
			writeRow(&sb, "th", m[1])
			offset = 1
		}
	}
	for _, line := range lines[offset:] {
		if m := tableRowCells.FindStringSubmatch(line); m != nil {
			writeRow(&sb, "td", m[1])
		}
	}
	sb.WriteString("</table>")
	return sb.String()
}

func writeRow(sb *strings.Builder, cell, row string) {
	sb.WriteString("<tr>")
	for _, c := range strings.Split(row, ",") {
		sb.WriteString("<" + cell + ">")
		sb.WriteString(EscapeHTML(strings.TrimSpace(c)))
		sb.WriteString("</" + cell + ">")
	}
	sb.WriteString("</tr>\n")
}

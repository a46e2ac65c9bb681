package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/phyten/minigrep/internal/engine"
)

var markdownCell = strings.NewReplacer(`\`, `\\`, "|", `\|`, "\r", "", "\n", " ")

// WriteMarkdownTable renders a GitHub Flavored Markdown table. Cell text is
// escaped so pipes and backslashes in matched lines cannot break the row.
func WriteMarkdownTable(w io.Writer, items []engine.Item, sel FieldSelection) error {
	bw := bufio.NewWriter(w)
	writeRow := func(cells []string) {
		bw.WriteString("| ")
		bw.WriteString(strings.Join(cells, " | "))
		bw.WriteString(" |\n")
	}
	all := rows(items, sel)
	writeRow(all[0])
	rule := make([]string, len(all[0]))
	for i := range rule {
		rule[i] = "---"
	}
	writeRow(rule)
	for _, row := range all[1:] {
		for i := range row {
			row[i] = markdownCell.Replace(row[i])
		}
		writeRow(row)
	}
	return bw.Flush()
}

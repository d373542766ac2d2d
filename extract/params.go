package extract

import (
	"strings"

	"github.com/fwojciec/helixdoc"
)

// cellSetter assigns one table cell's text to a field of a row.
type cellSetter func(row *helixdoc.ParamRow, text string)

// columns maps cell positions to row fields; index i reads the i-th cell.
type columns []cellSetter

var (
	// Query parameter tables: Parameter, Type, Required?, Description.
	queryColumns = columns{setName, setType, setRequired, setDescription}

	// Request and response body tables: Field, Type, Description.
	bodyColumns = columns{setName, setType, setDescription}
)

func setName(row *helixdoc.ParamRow, text string) { row.Name = strings.TrimSpace(text) }

func setType(row *helixdoc.ParamRow, text string) { row.Type = strings.TrimSpace(text) }

func setRequired(row *helixdoc.ParamRow, text string) { row.Required = strings.Contains(text, "Yes") }

func setDescription(row *helixdoc.ParamRow, text string) { row.Description = CleanDescription(text) }

// params reads the table after the sub-heading named label, one ParamRow per
// tbody row in document order. A missing heading or table yields no rows.
func params(section helixdoc.Node, label string, cols columns) []helixdoc.ParamRow {
	rows := []helixdoc.ParamRow{}

	table := followingBlock(section, label, isTag("table"))
	if table == nil {
		return rows
	}

	for _, tbody := range findAll(table, isTag("tbody")) {
		for _, tr := range tbody.Children() {
			if tr.Tag() != "tr" {
				continue
			}
			rows = append(rows, paramRow(tr.Children(), cols))
		}
	}
	return rows
}

// paramRow builds a row from cells. Cells missing from a short row read as "".
func paramRow(cells []helixdoc.Node, cols columns) helixdoc.ParamRow {
	var row helixdoc.ParamRow
	for i, set := range cols {
		var text string
		if i < len(cells) {
			text = cells[i].Text()
		}
		set(&row, text)
	}
	return row
}

// CleanDescription removes the "Read More" link text the reference renders
// inside description cells and trims surrounding whitespace.
func CleanDescription(text string) string {
	return strings.TrimSpace(strings.Replace(text, "Read More", "", 1))
}

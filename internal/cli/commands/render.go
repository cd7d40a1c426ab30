// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/spdsolve/internal/config"
	"github.com/katalvlaran/spdsolve/matrix"
)

// renderTable writes header and rows to w in the configured output format.
func renderTable(w io.Writer, format string, title string, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" && format == config.OutputText {
		t.SetTitle("%s", title)
	}
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch format {
	case config.OutputMarkdown:
		t.RenderMarkdown()
	case config.OutputCSV:
		t.RenderCSV()
	default:
		t.Render()
	}
}

// vectorRows turns v into (index, value) rows.
func vectorRows(v []float64) []table.Row {
	rows := make([]table.Row, len(v))
	for i, x := range v {
		rows[i] = table.Row{i, formatFloat(x)}
	}

	return rows
}

// matrixRows turns m into one row per matrix row, prefixed by the row index.
func matrixRows(m *matrix.Dense) (table.Row, []table.Row) {
	r, c := m.Shape()
	header := make(table.Row, c+1)
	header[0] = "row"
	for j := 0; j < c; j++ {
		header[j+1] = j
	}
	rows := make([]table.Row, r)
	raw := m.Raw()
	for i := 0; i < r; i++ {
		row := make(table.Row, c+1)
		row[0] = i
		for j := 0; j < c; j++ {
			row[j+1] = formatFloat(raw[i*c+j])
		}
		rows[i] = row
	}

	return header, rows
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', 12, 64) }

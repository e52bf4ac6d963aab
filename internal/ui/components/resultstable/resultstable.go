// Package resultstable renders query results with bubble-table.
package resultstable

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/querypad/internal/db"
	"github.com/nhath/querypad/internal/history"
)

const (
	colorForeground = "#D8DEE9"
	colorTeal       = "#8FBCBB"
	colorGreen      = "#A3BE8C"
	colorFaint      = "#4C566A"

	maxColumnWidth = 40
)

// New creates an empty themed table.
func New(cols []bbtable.Column) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorForeground))).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorTeal)).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGreen)).
			Bold(true)).
		Focused(false).
		BorderRounded()
}

// FromQueryResult builds a table for one result. DML results get a
// single-cell summary instead of a grid.
func FromQueryResult(res *db.QueryResult, pageSize int) bbtable.Model {
	if res == nil {
		return bbtable.New(nil)
	}

	if !res.IsSelect {
		col := bbtable.NewColumn("result", "Result", 40)
		row := bbtable.NewRow(bbtable.RowData{
			"result": fmt.Sprintf("%d row(s) affected in %s", res.AffectedRows, res.ExecTime),
		})
		return New([]bbtable.Column{col}).WithRows([]bbtable.Row{row})
	}

	widths := columnWidths(res.Columns, res.Rows)
	cols := make([]bbtable.Column, 0, len(res.Columns))
	for _, c := range res.Columns {
		w := widths[c]
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		cols = append(cols, bbtable.NewColumn(c, c, w))
	}

	rows := make([]bbtable.Row, 0, len(res.Rows))
	for _, r := range res.Rows {
		rowData := bbtable.RowData{}
		for i, val := range r {
			if i < len(res.Columns) {
				rowData[res.Columns[i]] = val
			}
		}
		rows = append(rows, bbtable.NewRow(rowData))
	}

	footer := fmt.Sprintf("%d row(s) in %s", res.RowCount, res.ExecTime)
	return New(cols).
		WithRows(rows).
		WithPageSize(pageSize).
		WithStaticFooter(footer)
}

// FromHistory renders persisted history entries, newest first. The row
// number is what /history use and /history rm address.
func FromHistory(entries []history.Entry, pageSize, total int) bbtable.Model {
	cols := []bbtable.Column{
		bbtable.NewColumn("n", "#", 4),
		bbtable.NewColumn("at", "Executed", 16),
		bbtable.NewColumn("status", "Status", 7),
		bbtable.NewColumn("rows", "Rows", 6),
		bbtable.NewColumn("query", "Query", 60),
	}

	rows := make([]bbtable.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, bbtable.NewRow(bbtable.RowData{
			"n":      i + 1,
			"at":     e.ExecutedAt.Format("2006-01-02 15:04"),
			"status": e.Status,
			"rows":   e.RowCount,
			"query":  e.QueryPreview(57),
		}))
	}

	footer := fmt.Sprintf("%d of %d entr%s", len(entries), total, pluralY(total))
	return New(cols).
		WithRows(rows).
		WithPageSize(pageSize).
		WithStaticFooter(footer)
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// columnWidths sizes each column to its widest cell, header included.
func columnWidths(columns []string, rows [][]string) map[string]int {
	widths := make(map[string]int, len(columns))
	for _, c := range columns {
		widths[c] = len(c)
	}
	for _, r := range rows {
		for i, val := range r {
			if i >= len(columns) {
				break
			}
			if len(val) > widths[columns[i]] {
				widths[columns[i]] = len(val)
			}
		}
	}
	return widths
}

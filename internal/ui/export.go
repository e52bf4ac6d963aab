// internal/ui/export.go
package ui

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ExportDoneMsg is sent when a result export settles.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// exportResultCmd writes the last query result to disk as CSV or JSON.
func (m Model) exportResultCmd(format, filename string) tea.Cmd {
	if m.result == nil || !m.result.IsSelect {
		return statusCmd("nothing to export")
	}

	columns := m.result.Columns
	rows := m.result.Rows

	return func() tea.Msg {
		path := filename
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				cwd = "."
			}
			path = filepath.Join(cwd, filename)
		}

		switch strings.ToLower(format) {
		case "csv":
			if !strings.HasSuffix(strings.ToLower(path), ".csv") {
				path += ".csv"
			}
			if err := writeCSV(path, columns, rows); err != nil {
				return ExportDoneMsg{Err: err}
			}
		case "json":
			if !strings.HasSuffix(strings.ToLower(path), ".json") {
				path += ".json"
			}
			if err := writeJSON(path, columns, rows); err != nil {
				return ExportDoneMsg{Err: err}
			}
		default:
			return ExportDoneMsg{Err: fmt.Errorf("unsupported export format: %s", format)}
		}

		return ExportDoneMsg{Path: path}
	}
}

func writeCSV(path string, columns []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, columns []string, rows [][]string) error {
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

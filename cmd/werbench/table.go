package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable renders a rounded table for interactive terminals and plain
// tab-ish output otherwise.
func renderTable(headers []string, rows [][]string, alignments []columnAlignment) string {
	writer := table.NewWriter()
	if isatty.IsTerminal(os.Stdout.Fd()) {
		writer.SetStyle(table.StyleRounded)
	} else {
		writer.SetStyle(table.StyleDefault)
		writer.Style().Options.DrawBorder = false
		writer.Style().Options.SeparateColumns = true
		writer.Style().Options.SeparateHeader = true
	}

	headerRow := make(table.Row, len(headers))
	for i, header := range headers {
		headerRow[i] = header
	}
	writer.AppendHeader(headerRow)

	configs := make([]table.ColumnConfig, 0, len(alignments))
	for i, alignment := range alignments {
		align := text.AlignLeft
		if alignment == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align})
	}
	writer.SetColumnConfigs(configs)

	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		writer.AppendRow(tableRow)
	}

	return writer.Render()
}

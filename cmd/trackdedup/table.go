package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable renders a rounded console table. Columns listed in
// rightAligned (1-based) are right-justified, which keeps numeric columns
// readable.
func renderTable(headers []string, rows [][]string, rightAligned ...int) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	if len(rightAligned) > 0 {
		configs := make([]table.ColumnConfig, 0, len(rightAligned))
		for _, number := range rightAligned {
			configs = append(configs, table.ColumnConfig{
				Number:      number,
				Align:       text.AlignRight,
				AlignHeader: text.AlignLeft,
			})
		}
		tw.SetColumnConfigs(configs)
	}

	return tw.Render()
}

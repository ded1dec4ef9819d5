package ui

import (
	"github.com/olekukonko/tablewriter"
)

// Row is one label/value line of a summary table
type Row struct {
	Label string
	Value string
}

// PrintSummary renders rows as a two-column table
func PrintSummary(rows []Row) {
	if len(rows) == 0 {
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append([]string{row.Label, row.Value})
	}
	table.Render()
}

// Package formatter renders normalized observations for human preview.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"lifelist/internal/models"
)

var tableHeader = []string{"DATE", "COMMON NAME", "SCIENTIFIC NAME", "LOCATION", "REGION"}

// FormatTable renders the observations as an aligned markdown table.
// Column widths use display width so that wide characters in species
// or location names do not break the alignment.
func FormatTable(observations []models.Observation) string {
	rows := [][]string{tableHeader}

	for _, obs := range observations {
		rows = append(rows, []string{obs.Date, obs.Common, obs.SciName, obs.Location, obs.Region})
	}

	colWidths := make([]int, len(tableHeader))

	for _, row := range rows {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Keep the separator at least three dashes wide.
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	writeRow(&sb, rows[0], colWidths)
	writeSeparator(&sb, colWidths)

	for _, row := range rows[1:] {
		writeRow(&sb, row, colWidths)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, colWidths []int) {
	sb.WriteString("|")

	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(cell)

		padding := colWidths[i] - runewidth.StringWidth(cell)
		if padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

func writeSeparator(sb *strings.Builder, colWidths []int) {
	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

package client

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table writes rows under headers as borderless aligned columns. Cells may
// carry color escapes; widths are measured on the visible text.
func (p *printer) Table(headers []string, rows [][]string) {
	renderer := lipgloss.NewRenderer(p.out)
	headerStyle := renderer.NewStyle().Bold(true).PaddingRight(2)
	cellStyle := renderer.NewStyle().PaddingRight(2)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(p.out, t.Render())
}

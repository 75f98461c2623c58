package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// historyColumns lists the summary table columns.
func historyColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Your answer", Width: inputLimit},
		{Title: "Answer", Width: 24},
		{Title: "Result", Width: 10},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		styles.Header = lipgloss.NewStyle().Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts answered questions into table rows.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.History))
	for _, row := range state.History {
		rows = append(rows, table.Row{
			fmtInt(row.QuestionID),
			formatInput(row.Input),
			row.Answer,
			formatResult(row.Correct),
		})
	}
	return rows
}

// newHistoryTable builds the summary table for a finished run.
func newHistoryTable(state State, noColor bool) table.Model {
	rows := rowsForState(state)
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(max(len(rows), 1)+1),
	)
	t.SetStyles(tableStyles(noColor))
	return t
}

package tui

import "github.com/charmbracelet/lipgloss"

// --- Styles ---
var (
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	boxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Bold(true).
				Padding(0, 1)
	outStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	inStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
)

func edgeStyle(dir direction) lipgloss.Style {
	switch dir {
	case dirOut:
		return outStyle
	case dirIn:
		return inStyle
	}
	return subtleStyle
}

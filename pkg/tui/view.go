package tui

import (
	"fmt"
	"strings"

	"txgraph/pkg/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	flowPlotHeight   = 4
	flowMinPaneLines = 12
	// Smallest window the two panes fit in: the narrowest table inside a
	// box, and six lines for the upper pane with the status line shown.
	minViewWidth  = minTableWidth + 4
	minViewHeight = 15
)

func (m model) View() string {
	if m.width < minViewWidth || m.height < minViewHeight {
		return subtleStyle.Render(utils.Truncate("window too small", max(m.width, 0)))
	}

	upper, lower := m.paneHeights()
	inner := m.width - boxStyle.GetHorizontalFrameSize()
	if inner < 0 {
		inner = 0
	}

	txPane := boxStyle.
		Width(m.width - 2).
		Height(max(upper-2, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Transactions"),
			m.transactionsView(),
		))

	vp := m.viewport
	vp.SetContent(m.graphContent(inner, vp.Height))
	graphPane := boxStyle.
		Width(m.width - 2).
		Height(max(lower-2, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Graph"),
			vp.View(),
		))

	footer := subtleStyle.Render(utils.Truncate(fmt.Sprintf("%s: quit • c: copy address", m.opts.QuitKey), m.width))
	if m.statusMessage != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, infoStyle.Render(utils.Truncate(m.statusMessage, m.width)), footer)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.topBar(),
		txPane,
		graphPane,
		footer,
	)
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(view)
}

func (m model) topBar() string {
	out, in := m.summary()
	left := fmt.Sprintf(" %s", m.opts.Target)
	right := fmt.Sprintf("blocks %d..%d • %d txs • %d nodes • %d out / %d in ",
		m.opts.Range.Latest, m.opts.Range.Lowest(),
		len(m.opts.Records), m.opts.Graph.NodeCount(), out, in)
	if m.opts.Range.Count == 0 {
		right = fmt.Sprintf("%d txs • %d nodes ", len(m.opts.Records), m.opts.Graph.NodeCount())
	}
	gap := m.width - utils.DisplayLen(left) - utils.DisplayLen(right)
	if gap < 1 {
		return subtleStyle.Render(utils.Truncate(left, m.width))
	}
	return subtleStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) transactionsView() string {
	if len(m.opts.Records) == 0 {
		msg := "No transactions found for this address in the scanned blocks"
		return subtleStyle.Render(utils.Truncate(msg, m.width-boxStyle.GetHorizontalFrameSize()))
	}
	return m.table.View()
}

// graphContent is the text of the lower pane: an optional net-flow plot
// followed by one line per edge.
func (m model) graphContent(width, height int) string {
	var b strings.Builder

	if len(m.opts.Records) >= 2 && height >= flowMinPaneLines && width > 20 {
		plot := asciigraph.Plot(netFlow(m.opts.Records, m.opts.Target),
			asciigraph.Height(flowPlotHeight),
			asciigraph.Width(width-12),
			asciigraph.Precision(uint(min(m.opts.ValueDecimals, 4))),
			asciigraph.Caption("Net flow (ETH), oldest to newest"),
		)
		b.WriteString(plot)
		b.WriteString("\n\n")
	}

	b.WriteString("Transaction Flow:")
	for _, line := range m.edgeLines() {
		b.WriteString("\n")
		b.WriteString(edgeStyle(line.dir).Render(line.text))
	}
	if m.opts.Graph.EdgeCount() == 0 {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(fmt.Sprintf("(no edges touching %s)", utils.Truncate(m.opts.Target.String(), m.opts.DisplayWidth))))
	}
	return b.String()
}

package tui

import (
	"fmt"
	"math/big"

	"txgraph/pkg/config"
	"txgraph/pkg/graph"
	"txgraph/pkg/models"
	"txgraph/pkg/utils"

	"github.com/charmbracelet/bubbles/table"
)

const (
	valueColumnWidth = 20
	minColumnWidth   = 4
	// Cell and header styles pad one space on each side.
	cellPadding = 2
	// Narrowest table transactionColumns produces.
	minTableWidth = 4 * (minColumnWidth + cellPadding)
)

// transactionColumns sizes the four columns to fit avail cells. Value gives
// way first, then From and To evenly, then the hash.
func transactionColumns(displayWidth, avail int) []table.Column {
	addr := max(displayWidth, len("From")) + 2
	widths := []int{addr, addr, valueColumnWidth, max(addr, len("Txn Hash"))}

	over := -avail
	for _, w := range widths {
		over += w + cellPadding
	}
	shrink := func(i, limit int) {
		cut := max(min(over, limit, widths[i]-minColumnWidth), 0)
		widths[i] -= cut
		over -= cut
	}
	shrink(2, over)
	half := (over + 1) / 2
	shrink(0, half)
	shrink(1, half)
	shrink(0, over)
	shrink(3, over)

	return []table.Column{
		{Title: "From", Width: widths[0]},
		{Title: "To", Width: widths[1]},
		{Title: "Value (ETH)", Width: widths[2]},
		{Title: "Txn Hash", Width: widths[3]},
	}
}

func transactionRows(records []models.TransactionRecord, decimals, displayWidth int) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, table.Row{
			utils.Truncate(rec.From.String(), displayWidth),
			utils.Truncate(rec.To.String(), displayWidth),
			utils.FormatEther(rec.Value, decimals),
			utils.Truncate(rec.Hash, displayWidth),
		})
	}
	return rows
}

// direction of an edge as seen from the target.
type direction int

const (
	dirNeutral direction = iota
	dirOut
	dirIn
)

func edgeDirection(from, to, target models.Account) direction {
	switch {
	case from == target:
		return dirOut
	case to == target:
		return dirIn
	}
	return dirNeutral
}

// formatEdge renders one edge line. Endpoints arrive already truncated.
func formatEdge(from, label, to string, dir direction) string {
	switch dir {
	case dirOut:
		return fmt.Sprintf("%s ─(%s)─> %s", from, label, to)
	case dirIn:
		return fmt.Sprintf("%s <─(%s)─ %s", from, label, to)
	}
	return fmt.Sprintf("%s ─(%s)── %s", from, label, to)
}

func (m model) edgeLabel(e graph.Edge) string {
	if m.opts.EdgeLabel == config.EdgeLabelValue {
		return utils.FormatEther(e.Value, m.opts.ValueDecimals)
	}
	return utils.Truncate(e.Hash, m.opts.DisplayWidth)
}

type edgeLine struct {
	text string
	dir  direction
}

// edgeLines lists every graph edge relative to the target, in edge order.
func (m model) edgeLines() []edgeLine {
	g := m.opts.Graph
	lines := make([]edgeLine, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		from, to := g.Endpoints(e)
		dir := edgeDirection(from, to, m.opts.Target)
		lines = append(lines, edgeLine{
			text: formatEdge(
				utils.Truncate(from.String(), m.opts.DisplayWidth),
				m.edgeLabel(e),
				utils.Truncate(to.String(), m.opts.DisplayWidth),
				dir,
			),
			dir: dir,
		})
	}
	return lines
}

// netFlow returns the target's running balance change in ether, oldest
// record first. Records arrive newest block first.
func netFlow(records []models.TransactionRecord, target models.Account) []float64 {
	series := make([]float64, 0, len(records)+1)
	running := new(big.Float)
	series = append(series, 0)
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		v := utils.WeiToEther(rec.Value)
		if rec.From == target {
			running.Sub(running, v)
		}
		if rec.To == target {
			running.Add(running, v)
		}
		series = append(series, utils.BigFloatToFloat64(running))
	}
	return series
}

// summary counts how the target's edges split by direction.
func (m model) summary() (out, in int) {
	id, ok := m.opts.Graph.Lookup(m.opts.Target)
	if !ok {
		return 0, 0
	}
	return m.opts.Graph.OutDegree(id), m.opts.Graph.InDegree(id)
}

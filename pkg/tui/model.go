package tui

import (
	"time"

	"txgraph/pkg/config"
	"txgraph/pkg/graph"
	"txgraph/pkg/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options is everything the view shows. Records and Graph are read-only.
type Options struct {
	Target          models.Account
	Records         []models.TransactionRecord
	Graph           *graph.Graph
	Range           models.ScanRange
	RPCURL          string
	ValueDecimals   int
	DisplayWidth    int
	EdgeLabel       string // config.EdgeLabelHash or config.EdgeLabelValue
	QuitKey         string
	RefreshInterval time.Duration
}

// state tracks the draw/input loop:
//
//	Entering -> Rendering -> Waiting -> Deciding -> Rendering | Exiting
//
// The program draws after every Update and then blocks for the next message,
// so each Update call starts from Waiting and decides.
type state int

const (
	stateEntering state = iota
	stateRendering
	stateWaiting
	stateDeciding
	stateExiting
)

func (s state) String() string {
	switch s {
	case stateEntering:
		return "entering"
	case stateRendering:
		return "rendering"
	case stateWaiting:
		return "waiting"
	case stateDeciding:
		return "deciding"
	case stateExiting:
		return "exiting"
	}
	return "unknown"
}

// next returns the state after s. quit only matters while deciding.
func (s state) next(quit bool) state {
	switch s {
	case stateEntering:
		return stateRendering
	case stateRendering:
		return stateWaiting
	case stateWaiting:
		return stateDeciding
	case stateDeciding:
		if quit {
			return stateExiting
		}
		return stateRendering
	}
	return stateExiting
}

// --- Messages ---

type clearStatusMsg struct{}
type uiTickMsg time.Time

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// --- Model ---

type model struct {
	opts          Options
	state         state
	width         int
	height        int
	table         table.Model
	viewport      viewport.Model
	statusMessage string
}

func initialModel(opts Options) model {
	if opts.Graph == nil {
		opts.Graph = graph.Build(opts.Records)
	}
	if opts.DisplayWidth <= 0 {
		opts.DisplayWidth = config.DefaultDisplayWidth
	}
	if opts.ValueDecimals < 0 {
		opts.ValueDecimals = config.DefaultValueDecimals
	}
	if opts.EdgeLabel == "" {
		opts.EdgeLabel = config.DefaultEdgeLabel
	}
	if opts.QuitKey == "" {
		opts.QuitKey = config.DefaultQuitKey
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Duration(config.DefaultRefreshInterval) * time.Millisecond
	}
	opts.Target = opts.Target.Normalize()

	styles := table.DefaultStyles()
	styles.Header = tableHeaderStyle.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(transactionColumns(opts.DisplayWidth, defaultWidth-boxStyle.GetHorizontalFrameSize())),
		table.WithRows(transactionRows(opts.Records, opts.ValueDecimals, opts.DisplayWidth)),
		table.WithFocused(false),
		table.WithStyles(styles),
	)

	m := model{
		opts:     opts,
		state:    stateEntering,
		width:    defaultWidth,
		height:   defaultHeight,
		table:    t,
		viewport: viewport.New(0, 0),
	}
	m.resize()
	return m
}

func (m model) Init() tea.Cmd {
	return tick(m.opts.RefreshInterval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return uiTickMsg(t) })
}

// paneHeights splits the space between the top bar and the footer.
func (m model) paneHeights() (upper, lower int) {
	avail := m.height - 2
	if m.statusMessage != "" {
		avail--
	}
	if avail < 0 {
		avail = 0
	}
	upper = avail / 2
	lower = avail - upper
	return upper, lower
}

// resize fits the table and the edge viewport into the current window.
func (m *model) resize() {
	upper, lower := m.paneHeights()
	inner := m.width - boxStyle.GetHorizontalFrameSize()
	if inner < 0 {
		inner = 0
	}

	m.table.SetColumns(transactionColumns(m.opts.DisplayWidth, inner))
	m.table.SetWidth(inner)
	// One line of each pane goes to its title. The table needs its two
	// header lines and at least one row.
	m.table.SetHeight(max(upper-boxStyle.GetVerticalFrameSize()-1, 3))

	m.viewport.Width = inner
	m.viewport.Height = max(lower-boxStyle.GetVerticalFrameSize()-1, 0)
}

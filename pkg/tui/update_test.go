package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestUpdate_QuitKey(t *testing.T) {
	m := initialModel(Options{Target: acctTarget, Records: sampleRecords()})
	assert.Equal(t, stateEntering, m.state)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, stateExiting, next.(model).state)
}

func TestUpdate_OtherKeysRedraw(t *testing.T) {
	m := initialModel(Options{Target: acctTarget, Records: sampleRecords()})
	before := m.table.Rows()

	for _, msg := range []tea.KeyMsg{
		keyRunes("x"),
		{Type: tea.KeyEnter},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyUp},
	} {
		next, cmd := m.Update(msg)
		nm := next.(model)
		assert.False(t, isQuit(cmd), "key %q", msg.String())
		assert.Equal(t, stateRendering, nm.state, "key %q", msg.String())
		assert.Equal(t, before, nm.table.Rows())
		assert.Equal(t, m.opts.Records, nm.opts.Records)
	}
}

func TestUpdate_CustomQuitKey(t *testing.T) {
	m := initialModel(Options{Target: acctTarget, QuitKey: "q"})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, isQuit(cmd))
	assert.Equal(t, stateRendering, next.(model).state)

	next, cmd = next.(model).Update(keyRunes("q"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, stateExiting, next.(model).state)
}

func TestUpdate_CopySetsStatus(t *testing.T) {
	m := initialModel(Options{Target: acctTarget})

	next, cmd := m.Update(keyRunes("c"))
	assert.NotNil(t, cmd)
	nm := next.(model)
	assert.NotEmpty(t, nm.statusMessage)

	next, _ = nm.Update(clearStatusMsg{})
	assert.Empty(t, next.(model).statusMessage)
}

func TestUpdate_TickRearms(t *testing.T) {
	m := initialModel(Options{Target: acctTarget})
	_, cmd := m.Update(uiTickMsg{})
	assert.NotNil(t, cmd)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := initialModel(Options{Target: acctTarget, Records: sampleRecords()})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	nm := next.(model)
	assert.Equal(t, 120, nm.width)
	assert.Equal(t, 40, nm.height)
	assert.Equal(t, 120-boxStyle.GetHorizontalFrameSize(), nm.viewport.Width)
}

func TestView_ShowsTransactionsAndEdges(t *testing.T) {
	m := initialModel(Options{Target: acctTarget, Records: sampleRecords()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := next.(model).View()
	assert.Contains(t, out, "Transactions")
	assert.Contains(t, out, "Transaction Flow:")
	assert.Contains(t, out, "0x11111111")
	assert.Contains(t, out, "0xaaaaaaaa")
	assert.Contains(t, out, "esc: quit")
	assert.NotContains(t, out, string(acctB), "addresses are truncated")
}

func TestView_NoTransactions(t *testing.T) {
	m := initialModel(Options{Target: acctTarget})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := next.(model).View()
	assert.Contains(t, out, "No transactions found")
	assert.Contains(t, out, "Transaction Flow:")
}

func TestView_TinyWindow(t *testing.T) {
	m := initialModel(Options{Target: acctTarget, Records: sampleRecords()})
	for _, size := range []tea.WindowSizeMsg{{Width: 0, Height: 0}, {Width: 10, Height: 3}} {
		next, _ := m.Update(size)
		assert.NotPanics(t, func() { _ = next.(model).View() })
	}
}

func TestInitialModel_WithRecords(t *testing.T) {
	var m model
	require.NotPanics(t, func() {
		m = initialModel(Options{Target: acctTarget, Records: sampleRecords()})
	})
	assert.Len(t, m.table.Columns(), 4)
	assert.Len(t, m.table.Rows(), 3)
	assert.Contains(t, m.table.View(), "0x11111111")
}

func TestView_FitsWindow(t *testing.T) {
	widths := []int{10, minViewWidth, 40, 60, 80, 120}
	heights := []int{3, minViewHeight, 20, 24, 40}

	for _, status := range []string{"", "Target address copied to clipboard!"} {
		for _, w := range widths {
			for _, h := range heights {
				m := initialModel(Options{Target: acctTarget, Records: sampleRecords()})
				next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
				nm := next.(model)
				nm.statusMessage = status
				nm.resize()

				out := nm.View()
				assert.LessOrEqual(t, lipgloss.Height(out), h, "%dx%d status=%q", w, h, status)
				assert.LessOrEqual(t, lipgloss.Width(out), w, "%dx%d status=%q", w, h, status)
			}
		}
	}
}

func TestView_FillsStandardTerminal(t *testing.T) {
	m := initialModel(Options{Target: acctTarget, Records: sampleRecords()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	out := next.(model).View()
	assert.Equal(t, 24, lipgloss.Height(out))
	assert.Contains(t, out, "Transaction Flow:")
}

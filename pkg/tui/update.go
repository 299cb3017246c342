package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Update is the decision step: the quit key ends the loop, anything else
// leads to a redraw of the same data.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	m.awaitDecision()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case m.opts.QuitKey:
			m.state = m.state.next(true)
			return m, tea.Quit
		case "c":
			if err := clipboard.WriteAll(m.opts.Target.String()); err != nil {
				m.statusMessage = "Failed to copy to clipboard"
			} else {
				m.statusMessage = "Target address copied to clipboard!"
			}
			m.resize()
			cmds = append(cmds, tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
				return clearStatusMsg{}
			}))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case uiTickMsg:
		cmds = append(cmds, tick(m.opts.RefreshInterval))

	case clearStatusMsg:
		m.statusMessage = ""
		m.resize()
	}

	m.state = m.state.next(false)
	return m, tea.Batch(cmds...)
}

// awaitDecision walks the loop up to Deciding. By the time a message reaches
// Update the previous frame has been drawn and the program has waited for it.
func (m *model) awaitDecision() {
	for m.state != stateDeciding && m.state != stateExiting {
		m.state = m.state.next(false)
	}
}

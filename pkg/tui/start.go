package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// TerminalError wraps a failure to drive the terminal: entering raw or
// alternate mode, drawing, reading input, or a panic inside the loop.
// The terminal has already been restored when it is returned.
type TerminalError struct {
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal: %v", e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// Run takes over the terminal and shows the view until the quit key is
// pressed. The program owns raw and alternate screen mode and restores both
// on every exit path, panics included.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	return run(newProgram(opts, progOpts...))
}

func newProgram(opts Options, progOpts ...tea.ProgramOption) *tea.Program {
	options := append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	return tea.NewProgram(initialModel(opts), options...)
}

func run(p *tea.Program) error {
	if _, err := p.Run(); err != nil {
		return &TerminalError{Err: err}
	}
	return nil
}

package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_QuitRestoresTerminal(t *testing.T) {
	var in, out bytes.Buffer
	p := newProgram(Options{Target: acctTarget, Records: sampleRecords()},
		tea.WithInput(&in),
		tea.WithOutput(&out),
	)

	go p.Send(tea.KeyMsg{Type: tea.KeyEsc})

	require.NoError(t, run(p))
	assert.Contains(t, out.String(), "\x1b[?1049h", "alternate screen entered")
	assert.Contains(t, out.String(), "\x1b[?1049l", "alternate screen left")
}

func TestRun_KilledIsTerminalError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var in, out bytes.Buffer
	err := Run(Options{Target: acctTarget},
		tea.WithContext(ctx),
		tea.WithInput(&in),
		tea.WithOutput(&out),
	)
	require.Error(t, err)

	var termErr *TerminalError
	require.True(t, errors.As(err, &termErr))
	assert.ErrorIs(t, err, tea.ErrProgramKilled)
}

func TestTerminalError(t *testing.T) {
	inner := errors.New("raw mode unavailable")
	err := &TerminalError{Err: inner}
	assert.Equal(t, "terminal: raw mode unavailable", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "entering", stateEntering.String())
	assert.Equal(t, "rendering", stateRendering.String())
	assert.Equal(t, "waiting", stateWaiting.String())
	assert.Equal(t, "deciding", stateDeciding.String())
	assert.Equal(t, "exiting", stateExiting.String())
	assert.Equal(t, "unknown", state(42).String())
}

func TestState_Next(t *testing.T) {
	tests := []struct {
		from state
		quit bool
		want state
	}{
		{stateEntering, false, stateRendering},
		{stateRendering, false, stateWaiting},
		{stateWaiting, false, stateDeciding},
		{stateDeciding, false, stateRendering},
		{stateDeciding, true, stateExiting},
		{stateExiting, false, stateExiting},
		{stateExiting, true, stateExiting},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.next(tt.quit))
		})
	}
}

func TestUpdate_WalksLoopStates(t *testing.T) {
	m := initialModel(Options{Target: acctTarget})
	require.Equal(t, stateEntering, m.state)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(model)
	assert.Equal(t, stateRendering, m.state)

	m.awaitDecision()
	assert.Equal(t, stateDeciding, m.state)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateExiting, next.(model).state)

	next, _ = next.(model).Update(keyRunes("x"))
	assert.Equal(t, stateExiting, next.(model).state)
}

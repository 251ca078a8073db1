// Package status shows transient messages that clear themselves.
package status

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/praxis/internal/constants"
)

// Level picks the message style.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// ClearMsg asks the model to clear the message it was scheduled for.
type ClearMsg struct {
	Seq int
}

// Model holds the current message. Every Set bumps the sequence, so only
// the clear scheduled by the latest Set has any effect.
type Model struct {
	text  string
	level Level
	seq   int
	delay time.Duration
}

func New(delay time.Duration) Model {
	if delay <= 0 {
		delay = constants.DefaultStatusClearDelay
	}
	return Model{delay: delay}
}

// Set shows text and returns the command that will clear it.
func (m *Model) Set(text string, level Level) tea.Cmd {
	m.text = text
	m.level = level
	m.seq++
	seq := m.seq
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return ClearMsg{Seq: seq}
	})
}

func (m *Model) Info(text string) tea.Cmd {
	return m.Set(text, LevelInfo)
}

func (m *Model) Error(text string) tea.Cmd {
	return m.Set(text, LevelError)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(ClearMsg); ok && msg.Seq == m.seq {
		m.text = ""
	}
	return m, nil
}

func (m Model) Text() string {
	return m.text
}

func (m Model) View() string {
	if m.text == "" {
		return ""
	}
	if m.level == LevelError {
		return errorStyle.Render(m.text)
	}
	return infoStyle.Render(m.text)
}

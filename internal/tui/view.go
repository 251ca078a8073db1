package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/praxis/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCheckIn:
		content = m.viewCheckIn()
	case StatePlan:
		content = m.viewPlan()
	case StateHistory:
		content = m.viewHistory()
	case StateEditing, StateImport:
		content = docStyle.Render(m.form.View())
	case StateConfirmWipe:
		content = m.viewConfirmWipe()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.status.View(),
		content,
		m.viewFooter(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= tabCount {
		active = m.previousState
	}

	tabs := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func field(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = placeholderStyle.Render("(empty)")
	} else {
		value = valueStyle.Render(value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func (m Model) viewCheckIn() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		field("Mood (0–10)", m.checkIn.Mood),
		field("Notes", m.checkIn.Notes),
	))
}

func (m Model) viewPlan() string {
	rows := []string{field("Theme", m.plan.Theme)}
	for i, p := range m.plan.Priorities {
		rows = append(rows, field(fmt.Sprintf("Priority %d", i+1), p))
	}
	rows = append(rows,
		field("Smallest step", m.plan.Step),
		field("Time box (min)", m.plan.Timebox),
	)
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) viewHistory() string {
	return docStyle.Render(m.history.View())
}

func (m Model) viewConfirmWipe() string {
	return lipgloss.Place(m.width, max(m.height-6, 0),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(constants.MsgWipePrompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewFooter() string {
	return footerStyle.Render(fmt.Sprintf("Praxis v1 · © %d", m.now().Year()))
}

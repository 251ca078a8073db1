package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/drafter"
	"github.com/julianstephens/praxis/internal/logger"
	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/transfer"
	"github.com/julianstephens/praxis/internal/tui/status"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Tabs, status, footer and help take the remaining rows.
		m.history.SetSize(max(msg.Width-4, 0), max(msg.Height-8, 0))
		return m, nil

	case status.ClearMsg:
		m.status, _ = m.status.Update(msg)
		return m, nil
	}

	switch m.state {
	case StateEditing, StateImport:
		return m.updateForm(msg)
	case StateConfirmWipe:
		return m.updateConfirmWipe(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.setTab((m.state + 1) % tabCount)
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.setTab((m.state - 1 + tabCount) % tabCount)
		return m, nil
	}

	switch m.state {
	case StateCheckIn:
		return m.updateCheckIn(keyMsg)
	case StatePlan:
		return m.updatePlan(keyMsg)
	case StateHistory:
		return m.updateHistory(keyMsg)
	}
	return m, nil
}

// setTab switches tabs; entering History re-renders it.
func (m *Model) setTab(s SessionState) {
	m.state = s
	if s == StateHistory {
		m.refreshHistory()
	}
}

func (m Model) updateCheckIn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		return m.startForm(m.newCheckInForm(), StateEditing)

	case key.Matches(msg, m.keys.Save):
		if _, err := m.journal.AddCheckIn(*m.checkIn); err != nil {
			return m, m.status.Error(err.Error())
		}
		*m.checkIn = models.CheckInForm{}
		m.refreshHistory()
		return m, m.status.Info(constants.MsgSaved)

	case key.Matches(msg, m.keys.Draft):
		*m.plan = drafter.QuickPlan(*m.checkIn)
		m.setTab(StatePlan)
		return m, m.status.Info(constants.MsgDrafted)
	}
	return m, nil
}

func (m Model) updatePlan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		return m.startForm(m.newPlanForm(), StateEditing)

	case key.Matches(msg, m.keys.Save):
		if _, err := m.journal.AddPlan(*m.plan); err != nil {
			return m, m.status.Error(err.Error())
		}
		m.refreshHistory()
		return m, m.status.Info(constants.MsgSaved)

	case key.Matches(msg, m.keys.Clear):
		*m.plan = models.PlanForm{}
		return m, m.status.Info(constants.MsgCleared)
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.refreshHistory()
		return m, nil

	case key.Matches(msg, m.keys.Wipe):
		m.previousState = m.state
		m.state = StateConfirmWipe
		return m, nil

	case key.Matches(msg, m.keys.Export):
		path, err := transfer.ExportFile(m.settings.ExportDir, m.journal.Entries(), m.now())
		if err != nil {
			return m, m.status.Error(err.Error())
		}
		logger.Debug("Exported from TUI", "path", path)
		return m, m.status.Info(constants.MsgExported + " " + path)

	case key.Matches(msg, m.keys.Import):
		return m.startForm(m.newImportForm(), StateImport)
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) startForm(form *huh.Form, s SessionState) (tea.Model, tea.Cmd) {
	m.form = form
	m.previousState = m.state
	m.state = s
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		importing := m.state == StateImport
		m.state = m.previousState
		m.form = nil
		if importing {
			cmds = append(cmds, m.importFile(strings.TrimSpace(*m.importPath)))
		}
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) importFile(path string) tea.Cmd {
	entries, err := transfer.ImportFile(path)
	if err != nil {
		return m.status.Error(err.Error())
	}

	m.beforeChange()
	if _, err := m.journal.MergeImport(entries); err != nil {
		return m.status.Error(err.Error())
	}
	m.refreshHistory()
	return m.status.Info(constants.MsgImported)
}

func (m Model) updateConfirmWipe(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.state = m.previousState
		if m.journal.Len() > 0 {
			m.beforeChange()
		}
		// The dialog already asked the question.
		_, err := m.journal.WipeAll(func(string) (bool, error) { return true, nil })
		if err != nil {
			return m, m.status.Error(err.Error())
		}
		m.refreshHistory()
		return m, m.status.Info(constants.MsgWiped)
	case "n", "N", "esc", "q":
		m.state = m.previousState
	}
	return m, nil
}

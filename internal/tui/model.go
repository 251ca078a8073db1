package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/praxis/internal/config"
	"github.com/julianstephens/praxis/internal/journal"
	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/tui/components/history"
	"github.com/julianstephens/praxis/internal/tui/status"
	"github.com/julianstephens/praxis/internal/view"
)

type SessionState int

// The first three states are the tabs, in display order.
const (
	StateCheckIn SessionState = iota
	StatePlan
	StateHistory
	StateEditing
	StateConfirmWipe
	StateImport
)

const tabCount = 3

var tabTitles = [tabCount]string{"Check-in", "Plan", "History"}

// Options configures a Model.
type Options struct {
	Settings config.Settings
	// BeforeChange runs before a wipe or import replaces journal contents.
	BeforeChange func()
	Now          func() time.Time
}

type Model struct {
	journal      *journal.Journal
	settings     config.Settings
	beforeChange func()
	now          func() time.Time

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	history       history.Model
	status        status.Model

	form       *huh.Form
	checkIn    *models.CheckInForm
	plan       *models.PlanForm
	importPath *string

	quitting bool
	width    int
	height   int
}

func NewModel(j *journal.Journal, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.BeforeChange == nil {
		opts.BeforeChange = func() {}
	}
	if opts.Settings.HistoryLimit == 0 {
		opts.Settings = config.Default()
	}

	hm := history.New(view.Options{
		Limit:      opts.Settings.HistoryLimit,
		TimeFormat: opts.Settings.TimestampFormat,
	}, 0, 0)
	hm.SetEntries(j.Entries())

	return Model{
		journal:      j,
		settings:     opts.Settings,
		beforeChange: opts.BeforeChange,
		now:          opts.Now,
		state:        StateCheckIn,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		history:      hm,
		status:       status.New(opts.Settings.StatusClearDelay()),
		checkIn:      &models.CheckInForm{},
		plan:         &models.PlanForm{},
		importPath:   new(string),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateCheckIn:
		keys = append(keys, m.keys.Edit, m.keys.Save, m.keys.Draft)
	case StatePlan:
		keys = append(keys, m.keys.Edit, m.keys.Save, m.keys.Clear)
	case StateHistory:
		keys = append(keys, m.keys.Refresh, m.keys.Export, m.keys.Import, m.keys.Wipe)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case StateCheckIn:
		actions = []key.Binding{m.keys.Edit, m.keys.Save, m.keys.Draft}
	case StatePlan:
		actions = []key.Binding{m.keys.Edit, m.keys.Save, m.keys.Clear}
	case StateHistory:
		actions = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Refresh, m.keys.Export, m.keys.Import, m.keys.Wipe}
	}

	return [][]key.Binding{global, actions}
}

// refreshHistory re-renders the history from the journal.
func (m *Model) refreshHistory() {
	m.history.SetEntries(m.journal.Entries())
}

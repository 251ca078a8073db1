package history

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/view"
)

// Model scrolls the rendered history cards.
type Model struct {
	viewport viewport.Model
	cards    []view.Card
	opts     view.Options
	width    int
	height   int
}

func New(opts view.Options, width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		opts:     opts,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetEntries rebuilds the cards from entries and scrolls to the top.
func (m *Model) SetEntries(entries []models.Entry) {
	m.cards = view.History(entries, m.opts)
	m.render()
	m.viewport.GotoTop()
}

// Cards returns the cards currently shown.
func (m Model) Cards() []view.Card {
	return m.cards
}

func (m *Model) render() {
	m.viewport.SetContent(view.RenderTerminal(m.cards, m.width))
}

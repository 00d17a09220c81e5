package cli

import (
	"context"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/projections"
	"github.com/alexanderramin/cadence/internal/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// snapshotMsg carries a fresh snapshot into the TUI, either as the result
// of a dispatched action or pushed from the engine's change feed.
type snapshotMsg struct {
	snapshot domain.Snapshot
}

// dispatchErrMsg carries a rejected action's error into the status line.
type dispatchErrMsg struct {
	err error
}

type uiKeyMap struct {
	Gantt    key.Binding
	Board    key.Binding
	Calendar key.Binding
	List     key.Binding
	PrevDay  key.Binding
	NextDay  key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k uiKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Gantt, k.Board, k.Calendar, k.List, k.Help, k.Quit}
}

func (k uiKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Gantt, k.Board, k.Calendar, k.List},
		{k.PrevDay, k.NextDay, k.ZoomIn, k.ZoomOut},
		{k.Help, k.Quit},
	}
}

func defaultUIKeyMap() uiKeyMap {
	return uiKeyMap{
		Gantt:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gantt")),
		Board:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "board")),
		Calendar: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calendar")),
		List:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "list")),
		PrevDay:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:  key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next day")),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// uiModel is the bubbletea model for the interactive view browser. It
// renders whichever view the snapshot says is current; every key action
// goes through the engine so the change persists like any other edit.
type uiModel struct {
	app      *App
	snapshot domain.Snapshot
	keys     uiKeyMap
	help     help.Model
	width    int
	lastErr  error
	quitting bool
}

func newUIModel(app *App) uiModel {
	return uiModel{
		app:      app,
		snapshot: app.Engine.Current(),
		keys:     defaultUIKeyMap(),
		help:     help.New(),
	}
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

// dispatch returns a Cmd that runs the action through the engine and
// feeds the resulting snapshot (or error) back into Update.
func (m uiModel) dispatch(a state.Action) tea.Cmd {
	return func() tea.Msg {
		next, err := m.app.Engine.Dispatch(context.Background(), a)
		if err != nil {
			return dispatchErrMsg{err: err}
		}
		return snapshotMsg{snapshot: next}
	}
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.snapshot = msg.snapshot
		m.lastErr = nil
		return m, nil

	case dispatchErrMsg:
		m.lastErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Gantt):
			return m, m.dispatch(state.SetView{View: domain.ViewGantt})
		case key.Matches(msg, m.keys.Board):
			return m, m.dispatch(state.SetView{View: domain.ViewBoard})
		case key.Matches(msg, m.keys.Calendar):
			return m, m.dispatch(state.SetView{View: domain.ViewCalendar})
		case key.Matches(msg, m.keys.List):
			return m, m.dispatch(state.SetView{View: domain.ViewList})
		case key.Matches(msg, m.keys.PrevDay):
			return m, m.dispatch(state.SetSelectedDate{Date: m.snapshot.SelectedDate.AddDate(0, 0, -1)})
		case key.Matches(msg, m.keys.NextDay):
			return m, m.dispatch(state.SetSelectedDate{Date: m.snapshot.SelectedDate.AddDate(0, 0, 1)})
		case key.Matches(msg, m.keys.ZoomIn):
			return m, m.dispatch(state.SetZoom{Level: m.snapshot.ZoomLevel + 10})
		case key.Matches(msg, m.keys.ZoomOut):
			return m, m.dispatch(state.SetZoom{Level: m.snapshot.ZoomLevel - 10})
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}

func (m uiModel) View() string {
	if m.quitting {
		return ""
	}

	title := formatter.Header("cadence · " + string(m.snapshot.CurrentView))
	body := renderView(m.snapshot, projections.Filter{})

	status := formatter.Dim(m.snapshot.SelectedDate.Format("2006-01-02"))
	if m.lastErr != nil {
		status = formatter.StyleRed.Render(m.lastErr.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		status,
		m.help.View(m.keys),
	)
}

package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vistui/internal/config"
	"vistui/internal/domain"
	"vistui/internal/eventbus"
	"vistui/internal/ui/viewmodels"
	"vistui/internal/ui/views"
	"vistui/internal/widget/grid"
)

const statusTTL = 3 * time.Second

// Model is the Bubble Tea model for the main screen
type Model struct {
	vm     *viewmodels.ViewModel
	bus    eventbus.EventBus
	config *config.Config

	width  int
	height int
	keys   keyMap
	help   help.Model
	input  textinput.Model
	adding bool
	focus  string // list name with keyboard focus

	confirming string // list awaiting a y/n answer before removal

	statusMessage string
	statusKind    views.StatusKind
	statusAt      time.Time

	renderer *views.Renderer
	pager    *PagerOps
	unsub    func()
}

// NewModel creates a new UI model over an already bound view model
func NewModel(cfg *config.Config, vm *viewmodels.ViewModel, bus eventbus.EventBus) *Model {
	input := textinput.New()
	input.Placeholder = "score file, e.g. Kyrie.krn"
	input.Prompt = "Add file: "
	input.CharLimit = 256

	m := &Model{
		vm:       vm,
		bus:      bus,
		config:   cfg,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		focus:    viewmodels.ListFiles,
		renderer: views.NewRenderer(),
		pager:    NewPagerOps(),
	}
	m.unsub = bus.SubscribeAll(m.handleEvent)

	h := cfg.UISettings.GridHeight
	vm.FileGrid.SetSize(0, h)
	vm.PieceGrid.SetSize(0, h)
	vm.FileGrid.Focus()
	vm.PieceGrid.Blur()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Close detaches the model from the event bus
func (m *Model) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.statusAt
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeGrids()

	case tea.KeyMsg:
		if m.adding {
			cmd = m.updateInput(msg)
			break
		}
		if m.confirming != "" {
			if m.updateConfirm(msg) {
				return m, tea.Quit
			}
			break
		}
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}

	case pagerMsg:
		if msg.err != nil {
			m.bus.Publish(eventbus.ErrorEvent{Message: "pager failed for " + msg.list, Err: msg.err})
		}

	case clearStatusMsg:
		if msg.setAt.Equal(m.statusAt) {
			m.statusMessage = ""
		}
		return m, nil
	}

	if !m.statusAt.Equal(before) && m.statusMessage != "" {
		at := m.statusAt
		cmd = tea.Batch(cmd, tea.Tick(statusTTL, func(time.Time) tea.Msg {
			return clearStatusMsg{setAt: at}
		}))
	}
	return m, cmd
}

// handleKey runs one key press; quit reports that the program should exit
func (m *Model) handleKey(msg tea.KeyMsg) (cmd tea.Cmd, quit bool) {
	g := m.focusedGrid()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()

	case key.Matches(msg, m.keys.Toggle):
		g.ToggleCursor()

	case key.Matches(msg, m.keys.Clear):
		g.ClearSelection()

	case key.Matches(msg, m.keys.Remove):
		if m.config.UISettings.ConfirmRemove && m.selectedCount(m.focus) > 0 {
			m.confirming = m.focus
			break
		}
		m.removeSelected(m.focus)

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.Reset()
		return m.input.Focus(), false

	case key.Matches(msg, m.keys.Import):
		if m.vm.ImportPieces() == 0 {
			m.setStatus(views.StatusWarning, "no new pieces to import")
		}

	case key.Matches(msg, m.keys.Next):
		m.vm.Wizard.Next()
		if err := m.vm.Wizard.Err(); err != nil {
			m.setStatus(views.StatusWarning, err.Error())
		}

	case key.Matches(msg, m.keys.Previous):
		m.vm.Wizard.Previous()

	case key.Matches(msg, m.keys.Jump):
		if len(msg.Runes) == 1 {
			m.vm.RequestStep(int(msg.Runes[0] - '1'))
		}

	case key.Matches(msg, m.keys.Pager):
		return m.showPager(), false

	default:
		return g.Update(msg), false
	}
	return nil, false
}

// updateInput handles keys while the add-file prompt is open
func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return nil
	case tea.KeyEnter:
		name := m.input.Value()
		m.closeInput()
		if err := m.vm.AddFile(name); err != nil {
			m.setStatus(views.StatusError, err.Error())
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// updateConfirm answers the removal prompt; it reports whether to quit
func (m *Model) updateConfirm(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c":
		return true
	case "y", "Y":
		list := m.confirming
		m.confirming = ""
		m.removeSelected(list)
	case "n", "N", "esc":
		m.confirming = ""
	}
	return false
}

// selectedCount is the size of the selection a removal would act on
func (m *Model) selectedCount(list string) int {
	l, err := m.vm.List(list)
	if err != nil {
		return 0
	}
	return l.SelectedItems.Len()
}

func (m *Model) removeSelected(list string) {
	removed, err := m.vm.RemoveSelected(list)
	if err != nil {
		m.setStatus(views.StatusError, err.Error())
	} else if len(removed) == 0 {
		m.setStatus(views.StatusWarning, "nothing selected")
	}
}

func (m *Model) closeInput() {
	m.adding = false
	m.input.Blur()
	m.input.Reset()
}

// handleEvent turns domain events into status messages. Events are
// published from inside Update, so it runs on the program goroutine.
func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.RowsRemovedEvent:
		m.setStatus(views.StatusSuccess, fmt.Sprintf("removed %d %s", len(ev.Rows), ev.List))
	case eventbus.RowsAddedEvent:
		m.setStatus(views.StatusSuccess, fmt.Sprintf("added %d to %s", len(ev.Rows), ev.List))
	case eventbus.PiecesImportedEvent:
		m.setStatus(views.StatusSuccess, fmt.Sprintf("imported %d pieces", ev.Count))
	case eventbus.StepRefusedEvent:
		m.setStatus(views.StatusWarning, fmt.Sprintf("stopped at step %d of requested %d: %s", ev.Reached+1, ev.Requested+1, ev.Reason))
	case eventbus.ErrorEvent:
		text := ev.Message
		if ev.Err != nil {
			text = fmt.Sprintf("%s: %v", ev.Message, ev.Err)
		}
		m.setStatus(views.StatusError, text)
	}
}

func (m *Model) setStatus(kind views.StatusKind, text string) {
	m.statusKind = kind
	m.statusMessage = text
	m.statusAt = time.Now()
}

func (m *Model) focusedGrid() *grid.Grid[domain.Row] {
	if m.focus == viewmodels.ListPieces {
		return m.vm.PieceGrid
	}
	return m.vm.FileGrid
}

func (m *Model) toggleFocus() {
	m.focusedGrid().Blur()
	if m.focus == viewmodels.ListFiles {
		m.focus = viewmodels.ListPieces
	} else {
		m.focus = viewmodels.ListFiles
	}
	m.focusedGrid().Focus()
}

// resizeGrids splits the width between the two grids and gives them the
// height left over after the chrome
func (m *Model) resizeGrids() {
	const chrome = 16
	h := m.height - chrome
	if m.config.UISettings.GridHeight > 0 && h > m.config.UISettings.GridHeight {
		h = m.config.UISettings.GridHeight
	}
	w := (m.width - 8) / 2
	m.vm.FileGrid.SetSize(w, h)
	m.vm.PieceGrid.SetSize(w, h)
}

// showPager returns a command that shows the focused list in ov
func (m *Model) showPager() tea.Cmd {
	g := m.focusedGrid()
	content := ListContent(g.Title(), g.RowsData(), g.IsSelected)
	list := m.focus
	return func() tea.Msg {
		return pagerMsg{list: list, err: m.pager.Show(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Wizard:        m.vm.Wizard.View(),
		Grids:         []string{m.vm.FileGrid.View(), m.vm.PieceGrid.View()},
		SelectedFiles: m.vm.Files.SelectedItems.Len(),
		SelectedPcs:   m.vm.Pieces.SelectedItems.Len(),
		StatusMessage: m.statusMessage,
		StatusKind:    m.statusKind,
		HelpView:      m.help.View(m.keys),
	}
	switch {
	case m.adding:
		state.InputView = m.input.View()
	case m.confirming != "":
		state.InputView = fmt.Sprintf("Remove %d selected %s? (y/n)", m.selectedCount(m.confirming), m.confirming)
	}
	return m.renderer.Render(state)
}

// ErrNoProgram is returned by the pager before SetProgram is called
var ErrNoProgram = errors.New("program not set")

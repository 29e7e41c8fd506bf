package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/daviddao/adaptive_contacts/internal/layout"
	"github.com/daviddao/adaptive_contacts/internal/navigation"
	"github.com/daviddao/adaptive_contacts/internal/snapshot"
	"github.com/daviddao/adaptive_contacts/internal/view"
)

// --- Messages ---

type orientationFileMsg struct {
	orientation layout.Orientation
	err         error
}

// --- Key bindings ---

type keyMap struct {
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
	Page   key.Binding
	Enter  key.Binding
	Rotate key.Binding
	Auto   key.Binding
	Help   key.Binding
}

// No back binding: in portrait the detail stays up until the screen is
// rotated.
var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	Page:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select contact")),
	Rotate: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "rotate")),
	Auto:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto orientation")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Rotate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.Enter},
		{k.Rotate, k.Auto, k.Help, k.Quit},
	}
}

// contextHelp returns help text appropriate for the current state.
func contextHelp(s navigation.State) string {
	switch s {
	case navigation.ListOnly:
		return "j/k: move | enter: open | o: rotate | ?: help | q: quit"
	case navigation.DetailOnly:
		return "o: rotate to see the list | ?: help | q: quit"
	default:
		return "j/k: move | enter: show | o: rotate | a: auto | ?: help | q: quit"
	}
}

// --- Layout ---

const (
	// contentTop is the first screen line below the title bar.
	contentTop = 2
	// chromeLines is the title bar, the gap below it and the status bar.
	chromeLines = 3
)

// --- Model ---

type uiModel struct {
	ctrl   *navigation.Controller
	list   *view.List
	logger *slog.Logger
	source string // contacts file, or "built-in"

	signal layout.Signal
	aspect float64

	width  int
	height int

	help     help.Model
	showHelp bool
}

func newModel(ctrl *navigation.Controller, aspect float64, logger *slog.Logger) uiModel {
	if logger == nil {
		logger = slog.Default()
	}
	return uiModel{
		ctrl:   ctrl,
		list:   view.NewList(ctrl.Contacts(), ctrl.ContactSelected),
		logger: logger,
		source: "built-in",
		aspect: aspect,
		help:   help.New(),
	}
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

// applyOrientation forwards the effective orientation to the controller.
func (m uiModel) applyOrientation() {
	m.ctrl.OrientationChanged(m.signal.Effective())
}

// selectByID activates the list row holding the contact with id.
func (m uiModel) selectByID(id int) bool {
	for i, c := range m.ctrl.Contacts() {
		if c.ID == id {
			return m.list.Click(i)
		}
	}
	return false
}

func (m uiModel) contentHeight() int {
	h := m.height - chromeLines
	if m.showHelp {
		h -= 3
	}
	return max(1, h)
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if m.ctrl.ShowList() {
				m.list.Activate()
			}

		case key.Matches(msg, keys.Rotate):
			m.signal = m.signal.Rotate()
			m.applyOrientation()

		case key.Matches(msg, keys.Auto):
			m.signal.Forced = layout.Unknown
			m.applyOrientation()

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp

		default:
			// Up/down and paging belong to the list.
			if m.ctrl.ShowList() {
				return m, m.list.Update(msg)
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.signal.Terminal = layout.FromSize(msg.Width, msg.Height, m.aspect)
		m.applyOrientation()

	case orientationFileMsg:
		if msg.err != nil {
			m.logger.Warn("orientation file", "error", msg.err)
			m.signal.File = layout.Unknown
		} else {
			m.signal.File = msg.orientation
		}
		m.applyOrientation()
	}

	return m, nil
}

// handleMouse selects the list row under a left click.
func (m uiModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if !m.ctrl.ShowList() {
		return
	}
	if m.ctrl.State() == navigation.Split {
		leftWidth, _ := view.SplitWidths(m.width)
		if msg.X >= leftWidth {
			return
		}
	}
	line := msg.Y - contentTop
	if line < 0 {
		return
	}
	if row := m.list.RowAt(line, m.contentHeight()); row >= 0 {
		m.list.Click(row)
	}
}

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Background(lipgloss.Color("#1E1E2E")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")).
			Background(lipgloss.Color("#1E1E2E"))
)

// --- View rendering ---

func (m uiModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	frame := snapshot.Build(m.ctrl)

	var b strings.Builder

	b.WriteString(m.renderTitleBar(frame))
	b.WriteRune('\n')
	b.WriteRune('\n')

	contentHeight := m.contentHeight()

	var content string
	switch frame.State {
	case navigation.Split:
		leftWidth, rightWidth := view.SplitWidths(m.width)
		left := m.list.Render(frame.List, leftWidth, contentHeight)
		right := renderDetailPane(frame.Detail, rightWidth, contentHeight)
		content = view.SplitPane(left, right, leftWidth, rightWidth, contentHeight)
	case navigation.DetailOnly:
		content = renderDetailPane(frame.Detail, m.width, contentHeight)
	default:
		content = m.list.Render(frame.List, m.width, contentHeight)
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	b.WriteString(strings.Join(lines, "\n"))

	// Pad to fill screen.
	rendered := strings.Count(b.String(), "\n")
	for rendered < m.height-1 {
		b.WriteRune('\n')
		rendered++
	}

	// Help / status bar.
	if m.showHelp {
		b.WriteString(m.help.View(keys))
	} else {
		b.WriteString(m.renderStatusBar(frame))
	}

	// Truncate each line to terminal width so nothing wraps on resize.
	return view.TruncateLines(b.String(), m.width)
}

// renderDetailPane draws the selected contact, or the placeholder when the
// split view has nothing selected yet.
func renderDetailPane(d *snapshot.DetailPane, width, height int) string {
	if d == nil {
		return ""
	}
	if d.Contact == nil {
		return view.RenderPlaceholder(width, height)
	}
	return view.RenderDetail(*d.Contact, width, height)
}

func (m uiModel) renderTitleBar(f *snapshot.Frame) string {
	title := titleStyle.Render("contacts")
	stats := dimStyle.Render(fmt.Sprintf("%s | %s | %s",
		m.orientationLabel(f.Orientation), f.Mode, f.State))
	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(title)-lipgloss.Width(stats)-2))
	return title + gap + stats
}

// orientationLabel names the orientation and where it came from.
func (m uiModel) orientationLabel(o layout.Orientation) string {
	switch {
	case m.signal.Forced != layout.Unknown:
		return o.String() + " (forced)"
	case m.signal.File != layout.Unknown:
		return o.String() + " (file)"
	}
	return o.String()
}

func (m uiModel) renderStatusBar(f *snapshot.Frame) string {
	left := fmt.Sprintf(" %s", contextHelp(f.State))
	right := fmt.Sprintf("%s ", m.source)
	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right)))
	return statusBarStyle.Render(left + gap + right)
}

package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daviddao/adaptive_contacts/internal/contact"
	"github.com/daviddao/adaptive_contacts/internal/snapshot"
)

const (
	// ListHeaderLines is the number of lines above the first row.
	ListHeaderLines = 2
	// RowHeight is the number of lines each contact row occupies.
	RowHeight = 3
)

// rowItem adapts a snapshot row to list.Item.
type rowItem snapshot.Row

func (r rowItem) FilterValue() string { return r.Contact.Name }

// rowDelegate draws a contact as avatar and name, then the phone number,
// then a blank line.
type rowDelegate struct{}

func (rowDelegate) Height() int                             { return RowHeight }
func (rowDelegate) Spacing() int                            { return 0 }
func (rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(rowItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderRow(snapshot.Row(r), index == m.Index(), m.Width()))
}

// List is the interactive contact list: a cursor over the rows and a
// callback fired when a row is activated. Scrolling is page by page.
type List struct {
	model    list.Model
	contacts []contact.Contact
	onSelect func(contact.Contact)
}

// NewList returns a list over contacts. onSelect is called once per
// activation with the activated contact.
func NewList(contacts []contact.Contact, onSelect func(contact.Contact)) *List {
	rows := make([]snapshot.Row, len(contacts))
	for i, c := range contacts {
		rows[i] = snapshot.Row{Contact: c}
	}

	m := list.New(toItems(rows), rowDelegate{}, 0, 0)
	m.SetShowTitle(false)
	m.SetShowStatusBar(false)
	m.SetShowPagination(false)
	m.SetShowHelp(false)
	m.SetFilteringEnabled(false)
	m.DisableQuitKeybindings()

	return &List{
		model:    m,
		contacts: contacts,
		onSelect: onSelect,
	}
}

func toItems(rows []snapshot.Row) []list.Item {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = rowItem(r)
	}
	return items
}

// Cursor returns the highlighted row index.
func (l *List) Cursor() int {
	return l.model.Index()
}

// Up moves the cursor one row up.
func (l *List) Up() {
	l.model.CursorUp()
}

// Down moves the cursor one row down.
func (l *List) Down() {
	l.model.CursorDown()
}

// Update handles the list's own navigation keys (arrows, j/k, paging,
// home/end). It never selects a contact.
func (l *List) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.model, cmd = l.model.Update(msg)
	return cmd
}

// Activate fires onSelect for the row under the cursor.
func (l *List) Activate() bool {
	return l.Click(l.model.Index())
}

// Click moves the cursor to row and fires onSelect for it.
// Rows outside the list are ignored.
func (l *List) Click(row int) bool {
	if row < 0 || row >= len(l.contacts) {
		return false
	}
	l.model.Select(row)
	if l.onSelect != nil {
		l.onSelect(l.contacts[row])
	}
	return true
}

// resize fits the list below the header in a width x height pane.
func (l *List) resize(width, height int) {
	l.model.SetSize(max(0, width), max(0, height-ListHeaderLines))
}

// Offset returns the first visible row when height lines are available.
func (l *List) Offset(height int) int {
	l.resize(l.model.Width(), height)
	return l.model.Paginator.Page * l.model.Paginator.PerPage
}

// RowAt maps a line within the list pane to a row index, or -1.
func (l *List) RowAt(line, height int) int {
	if line < ListHeaderLines {
		return -1
	}
	offset := l.Offset(height)
	rel := (line - ListHeaderLines) / RowHeight
	if rel >= l.model.Paginator.PerPage {
		return -1
	}
	row := offset + rel
	if row >= len(l.contacts) {
		return -1
	}
	return row
}

// VisibleRows is how many rows fit in height lines. At least one row is
// always shown.
func VisibleRows(height int) int {
	return max(1, (height-ListHeaderLines)/RowHeight)
}

// Render draws the rows of the list pane in order.
func (l *List) Render(pane *snapshot.ListPane, width, height int) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Contacts (%d)", len(pane.Rows))))
	b.WriteRune('\n')
	b.WriteRune('\n')

	if len(pane.Rows) == 0 {
		b.WriteString(dimStyle.Render("  (no contacts)"))
		b.WriteRune('\n')
		return b.String()
	}

	l.model.SetItems(toItems(pane.Rows))
	l.resize(width, height)
	b.WriteString(l.model.View())
	return b.String()
}

func renderRow(r snapshot.Row, atCursor bool, width int) string {
	cursor := "  "
	if atCursor {
		cursor = cursorStyle.Render("> ")
	}
	mark := " "
	if r.Selected {
		mark = selectedMarkStyle.Render("•")
	}

	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString(avatarStyle.Render(r.Contact.Initials()))
	b.WriteString(" ")
	b.WriteString(mark)
	b.WriteString(" ")
	b.WriteString(nameStyle.Render(r.Contact.Name))
	b.WriteRune('\n')
	b.WriteString(strings.Repeat(" ", 10))
	b.WriteString(phoneStyle.Render(r.Contact.Phone))
	b.WriteRune('\n')
	return TruncateLines(b.String(), width)
}

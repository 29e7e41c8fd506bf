// Package snapshot builds immutable view trees from the navigation state.
//
// A Frame captures which panes are visible and what they show at one point
// in time. Frames are rebuilt after every event and handed to the renderer,
// or encoded as JSON for --json mode.
package snapshot

import (
	"time"

	"github.com/daviddao/adaptive_contacts/internal/contact"
	"github.com/daviddao/adaptive_contacts/internal/layout"
	"github.com/daviddao/adaptive_contacts/internal/navigation"
)

// Frame is the view tree for one render pass.
type Frame struct {
	State       navigation.State   `json:"state"`
	Mode        layout.Mode        `json:"layout_mode"`
	Orientation layout.Orientation `json:"orientation"`

	// List is nil when the list pane is hidden.
	List *ListPane `json:"list,omitempty"`
	// Detail is nil when the detail pane is hidden.
	Detail *DetailPane `json:"detail,omitempty"`

	BuiltAt time.Time `json:"built_at"`
}

// ListPane holds one row per contact, in store order.
type ListPane struct {
	Rows []Row `json:"rows"`
}

// Row is a single list entry.
type Row struct {
	Contact  contact.Contact `json:"contact"`
	Selected bool            `json:"selected"`
}

// DetailPane shows the selected contact or, in split mode with nothing
// selected, a placeholder.
type DetailPane struct {
	Contact     *contact.Contact `json:"contact,omitempty"`
	Placeholder bool             `json:"placeholder"`
}

// Build reads the controller and returns the current frame.
func Build(c *navigation.Controller) *Frame {
	f := &Frame{
		State:       c.State(),
		Mode:        c.Mode(),
		Orientation: c.Orientation(),
		BuiltAt:     time.Now(),
	}

	sel, hasSel := c.Selected()

	if c.ShowList() {
		contacts := c.Contacts()
		rows := make([]Row, len(contacts))
		for i, ct := range contacts {
			rows[i] = Row{
				Contact:  ct,
				Selected: hasSel && ct.ID == sel.ID,
			}
		}
		f.List = &ListPane{Rows: rows}
	}

	if c.ShowDetail() {
		if hasSel {
			f.Detail = &DetailPane{Contact: &sel}
		} else {
			f.Detail = &DetailPane{Placeholder: true}
		}
	}

	return f
}

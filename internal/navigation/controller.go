// Package navigation decides which panes are visible for a given
// orientation and selection, and applies selection and orientation events.
//
// Nothing here is stored beyond the selection and the last orientation:
// the layout mode and the navigation state are recomputed on every call.
// All methods are meant to run on the UI event loop and are not safe for
// concurrent use.
package navigation

import (
	"io"
	"log/slog"

	"github.com/daviddao/adaptive_contacts/internal/contact"
	"github.com/daviddao/adaptive_contacts/internal/layout"
)

// State is the derived navigation state.
type State int

const (
	// ListOnly: single pane, nothing selected.
	ListOnly State = iota
	// DetailOnly: single pane, a contact is selected.
	DetailOnly
	// Split: dual pane, with or without a selection.
	Split
)

func (s State) String() string {
	switch s {
	case ListOnly:
		return "list-only"
	case DetailOnly:
		return "detail-only"
	case Split:
		return "split"
	}
	return "?"
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Source supplies the ordered contact list.
type Source interface {
	All() []contact.Contact
}

// Controller is the adaptive list/detail state machine.
type Controller struct {
	source      Source
	selection   *Selection
	orientation layout.Orientation
	logger      *slog.Logger
}

// New returns a controller over source. A nil selection gets a fresh,
// empty one; a nil logger discards output.
func New(source Source, sel *Selection, logger *slog.Logger) *Controller {
	if sel == nil {
		sel = &Selection{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		source:    source,
		selection: sel,
		logger:    logger,
	}
}

// ContactSelected handles a row activation in the list.
func (c *Controller) ContactSelected(ct contact.Contact) {
	before := c.State()
	c.selection.Select(ct)
	c.logger.Debug("contact selected",
		"id", ct.ID,
		"from", before.String(),
		"to", c.State().String())
}

// OrientationChanged records a new orientation. The selection is kept.
func (c *Controller) OrientationChanged(o layout.Orientation) {
	if o == c.orientation {
		return
	}
	before := c.State()
	c.orientation = o
	c.logger.Debug("orientation changed",
		"orientation", o.String(),
		"mode", c.Mode().String(),
		"from", before.String(),
		"to", c.State().String())
}

// Orientation returns the last orientation seen.
func (c *Controller) Orientation() layout.Orientation {
	return c.orientation
}

// Mode resolves the layout mode from the current orientation.
func (c *Controller) Mode() layout.Mode {
	return layout.Resolve(c.orientation)
}

// Selected returns the selected contact, if any.
func (c *Controller) Selected() (contact.Contact, bool) {
	return c.selection.Get()
}

// Contacts returns the contact list in order.
func (c *Controller) Contacts() []contact.Contact {
	return c.source.All()
}

// State derives the navigation state from the mode and the selection.
func (c *Controller) State() State {
	if c.Mode() == layout.DualPane {
		return Split
	}
	if _, ok := c.selection.Get(); ok {
		return DetailOnly
	}
	return ListOnly
}

// ShowList reports whether the list pane is visible.
func (c *Controller) ShowList() bool {
	s := c.State()
	return s == Split || s == ListOnly
}

// ShowDetail reports whether the detail pane is visible.
func (c *Controller) ShowDetail() bool {
	s := c.State()
	return s == Split || s == DetailOnly
}

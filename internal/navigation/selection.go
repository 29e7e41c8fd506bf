package navigation

import "github.com/daviddao/adaptive_contacts/internal/contact"

// Selection holds the currently selected contact, if any.
// It belongs to one screen instance and starts empty.
type Selection struct {
	contact contact.Contact
	ok      bool
}

// Get returns the selected contact and whether one is selected.
func (s *Selection) Get() (contact.Contact, bool) {
	return s.contact, s.ok
}

// Select overwrites the current selection.
func (s *Selection) Select(c contact.Contact) {
	s.contact = c
	s.ok = true
}

// Clear resets the selection to empty.
func (s *Selection) Clear() {
	s.contact = contact.Contact{}
	s.ok = false
}

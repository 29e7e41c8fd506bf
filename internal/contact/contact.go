// Package contact holds the read-only contact list shown by the viewer.
//
// Contacts are created once at startup, either from the built-in list or
// from a YAML file, and never change for the rest of the process.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultImage is the image handle used when a contact does not name one.
const DefaultImage = "ic_launcher_background"

// ErrInvalidContact is returned when a contact list fails validation.
var ErrInvalidContact = errors.New("invalid contact")

// Contact is one address-book entry.
type Contact struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone" yaml:"phone"`
	ImageRef string `json:"image" yaml:"image"`
}

// Initials returns up to two upper-case initials for the avatar badge.
func (c Contact) Initials() string {
	fields := strings.Fields(c.Name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		r := []rune(fields[0])
		return strings.ToUpper(string(r[0]))
	}
	first := []rune(fields[0])
	last := []rune(fields[len(fields)-1])
	return strings.ToUpper(string(first[0]) + string(last[0]))
}

// Store is an ordered, immutable sequence of contacts.
type Store struct {
	contacts []Contact
	byID     map[int]int
}

// New validates contacts and returns a store preserving their order.
// IDs must be positive and unique and every contact needs a name.
func New(contacts []Contact) (*Store, error) {
	s := &Store{
		contacts: make([]Contact, len(contacts)),
		byID:     make(map[int]int, len(contacts)),
	}
	for i, c := range contacts {
		if c.ID <= 0 {
			return nil, fmt.Errorf("contact #%d: id %d must be positive: %w", i+1, c.ID, ErrInvalidContact)
		}
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("contact id %d: empty name: %w", c.ID, ErrInvalidContact)
		}
		if _, dup := s.byID[c.ID]; dup {
			return nil, fmt.Errorf("contact id %d: duplicate id: %w", c.ID, ErrInvalidContact)
		}
		if c.ImageRef == "" {
			c.ImageRef = DefaultImage
		}
		s.contacts[i] = c
		s.byID[c.ID] = i
	}
	return s, nil
}

// Default returns the built-in contact list.
func Default() *Store {
	s, err := New(defaultContacts)
	if err != nil {
		panic(err) // compiled-in data
	}
	return s
}

var defaultContacts = []Contact{
	{ID: 1, Name: "John Doe", Phone: "123-456-7890", ImageRef: DefaultImage},
	{ID: 2, Name: "Jane Smith", Phone: "987-654-3210", ImageRef: DefaultImage},
	{ID: 3, Name: "Alex Johnson", Phone: "555-123-4567", ImageRef: DefaultImage},
	{ID: 4, Name: "Celeb David", Phone: "4741-123-4567", ImageRef: DefaultImage},
	{ID: 5, Name: "Rickey", Phone: "888-854-5147", ImageRef: DefaultImage},
	{ID: 6, Name: "Cameron Green", Phone: "888-515-8754", ImageRef: DefaultImage},
	{ID: 7, Name: "Adam Warner", Phone: "548-453-5545", ImageRef: DefaultImage},
}

// All returns the contacts in their original order. The slice is a copy.
func (s *Store) All() []Contact {
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Len returns the number of contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// ByID looks up a contact by its ID.
func (s *Store) ByID(id int) (Contact, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Contact{}, false
	}
	return s.contacts[i], true
}

package navigation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddao/adaptive_contacts/internal/contact"
	"github.com/daviddao/adaptive_contacts/internal/layout"
)

func newTestController(o layout.Orientation) *Controller {
	c := New(contact.Default(), nil, nil)
	c.OrientationChanged(o)
	return c
}

func mustContact(t *testing.T, id int) contact.Contact {
	t.Helper()
	c, ok := contact.Default().ByID(id)
	require.True(t, ok, "contact %d", id)
	return c
}

func TestSelection(t *testing.T) {
	var s Selection
	_, ok := s.Get()
	assert.False(t, ok, "new selection should be empty")

	c := contact.Contact{ID: 1, Name: "John Doe"}
	s.Select(c)
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, c, got)

	other := contact.Contact{ID: 2, Name: "Jane Smith"}
	s.Select(other)
	got, _ = s.Get()
	assert.Equal(t, other, got)

	s.Clear()
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestInitialState(t *testing.T) {
	assert.Equal(t, ListOnly, newTestController(layout.Portrait).State())
	assert.Equal(t, Split, newTestController(layout.Landscape).State())
	assert.Equal(t, ListOnly, newTestController(layout.Unknown).State())
}

func TestContactSelectedPortrait(t *testing.T) {
	c := newTestController(layout.Portrait)
	c.ContactSelected(mustContact(t, 3))

	assert.Equal(t, DetailOnly, c.State())
	assert.False(t, c.ShowList())
	assert.True(t, c.ShowDetail())

	sel, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Alex Johnson", sel.Name)
}

func TestContactSelectedLandscapeStaysSplit(t *testing.T) {
	c := newTestController(layout.Landscape)
	c.ContactSelected(mustContact(t, 2))
	assert.Equal(t, Split, c.State())

	c.ContactSelected(mustContact(t, 5))
	assert.Equal(t, Split, c.State())
	sel, _ := c.Selected()
	assert.Equal(t, 5, sel.ID)
}

func TestOrientationKeepsSelection(t *testing.T) {
	c := newTestController(layout.Portrait)
	c.ContactSelected(mustContact(t, 3))
	require.Equal(t, DetailOnly, c.State())

	c.OrientationChanged(layout.Landscape)
	assert.Equal(t, Split, c.State())
	sel, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, sel.ID)

	c.OrientationChanged(layout.Portrait)
	assert.Equal(t, DetailOnly, c.State(), "rotating back returns to the detail")
}

func TestNoWayBackInPortrait(t *testing.T) {
	// The only transitions are selection and orientation; in portrait the
	// detail stays up until something clears the selection.
	sel := &Selection{}
	c := New(contact.Default(), sel, nil)
	c.OrientationChanged(layout.Portrait)
	c.ContactSelected(mustContact(t, 1))
	c.OrientationChanged(layout.Portrait)
	assert.Equal(t, DetailOnly, c.State())

	sel.Clear()
	assert.Equal(t, ListOnly, c.State())
}

func TestModeIsNotCached(t *testing.T) {
	c := newTestController(layout.Portrait)
	assert.Equal(t, layout.SinglePane, c.Mode())
	c.OrientationChanged(layout.Landscape)
	assert.Equal(t, layout.DualPane, c.Mode())
	c.OrientationChanged(layout.Unknown)
	assert.Equal(t, layout.SinglePane, c.Mode())
}

func TestContactsInOrder(t *testing.T) {
	c := newTestController(layout.Portrait)
	assert.Equal(t, contact.Default().All(), c.Contacts())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "list-only", ListOnly.String())
	assert.Equal(t, "detail-only", DetailOnly.String())
	assert.Equal(t, "split", Split.String())
	assert.Equal(t, "?", State(9).String())
}

// TestRandomEventSequences drives the controller with random selection and
// orientation events and checks the visibility invariant after each one.
func TestRandomEventSequences(t *testing.T) {
	store := contact.Default()
	all := store.All()
	orientations := []layout.Orientation{layout.Unknown, layout.Portrait, layout.Landscape}
	rng := rand.New(rand.NewPCG(1, 2))

	for run := 0; run < 50; run++ {
		c := New(store, nil, nil)
		var last *contact.Contact

		for step := 0; step < 100; step++ {
			if rng.IntN(2) == 0 {
				ct := all[rng.IntN(len(all))]
				c.ContactSelected(ct)
				last = &ct
			} else {
				before, beforeOK := c.Selected()
				c.OrientationChanged(orientations[rng.IntN(len(orientations))])
				after, afterOK := c.Selected()
				require.Equal(t, beforeOK, afterOK, "orientation change altered selection")
				require.Equal(t, before, after, "orientation change altered selection")
			}

			sel, ok := c.Selected()
			if last != nil {
				require.True(t, ok)
				require.Equal(t, *last, sel)
			} else {
				require.False(t, ok)
			}

			mode := c.Mode()
			wantDetail := mode == layout.DualPane || (mode == layout.SinglePane && ok)
			wantList := mode == layout.DualPane || (mode == layout.SinglePane && !ok)
			require.Equal(t, wantDetail, c.ShowDetail())
			require.Equal(t, wantList, c.ShowList())

			matches := 0
			if mode == layout.SinglePane && !ok {
				matches++
				require.Equal(t, ListOnly, c.State())
			}
			if mode == layout.SinglePane && ok {
				matches++
				require.Equal(t, DetailOnly, c.State())
			}
			if mode == layout.DualPane {
				matches++
				require.Equal(t, Split, c.State())
			}
			require.Equal(t, 1, matches)
		}
	}
}

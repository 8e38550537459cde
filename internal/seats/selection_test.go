package seats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRowAvailability() *Availability {
	return NewAvailability(
		[]string{"A1", "A2", "A3", "B1", "B2", "B3", "C7", "C10"},
		[]string{"B2"},
	)
}

func TestToggleAddsAndRemoves(t *testing.T) {
	avail := fullRowAvailability()
	sel := NewSelection()

	sel.Toggle("A1", avail)
	assert.True(t, sel.Has("A1"))
	assert.Equal(t, 1, sel.Count())

	sel.Toggle("A1", avail)
	assert.False(t, sel.Has("A1"))
	assert.Equal(t, 0, sel.Count())
}

func TestToggleUnavailableSeatIsNoOp(t *testing.T) {
	avail := fullRowAvailability()
	sel := NewSelection()

	sel.Toggle("B2", avail)
	assert.False(t, sel.Has("B2"))
	assert.Equal(t, 0, sel.Count())

	sel.Toggle("Z99", avail)
	assert.Equal(t, 0, sel.Count())
}

func TestToggleRemovesEvenWhenSeatBecameUnavailable(t *testing.T) {
	avail := fullRowAvailability()
	sel := NewSelection()
	sel.Toggle("A2", avail)
	require.True(t, sel.Has("A2"))

	// The seat was booked by someone else after it was selected.
	refreshed := NewAvailability([]string{"A1", "A3"}, []string{"A2"})
	sel.Toggle("A2", refreshed)
	assert.False(t, sel.Has("A2"))
}

func TestNewSelectionFromDropsDuplicatesAndUnavailable(t *testing.T) {
	avail := fullRowAvailability()
	sel := NewSelectionFrom([]string{"A1", "A1", "B2", "A3"}, avail)

	assert.Equal(t, 2, sel.Count())
	assert.True(t, sel.Has("A1"))
	assert.True(t, sel.Has("A3"))
	assert.False(t, sel.Has("B2"))
}

func TestLabelsSortInHallOrder(t *testing.T) {
	avail := fullRowAvailability()
	sel := NewSelectionFrom([]string{"C10", "A2", "C7", "B1"}, avail)

	assert.Equal(t, []string{"A2", "B1", "C7", "C10"}, sel.Labels())
}

func TestClear(t *testing.T) {
	avail := fullRowAvailability()
	sel := NewSelectionFrom([]string{"A1", "B1"}, avail)
	require.Equal(t, 2, sel.Count())

	sel.Clear()
	assert.Equal(t, 0, sel.Count())
	assert.Empty(t, sel.Labels())
}

func TestAvailabilityIntersection(t *testing.T) {
	// A seat present in both sets is treated as taken.
	avail := NewAvailability([]string{"D4"}, []string{"D4"})

	assert.False(t, avail.IsAvailable("D4"))
	assert.True(t, avail.IsBooked("D4"))
	assert.True(t, avail.Known("D4"))
	assert.False(t, avail.Known("D5"))
}

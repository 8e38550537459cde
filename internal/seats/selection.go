package seats

import (
	"sort"
	"strconv"
)

// Selection is the set of seats a user has tentatively chosen for one
// showtime. Membership is duplicate-free and order-irrelevant; the lifetime
// is bound to the seat-selection page visit, so nothing here persists.
type Selection struct {
	chosen map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{chosen: make(map[string]struct{})}
}

// NewSelectionFrom builds a selection from labels, dropping duplicates and
// anything the availability snapshot rejects.
func NewSelectionFrom(labels []string, avail *Availability) *Selection {
	sel := NewSelection()
	for _, label := range labels {
		if avail.IsAvailable(label) {
			sel.chosen[label] = struct{}{}
		}
	}
	return sel
}

// Toggle removes the seat when already selected, otherwise adds it if the
// availability snapshot allows. Toggling an unavailable seat is a no-op, not
// an error: the UI reports it through disabled state only.
func (s *Selection) Toggle(seatLabel string, avail *Availability) {
	if _, ok := s.chosen[seatLabel]; ok {
		delete(s.chosen, seatLabel)
		return
	}
	if !avail.IsAvailable(seatLabel) {
		return
	}
	s.chosen[seatLabel] = struct{}{}
}

// Has reports membership.
func (s *Selection) Has(seatLabel string) bool {
	_, ok := s.chosen[seatLabel]
	return ok
}

// Clear empties the selection; used when the underlying showtime changes.
func (s *Selection) Clear() {
	s.chosen = make(map[string]struct{})
}

// Count returns the number of selected seats.
func (s *Selection) Count() int {
	return len(s.chosen)
}

// Labels returns the selected seat labels in hall order (row letter, then
// column number).
func (s *Selection) Labels() []string {
	labels := make([]string, 0, len(s.chosen))
	for label := range s.chosen {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ri, ci := splitSeatLabel(labels[i])
		rj, cj := splitSeatLabel(labels[j])
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return labels
}

// splitSeatLabel splits "C7" into row "C" and column 7. Labels that do not
// follow the row-letter + column-number shape sort by their raw string.
func splitSeatLabel(label string) (string, int) {
	i := 0
	for i < len(label) && (label[i] < '0' || label[i] > '9') {
		i++
	}
	col, err := strconv.Atoi(label[i:])
	if err != nil {
		return label, 0
	}
	return label[:i], col
}

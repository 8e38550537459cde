package seats

// Availability is a point-in-time snapshot of a showtime's seat sets. Both
// sets are authoritative: a seat is selectable only when it appears in the
// available set AND not in the booked set. The sets are intersected, never
// merged, so a seat that leaked into both is treated as taken.
type Availability struct {
	available map[string]struct{}
	booked    map[string]struct{}
}

// NewAvailability builds a snapshot from a showtime's seat label sets.
func NewAvailability(availableSeats, bookedSeats []string) *Availability {
	a := &Availability{
		available: make(map[string]struct{}, len(availableSeats)),
		booked:    make(map[string]struct{}, len(bookedSeats)),
	}
	for _, label := range availableSeats {
		a.available[label] = struct{}{}
	}
	for _, label := range bookedSeats {
		a.booked[label] = struct{}{}
	}
	return a
}

// IsAvailable reports whether the seat can be selected right now.
func (a *Availability) IsAvailable(seatLabel string) bool {
	if _, taken := a.booked[seatLabel]; taken {
		return false
	}
	_, open := a.available[seatLabel]
	return open
}

// IsBooked reports whether the seat is already taken.
func (a *Availability) IsBooked(seatLabel string) bool {
	_, taken := a.booked[seatLabel]
	return taken
}

// Known reports whether the seat label belongs to this showtime at all.
func (a *Availability) Known(seatLabel string) bool {
	if _, ok := a.available[seatLabel]; ok {
		return true
	}
	_, ok := a.booked[seatLabel]
	return ok
}

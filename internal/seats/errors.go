package seats

import "errors"

var (
	ErrNoSeatsSelected = errors.New("no seats selected")
	ErrDuplicateSeat   = errors.New("duplicate seat in selection")
	ErrSeatUnavailable = errors.New("seat is not available")
	ErrUnknownSeat     = errors.New("seat does not belong to this showtime")
)

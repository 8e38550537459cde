package bookings

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSeatsTaken means another user booked one or more of the requested
	// seats between selection and submission. The caller must surface this
	// as a distinct conflict and send the user back to seat selection; a
	// blind retry with the same draft can never succeed.
	ErrSeatsTaken = errors.New("seats no longer available")
)

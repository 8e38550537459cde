package showtimes

import "errors"

var ErrShowtimeNotFound = errors.New("showtime not found")

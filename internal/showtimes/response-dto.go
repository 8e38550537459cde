package showtimes

import "time"

// ShowtimeDetail is the read contract the booking flow consumes.
type ShowtimeDetail struct {
	ID             string    `json:"id"`
	MovieID        string    `json:"movie_id"`
	MovieTitle     string    `json:"movie_title,omitempty"`
	CinemaID       string    `json:"cinema_id"`
	CinemaName     string    `json:"cinema_name,omitempty"`
	HallID         string    `json:"hall_id"`
	HallName       string    `json:"hall_name,omitempty"`
	HallRows       int       `json:"hall_rows,omitempty"`
	HallColumns    int       `json:"hall_columns,omitempty"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Format         string    `json:"format"`
	Price          float64   `json:"price"`
	AvailableSeats []string  `json:"available_seats"`
	BookedSeats    []string  `json:"booked_seats"`
}

func toShowtimeDetail(s *Showtime) *ShowtimeDetail {
	detail := &ShowtimeDetail{
		ID:             s.ID.String(),
		MovieID:        s.MovieID.String(),
		CinemaID:       s.CinemaID.String(),
		HallID:         s.HallID.String(),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		Format:         s.Format,
		Price:          s.Price,
		AvailableSeats: s.AvailableSeatLabels(),
		BookedSeats:    s.BookedSeatLabels(),
	}

	if s.Movie != nil {
		detail.MovieTitle = s.Movie.Title
	}
	if s.Cinema != nil {
		detail.CinemaName = s.Cinema.Name
	}
	if s.Hall != nil {
		detail.HallName = s.Hall.Name
		detail.HallRows = s.Hall.Rows
		detail.HallColumns = s.Hall.Columns
	}

	return detail
}

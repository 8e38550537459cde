package seats

import (
	"fmt"

	"cinebook/internal/showtimes"
)

// SeatMapResponse is the rendering contract for the seat-selection page.
type SeatMapResponse struct {
	ShowtimeID string        `json:"showtime_id"`
	HallName   string        `json:"hall_name,omitempty"`
	Price      float64       `json:"price"`
	Rows       []SeatMapRow  `json:"rows"`
	Summary    SeatMapCounts `json:"summary"`
}

type SeatMapRow struct {
	Row   string        `json:"row"`
	Seats []SeatMapSeat `json:"seats"`
}

type SeatMapSeat struct {
	Label     string `json:"label"`
	Column    int    `json:"column"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
}

type SeatMapCounts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

// buildSeatMap lays the hall grid out row by row. Rows are lettered A, B,
// C... and columns are 1-based, matching the seat label format.
func buildSeatMap(detail *showtimes.ShowtimeDetail) *SeatMapResponse {
	avail := NewAvailability(detail.AvailableSeats, detail.BookedSeats)

	resp := &SeatMapResponse{
		ShowtimeID: detail.ID,
		HallName:   detail.HallName,
		Price:      detail.Price,
	}

	for r := 0; r < detail.HallRows; r++ {
		rowLabel := rowLetter(r)
		row := SeatMapRow{Row: rowLabel}
		for col := 1; col <= detail.HallColumns; col++ {
			label := fmt.Sprintf("%s%d", rowLabel, col)
			seat := SeatMapSeat{
				Label:     label,
				Column:    col,
				Available: avail.IsAvailable(label),
				Booked:    avail.IsBooked(label),
			}
			resp.Summary.Total++
			if seat.Available {
				resp.Summary.Available++
			}
			if seat.Booked {
				resp.Summary.Booked++
			}
			row.Seats = append(row.Seats, seat)
		}
		resp.Rows = append(resp.Rows, row)
	}

	return resp
}

// rowLetter maps 0 -> A, 25 -> Z, 26 -> AA.
func rowLetter(index int) string {
	letter := ""
	for index >= 0 {
		letter = string(rune('A'+index%26)) + letter
		index = index/26 - 1
	}
	return letter
}

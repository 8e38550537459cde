package seats

import (
	"testing"

	"cinebook/internal/showtimes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeatMap(t *testing.T) {
	detail := &showtimes.ShowtimeDetail{
		ID:             "5f1c2f6a-0000-0000-0000-000000000001",
		HallName:       "Hall 3",
		HallRows:       2,
		HallColumns:    3,
		Price:          300,
		AvailableSeats: []string{"A1", "A2", "B1", "B3"},
		BookedSeats:    []string{"A3", "B2"},
	}

	resp := buildSeatMap(detail)

	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "A", resp.Rows[0].Row)
	assert.Equal(t, "B", resp.Rows[1].Row)
	require.Len(t, resp.Rows[0].Seats, 3)

	a3 := resp.Rows[0].Seats[2]
	assert.Equal(t, "A3", a3.Label)
	assert.False(t, a3.Available)
	assert.True(t, a3.Booked)

	b1 := resp.Rows[1].Seats[0]
	assert.True(t, b1.Available)
	assert.False(t, b1.Booked)

	assert.Equal(t, 6, resp.Summary.Total)
	assert.Equal(t, 4, resp.Summary.Available)
	assert.Equal(t, 2, resp.Summary.Booked)
}

func TestRowLetter(t *testing.T) {
	assert.Equal(t, "A", rowLetter(0))
	assert.Equal(t, "Z", rowLetter(25))
	assert.Equal(t, "AA", rowLetter(26))
	assert.Equal(t, "AB", rowLetter(27))
}

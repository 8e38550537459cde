package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	assert.Equal(t, float64(0), Subtotal(300, 0))
	assert.Equal(t, float64(300), Subtotal(300, 1))
	assert.Equal(t, float64(900), Subtotal(300, 3))
	assert.InDelta(t, 749.97, Subtotal(249.99, 3), 0.001)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, float64(900), Total(900, 0))
	assert.Equal(t, float64(700), Total(900, 200))
	assert.Equal(t, float64(0), Total(900, 900))
}

func TestTotalClampsAtZero(t *testing.T) {
	assert.Equal(t, float64(0), Total(100, 250))
}

func TestThreeSeatsWithFixedDiscount(t *testing.T) {
	subtotal := Subtotal(90000, 3)
	assert.Equal(t, float64(270000), subtotal)
	assert.Equal(t, float64(250000), Total(subtotal, 20000))
}

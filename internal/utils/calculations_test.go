package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfitPercentage(t *testing.T) {
	assert.InDelta(t, 33.33, ProfitPercentage(100, 150), 0.01)
	assert.InDelta(t, 50, ProfitPercentage(100, 200), 0.001)

	// Nonsense input yields a neutral zero, never an error
	assert.Equal(t, 0.0, ProfitPercentage(0, 150))
	assert.Equal(t, 0.0, ProfitPercentage(100, 0))
	assert.Equal(t, 0.0, ProfitPercentage(-5, 150))
}

func TestSalePrice(t *testing.T) {
	assert.InDelta(t, 150.0, SalePrice(100, 33.3333), 0.01)
	assert.InDelta(t, 200.0, SalePrice(100, 50), 0.001)

	assert.Equal(t, 0.0, SalePrice(0, 50))
	assert.Equal(t, 0.0, SalePrice(100, 0))
	assert.Equal(t, 0.0, SalePrice(100, 100), "a 100% margin has no finite sale price")
	assert.Equal(t, 0.0, SalePrice(100, 150))
}

func TestProfitPercentageRoundTripsSalePrice(t *testing.T) {
	margin := ProfitPercentage(100, 150)
	assert.InDelta(t, 150.0, SalePrice(100, margin), 0.001)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCalculatorHandler()
	router.GET("/calculator/profit", h.ProfitPercentage)
	router.GET("/calculator/sale-price", h.SalePrice)
	return router
}

func TestProfitPercentageEndpoint(t *testing.T) {
	router := calculatorRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/calculator/profit?cost=100&sale=150", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ProfitPercent float64 `json:"profit_percent"`
		Profit        string  `json:"profit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 33.33, body.ProfitPercent, 0.01)
	assert.Equal(t, "R$ 50,00", body.Profit)
}

func TestProfitPercentageEndpointInvalidInput(t *testing.T) {
	router := calculatorRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/calculator/profit?cost=abc&sale=150", nil)
	router.ServeHTTP(w, req)

	// Invalid numbers come back as a neutral zero state, not an error
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ProfitPercent float64 `json:"profit_percent"`
		Profit        string  `json:"profit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0.0, body.ProfitPercent)
	assert.Equal(t, "R$ 0,00", body.Profit)
}

func TestSalePriceEndpoint(t *testing.T) {
	router := calculatorRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/calculator/sale-price?cost=100&margin=33.3333", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SalePrice float64 `json:"sale_price"`
		Formatted string  `json:"formatted"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 150.0, body.SalePrice, 0.01)
	assert.Equal(t, "R$ 150,00", body.Formatted)
}

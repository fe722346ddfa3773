package handlers

import (
	"net/http"
	"strconv"

	"github.com/gazinassis/opshub-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// CalculatorHandler handles margin calculator HTTP requests. Invalid numeric
// input is a neutral zero result, never an error.
type CalculatorHandler struct{}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// ProfitPercentage handles GET /calculator/profit?cost=100&sale=150
func (h *CalculatorHandler) ProfitPercentage(c *gin.Context) {
	cost := parseQueryFloat(c, "cost")
	sale := parseQueryFloat(c, "sale")

	percent := utils.ProfitPercentage(cost, sale)
	profit := 0.0
	if percent != 0 {
		profit = sale - cost
	}
	c.JSON(http.StatusOK, gin.H{
		"profit_percent": percent,
		"profit":         utils.FormatBRL(profit),
	})
}

// SalePrice handles GET /calculator/sale-price?cost=100&margin=33.33
func (h *CalculatorHandler) SalePrice(c *gin.Context) {
	cost := parseQueryFloat(c, "cost")
	margin := parseQueryFloat(c, "margin")

	price := utils.SalePrice(cost, margin)
	c.JSON(http.StatusOK, gin.H{
		"sale_price": price,
		"formatted":  utils.FormatBRL(price),
	})
}

func parseQueryFloat(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return v
}

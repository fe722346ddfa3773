package utils

// ProfitPercentage returns the profit as a percentage of the sale price.
// Non-positive input yields 0, never an error: the calculator shows a
// neutral zero state for nonsense input.
func ProfitPercentage(costPrice, salePrice float64) float64 {
	if costPrice <= 0 || salePrice <= 0 {
		return 0
	}
	return (salePrice - costPrice) / salePrice * 100
}

// SalePrice returns the sale price needed to hit a target margin percentage
// over the cost price. Margins outside (0, 100) yield 0.
func SalePrice(costPrice, marginPercent float64) float64 {
	if costPrice <= 0 || marginPercent <= 0 || marginPercent >= 100 {
		return 0
	}
	return costPrice / (1 - marginPercent/100)
}

package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a value with Brazilian currency conventions,
// e.g. 1234.56 becomes "R$ 1.234,56".
func FormatBRL(v float64) string {
	return brPrinter.Sprintf("R$ %v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

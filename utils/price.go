package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount as a USD string (e.g. "$ 24.99") for the
// dashboard order list.
func FormatPrice(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return pricePrinter.Sprint(currency.Symbol(currency.USD.Amount(f)))
}

package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Money formats an amount with two decimals and thousands separators.
func Money(amount decimal.Decimal, symbol string) string {
	ac := accounting.Accounting{Symbol: symbol, Precision: 2, Thousand: ",", Decimal: "."}
	return ac.FormatMoneyDecimal(amount)
}

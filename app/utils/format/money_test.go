package format_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/shopspring/decimal"

	"github.com/Rakhulsr/go-catalog/app/utils/format"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		amount string
		symbol string
		want   string
	}{
		{amount: "1234.5", symbol: "$", want: "$1,234.50"},
		{amount: "999.99", symbol: "€", want: "€999.99"},
		{amount: "0", symbol: "€", want: "€0.00"},
		{amount: "1299990", symbol: "€", want: "€1,299,990.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(format.Money(decimal.RequireFromString(tt.amount), tt.symbol), qt.Equals, tt.want)
		})
	}
}

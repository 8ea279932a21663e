package calc

import "github.com/shopspring/decimal"

func StockValue(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// RestockGap is how many units bring quantity back above the threshold.
func RestockGap(quantity, minThreshold int) int {
	if quantity > minThreshold {
		return 0
	}
	return minThreshold - quantity + 1
}

// Package renderer turns the valued portfolio views into markdown
// documents ready for terminal display.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// cash formats an amount in the reporting currency, with the symbol and
// fraction digits the currency defines. Unknown currency codes fall
// back to a bare two-digit figure.
func cash(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2)
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return money.New(amount.Mul(factor).IntPart(), currency).Display()
}

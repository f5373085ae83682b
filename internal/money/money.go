// Package money renders decimal amounts for display. Internal arithmetic
// stays at full precision; these helpers round only for output.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USD formats a dollar amount as "$1,234.56".
func USD(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2).IntPart()
	return gomoney.New(cents, gomoney.USD).Display()
}

// SignedUSD formats a gain or loss with an explicit sign, "+$12.34" or
// "-$12.34".
func SignedUSD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + USD(d.Neg())
	}
	return "+" + USD(d)
}

// Percent formats a percentage to two places with a trailing "%".
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// SignedPercent formats a percentage with an explicit sign.
func SignedPercent(d decimal.Decimal) string {
	if d.IsNegative() {
		return Percent(d)
	}
	return "+" + Percent(d)
}

// Shares formats a fractional share quantity to six places.
func Shares(d decimal.Decimal) string {
	return d.StringFixed(6)
}

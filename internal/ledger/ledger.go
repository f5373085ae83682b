// Package ledger tracks fractional share holdings and prices them
// against the catalog. All arithmetic uses decimals at full precision;
// rounding happens only when values are rendered.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrBelowMinimum is returned when a buy is under the $1.00 minimum.
	ErrBelowMinimum = errors.New("minimum investment is $1.00")
	// ErrInvalidPrice is returned when the execution price is not positive.
	ErrInvalidPrice = errors.New("execution price must be positive")
)

// MinInvestment is the smallest dollar amount accepted for a buy.
var MinInvestment = decimal.NewFromInt(1)

// Holding is an accumulated position in one instrument: fractional shares
// plus the cumulative dollars paid for them. Shares never decrease; there
// is no sell path.
type Holding struct {
	Symbol     string
	Shares     decimal.Decimal
	Invested   decimal.Decimal
	AcquiredAt time.Time
}

// Ledger is an acquisition-ordered collection of holdings, at most one
// per symbol. The zero value is an empty ledger. Methods return a new
// Ledger rather than mutating in place.
type Ledger struct {
	holdings []Holding
}

// FromHoldings builds a ledger from an authoritative holdings list, for
// example the portfolio returned by the server after login or a buy.
// Input order is preserved; duplicate symbols are merged into the first.
func FromHoldings(holdings []Holding) Ledger {
	merged := make([]Holding, 0, len(holdings))
	index := make(map[string]int, len(holdings))
	for _, h := range holdings {
		if i, ok := index[h.Symbol]; ok {
			merged[i].Shares = merged[i].Shares.Add(h.Shares)
			merged[i].Invested = merged[i].Invested.Add(h.Invested)
			continue
		}
		index[h.Symbol] = len(merged)
		merged = append(merged, h)
	}
	return Ledger{holdings: merged}
}

// Holdings returns the holdings in acquisition order.
func (l Ledger) Holdings() []Holding {
	out := make([]Holding, len(l.holdings))
	copy(out, l.holdings)
	return out
}

// Holding returns the position for a symbol, if any.
func (l Ledger) Holding(symbol string) (Holding, bool) {
	for _, h := range l.holdings {
		if h.Symbol == symbol {
			return h, true
		}
	}
	return Holding{}, false
}

// Len returns the number of holdings.
func (l Ledger) Len() int { return len(l.holdings) }

// IsEmpty reports whether the ledger has no holdings.
func (l Ledger) IsEmpty() bool { return len(l.holdings) == 0 }

// SharesFor computes the fractional shares a dollar amount buys at the
// given price. Advisory only: the ledger of record comes from the
// execution service, never from this preview.
func SharesFor(amount, price decimal.Decimal) decimal.Decimal {
	if !price.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(price)
}

// ApplyBuy records a buy of dollar amount at the given execution price,
// returning the updated ledger and the resulting holding. An existing
// holding for the symbol is accumulated; otherwise a new holding is
// appended, so acquisition order is stable across repeat buys.
func (l Ledger) ApplyBuy(symbol string, amount, price decimal.Decimal, at time.Time) (Ledger, Holding, error) {
	if amount.LessThan(MinInvestment) {
		return l, Holding{}, ErrBelowMinimum
	}
	if !price.IsPositive() {
		return l, Holding{}, ErrInvalidPrice
	}

	shares := amount.Div(price)

	next := make([]Holding, len(l.holdings))
	copy(next, l.holdings)

	for i, h := range next {
		if h.Symbol != symbol {
			continue
		}
		next[i].Shares = h.Shares.Add(shares)
		next[i].Invested = h.Invested.Add(amount)
		return Ledger{holdings: next}, next[i], nil
	}

	h := Holding{
		Symbol:     symbol,
		Shares:     shares,
		Invested:   amount,
		AcquiredAt: at,
	}
	next = append(next, h)
	return Ledger{holdings: next}, h, nil
}

// TotalInvested sums the cost basis across all holdings.
func (l Ledger) TotalInvested() decimal.Decimal {
	total := decimal.Zero
	for _, h := range l.holdings {
		total = total.Add(h.Invested)
	}
	return total
}

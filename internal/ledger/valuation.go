package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sixex/sixex/internal/catalog"
)

// Line is one holding priced against the catalog. A holding whose symbol
// no longer resolves is marked Stale: it stays in the list but contributes
// nothing to the totals, and its price fields are zero.
type Line struct {
	Holding
	Name          string
	CurrentPrice  decimal.Decimal
	CurrentValue  decimal.Decimal
	Gain          decimal.Decimal
	GainPercent   decimal.Decimal
	ChangePercent decimal.Decimal
	Stale         bool
}

// Summary is a full portfolio valuation.
type Summary struct {
	Lines            []Line
	TotalInvested    decimal.Decimal
	TotalValue       decimal.Decimal
	TotalGain        decimal.Decimal
	TotalGainPercent decimal.Decimal
	StaleCount       int
}

// Valuate prices every holding against a single catalog snapshot,
// captured once up front so a concurrent refresh cannot price part of
// the portfolio against one generation and the rest against another.
// Totals cover priceable holdings only; TotalGainPercent is zero when
// nothing priceable has been invested.
func (l Ledger) Valuate(c *catalog.Catalog) Summary {
	snap := c.Snapshot()

	s := Summary{
		Lines:            make([]Line, 0, len(l.holdings)),
		TotalInvested:    decimal.Zero,
		TotalValue:       decimal.Zero,
		TotalGain:        decimal.Zero,
		TotalGainPercent: decimal.Zero,
	}

	hundred := decimal.NewFromInt(100)

	for _, h := range l.holdings {
		inst, ok := snap.Get(h.Symbol)
		if !ok {
			s.Lines = append(s.Lines, Line{Holding: h, Stale: true})
			s.StaleCount++
			continue
		}

		value := h.Shares.Mul(inst.Price)
		gain := value.Sub(h.Invested)

		line := Line{
			Holding:       h,
			Name:          inst.Name,
			CurrentPrice:  inst.Price,
			CurrentValue:  value,
			Gain:          gain,
			ChangePercent: inst.ChangePercent,
		}
		// Invested is positive for any holding created through a buy,
		// but a zero basis must not divide.
		if h.Invested.IsPositive() {
			line.GainPercent = gain.Div(h.Invested).Mul(hundred)
		}
		s.Lines = append(s.Lines, line)

		s.TotalInvested = s.TotalInvested.Add(h.Invested)
		s.TotalValue = s.TotalValue.Add(value)
		s.TotalGain = s.TotalGain.Add(gain)
	}

	if s.TotalInvested.IsPositive() {
		s.TotalGainPercent = s.TotalGain.Div(s.TotalInvested).Mul(hundred)
	}
	return s
}

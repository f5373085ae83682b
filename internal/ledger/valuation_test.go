package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixex/sixex/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.New([]catalog.Instrument{
		{Symbol: "TSLA", Name: "Tesla, Inc.", Price: d(t, "200"), ChangePercent: d(t, "-1.25")},
		{Symbol: "AAPL", Name: "Apple Inc.", Price: d(t, "175"), ChangePercent: d(t, "0.80")},
	})
}

func TestValuate_WorkedExample(t *testing.T) {
	// $100 at $250 then $50 at $200 leaves 0.65 shares with a $150 basis.
	// At $200 the position is worth $130, a $20 loss.
	l := FromHoldings([]Holding{
		{Symbol: "TSLA", Shares: d(t, "0.65"), Invested: d(t, "150")},
	})

	s := l.Valuate(testCatalog(t))
	require.Len(t, s.Lines, 1)

	line := s.Lines[0]
	assert.False(t, line.Stale)
	assert.Equal(t, "Tesla, Inc.", line.Name)
	assert.True(t, line.CurrentValue.Equal(d(t, "130")), "got %s", line.CurrentValue)
	assert.True(t, line.Gain.Equal(d(t, "-20")))
	assert.True(t, s.TotalValue.Equal(d(t, "130")))
	assert.True(t, s.TotalGain.Equal(d(t, "-20")))
	// -20 / 150 * 100
	assert.True(t, s.TotalGainPercent.Round(4).Equal(d(t, "-13.3333")), "got %s", s.TotalGainPercent)
}

func TestValuate_StaleHoldingExcludedFromTotals(t *testing.T) {
	l := FromHoldings([]Holding{
		{Symbol: "TSLA", Shares: d(t, "0.5"), Invested: d(t, "100")},
		{Symbol: "DLSTD", Shares: d(t, "2"), Invested: d(t, "40")},
	})

	s := l.Valuate(testCatalog(t))
	require.Len(t, s.Lines, 2)

	assert.False(t, s.Lines[0].Stale)
	assert.True(t, s.Lines[1].Stale)
	assert.Equal(t, 1, s.StaleCount)

	// Totals count only the priceable holding.
	assert.True(t, s.TotalInvested.Equal(d(t, "100")))
	assert.True(t, s.TotalValue.Equal(d(t, "100")))
	assert.True(t, s.TotalGain.IsZero())
}

func TestValuate_StaleHoldingRetained(t *testing.T) {
	l := FromHoldings([]Holding{
		{Symbol: "DLSTD", Shares: d(t, "2"), Invested: d(t, "40")},
	})

	s := l.Valuate(testCatalog(t))
	require.Len(t, s.Lines, 1)
	assert.True(t, s.Lines[0].Stale)
	assert.True(t, s.Lines[0].Shares.Equal(d(t, "2")))
	assert.True(t, s.Lines[0].Invested.Equal(d(t, "40")))
	assert.True(t, s.Lines[0].CurrentPrice.IsZero())
	assert.True(t, s.TotalInvested.IsZero())
	assert.True(t, s.TotalGainPercent.IsZero())
}

func TestValuate_PriceMoveChangesValueNotBasis(t *testing.T) {
	l := FromHoldings([]Holding{
		{Symbol: "TSLA", Shares: d(t, "0.5"), Invested: d(t, "100")},
	})

	before := l.Valuate(testCatalog(t))

	c := catalog.New([]catalog.Instrument{
		{Symbol: "TSLA", Name: "Tesla, Inc.", Price: d(t, "240")},
	})
	after := l.Valuate(c)

	assert.True(t, before.TotalInvested.Equal(after.TotalInvested))
	assert.True(t, before.TotalValue.Equal(d(t, "100")))
	assert.True(t, after.TotalValue.Equal(d(t, "120")))
	assert.True(t, after.TotalGain.Equal(d(t, "20")))
}

func TestValuate_SingleGenerationUnderConcurrentReplace(t *testing.T) {
	l := FromHoldings([]Holding{
		{Symbol: "TSLA", Shares: d(t, "1"), Invested: d(t, "10")},
		{Symbol: "AAPL", Shares: d(t, "1"), Invested: d(t, "10")},
	})

	generation := func(price string) []catalog.Instrument {
		return []catalog.Instrument{
			{Symbol: "TSLA", Name: "Tesla Inc.", Price: d(t, price)},
			{Symbol: "AAPL", Name: "Apple Inc.", Price: d(t, price)},
		}
	}
	c := catalog.New(generation("10"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				c.Replace(generation("20"))
			} else {
				c.Replace(generation("10"))
			}
		}
	}()

	// Every valuation must price all holdings against one catalog
	// generation: never $10 for one line and $20 for the other.
	for i := 0; i < 500; i++ {
		s := l.Valuate(c)
		require.Len(t, s.Lines, 2)
		assert.True(t, s.Lines[0].CurrentPrice.Equal(s.Lines[1].CurrentPrice),
			"mixed generations: %s vs %s", s.Lines[0].CurrentPrice, s.Lines[1].CurrentPrice)
	}
	<-done
}

func TestValuate_Empty(t *testing.T) {
	s := Ledger{}.Valuate(testCatalog(t))
	assert.Empty(t, s.Lines)
	assert.True(t, s.TotalInvested.IsZero())
	assert.True(t, s.TotalValue.IsZero())
	assert.True(t, s.TotalGainPercent.IsZero())
}

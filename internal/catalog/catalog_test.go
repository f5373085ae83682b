package catalog

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExactSymbolMatch(t *testing.T) {
	c := New([]Instrument{
		{Symbol: "BRK.B", Name: "Berkshire Hathaway Inc.", Price: decimal.NewFromInt(410)},
	})

	inst, ok := c.Get("BRK.B")
	require.True(t, ok)
	assert.Equal(t, "Berkshire Hathaway Inc.", inst.Name)

	_, ok = c.Get("brk.b")
	assert.False(t, ok)
	_, ok = c.Get("BRK")
	assert.False(t, ok)
}

func TestAll_PreservesOrder(t *testing.T) {
	c := New([]Instrument{
		{Symbol: "TSLA"},
		{Symbol: "AAPL"},
		{Symbol: "NVDA"},
	})

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "TSLA", all[0].Symbol)
	assert.Equal(t, "AAPL", all[1].Symbol)
	assert.Equal(t, "NVDA", all[2].Symbol)
}

func TestNew_DropsDuplicateSymbols(t *testing.T) {
	c := New([]Instrument{
		{Symbol: "TSLA", Price: decimal.NewFromInt(250)},
		{Symbol: "TSLA", Price: decimal.NewFromInt(999)},
	})

	assert.Equal(t, 1, c.Len())
	inst, _ := c.Get("TSLA")
	assert.True(t, inst.Price.Equal(decimal.NewFromInt(250)))
}

func TestReplace_SwapsWholeSnapshot(t *testing.T) {
	c := New([]Instrument{
		{Symbol: "TSLA", Price: decimal.NewFromInt(250)},
		{Symbol: "AAPL", Price: decimal.NewFromInt(175)},
	})

	c.Replace([]Instrument{
		{Symbol: "TSLA", Price: decimal.NewFromInt(260)},
	})

	assert.Equal(t, 1, c.Len())
	inst, ok := c.Get("TSLA")
	require.True(t, ok)
	assert.True(t, inst.Price.Equal(decimal.NewFromInt(260)))

	_, ok = c.Get("AAPL")
	assert.False(t, ok)
}

func TestSnapshot_UnaffectedByReplace(t *testing.T) {
	c := New([]Instrument{
		{Symbol: "TSLA", Price: decimal.NewFromInt(250)},
	})

	snap := c.Snapshot()
	c.Replace([]Instrument{
		{Symbol: "TSLA", Price: decimal.NewFromInt(999)},
		{Symbol: "AAPL", Price: decimal.NewFromInt(175)},
	})

	inst, ok := snap.Get("TSLA")
	require.True(t, ok)
	assert.True(t, inst.Price.Equal(decimal.NewFromInt(250)))
	_, ok = snap.Get("AAPL")
	assert.False(t, ok)
	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, 2, c.Len())
}

func TestReplace_ConcurrentReaders(t *testing.T) {
	c := Builtin()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				all := c.All()
				// Every read sees one consistent generation.
				assert.Equal(t, len(all), c.Len())
				_, _ = c.Get("TSLA")
			}
		}()
	}
	for i := 0; i < 200; i++ {
		c.Replace(Builtin().All())
	}
	wg.Wait()
}

func TestBuiltin(t *testing.T) {
	c := Builtin()
	assert.Equal(t, 10, c.Len())

	inst, ok := c.Get("TSLA")
	require.True(t, ok)
	assert.Equal(t, "Tesla Inc.", inst.Name)
	assert.True(t, inst.Price.IsPositive())
	assert.NotEmpty(t, inst.Description)

	_, ok = c.Get("BRK.B")
	assert.True(t, ok)
}

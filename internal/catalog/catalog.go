// Package catalog holds the equity catalog: a snapshot of instruments
// keyed by symbol, replaced wholesale on refresh.
package catalog

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Instrument describes one listed equity. Instruments are immutable;
// a refresh replaces the whole catalog rather than mutating entries.
type Instrument struct {
	Symbol        string
	Name          string
	Price         decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
	Logo          string
	Description   string
}

// snapshot is one consistent generation of the catalog.
type snapshot struct {
	order    []string
	bySymbol map[string]Instrument
}

func newSnapshot(instruments []Instrument) *snapshot {
	s := &snapshot{
		order:    make([]string, 0, len(instruments)),
		bySymbol: make(map[string]Instrument, len(instruments)),
	}
	for _, inst := range instruments {
		if _, dup := s.bySymbol[inst.Symbol]; dup {
			continue
		}
		s.order = append(s.order, inst.Symbol)
		s.bySymbol[inst.Symbol] = inst
	}
	return s
}

// Catalog is a refreshable set of instruments. Readers always observe a
// single consistent snapshot; Replace swaps the snapshot atomically.
type Catalog struct {
	mu   sync.RWMutex
	snap *snapshot
}

// New creates a catalog from the given instruments, preserving their order.
// Duplicate symbols keep the first occurrence.
func New(instruments []Instrument) *Catalog {
	return &Catalog{snap: newSnapshot(instruments)}
}

// Snapshot is one immutable generation of the catalog. A caller that
// needs several lookups against the same generation, such as a
// portfolio valuation, captures one Snapshot and reads only through it.
type Snapshot struct {
	snap *snapshot
}

// Snapshot returns the current generation. Reads through the returned
// value are unaffected by later Replace calls.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	return Snapshot{snap: snap}
}

// Get looks up an instrument by exact symbol. Symbols are case-sensitive:
// "BRK.B" is a single symbol, not a base plus suffix.
func (s Snapshot) Get(symbol string) (Instrument, bool) {
	inst, ok := s.snap.bySymbol[symbol]
	return inst, ok
}

// All returns every instrument in catalog order.
func (s Snapshot) All() []Instrument {
	out := make([]Instrument, 0, len(s.snap.order))
	for _, sym := range s.snap.order {
		out = append(out, s.snap.bySymbol[sym])
	}
	return out
}

// Len returns the number of instruments in the snapshot.
func (s Snapshot) Len() int { return len(s.snap.order) }

// Get looks up an instrument in the current snapshot.
func (c *Catalog) Get(symbol string) (Instrument, bool) {
	return c.Snapshot().Get(symbol)
}

// All returns every instrument in the current snapshot.
func (c *Catalog) All() []Instrument {
	return c.Snapshot().All()
}

// Len returns the number of instruments in the current snapshot.
func (c *Catalog) Len() int {
	return c.Snapshot().Len()
}

// Replace installs a new set of instruments as one atomic swap.
// In-progress reads keep the snapshot they started with.
func (c *Catalog) Replace(instruments []Instrument) {
	snap := newSnapshot(instruments)
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

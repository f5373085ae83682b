package tui

import (
	"time"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/catalog"
)

// Message types for async operations. Messages produced by
// session-scoped calls carry the epoch the call started under so stale
// results can be discarded after logout.

// AuthSuccessMsg is sent when login or register succeeds.
type AuthSuccessMsg struct {
	Resp *api.AuthResponse
}

// AuthErrorMsg is sent when login or register fails.
type AuthErrorMsg struct {
	Err error
}

// StocksLoadedMsg is sent when the price feed refresh succeeds.
type StocksLoadedMsg struct {
	Instruments []catalog.Instrument
}

// StocksErrorMsg is sent when the price feed refresh fails.
type StocksErrorMsg struct {
	Err error
}

// BuyPlacedMsg is sent when the execution service records a buy.
type BuyPlacedMsg struct {
	Epoch int
	Resp  *api.BuyResponse
}

// BuyErrorMsg is sent when a buy is rejected or fails.
type BuyErrorMsg struct {
	Epoch int
	Err   error
}

// TickMsg is sent periodically for price auto-refresh.
type TickMsg time.Time

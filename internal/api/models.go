package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sixex/sixex/internal/ledger"
)

// AuthRequest is the login/register request body.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the authenticated user profile.
type User struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	CreatedAt string           `json:"created_at"`
	Portfolio []PortfolioEntry `json:"portfolio"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// PortfolioEntry is one holding as the server records it.
type PortfolioEntry struct {
	StockSymbol    string          `json:"stock_symbol"`
	Shares         decimal.Decimal `json:"shares"`
	InvestedAmount decimal.Decimal `json:"invested_amount"`
	InvestedAt     string          `json:"invested_at"`
}

// Holding converts a wire entry into a ledger holding.
func (e PortfolioEntry) Holding() ledger.Holding {
	return ledger.Holding{
		Symbol:     e.StockSymbol,
		Shares:     e.Shares,
		Invested:   e.InvestedAmount,
		AcquiredAt: ParseTimestamp(e.InvestedAt),
	}
}

// Holdings converts a server portfolio into ledger holdings, preserving
// order.
func Holdings(entries []PortfolioEntry) []ledger.Holding {
	out := make([]ledger.Holding, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Holding())
	}
	return out
}

// Stock is one catalog entry as served by the price feed.
type Stock struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// StocksResponse is the full catalog feed.
type StocksResponse struct {
	Stocks map[string]Stock `json:"stocks"`
}

// StockResponse is a single catalog entry.
type StockResponse struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// BuyRequest is the investment execution request. OrderID is generated
// client-side so a retried submit is recognizable server-side.
type BuyRequest struct {
	StockSymbol string          `json:"stock_symbol"`
	Amount      decimal.Decimal `json:"amount"`
	OrderID     string          `json:"order_id,omitempty"`
}

// BuyResponse is returned by a successful buy. Portfolio is the complete
// authoritative holdings list, which replaces the local ledger wholesale.
type BuyResponse struct {
	Message         string           `json:"message"`
	SharesPurchased decimal.Decimal  `json:"shares_purchased"`
	Portfolio       []PortfolioEntry `json:"portfolio"`
}

// InvestmentRow is one server-valued holding from GET /api/investments.
type InvestmentRow struct {
	ID              string          `json:"id"`
	StockSymbol     string          `json:"stock_symbol"`
	StockName       string          `json:"stock_name"`
	Shares          decimal.Decimal `json:"shares"`
	InvestedAmount  decimal.Decimal `json:"invested_amount"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	GainLoss        decimal.Decimal `json:"gain_loss"`
	GainLossPercent decimal.Decimal `json:"gain_loss_percent"`
	InvestedAt      string          `json:"invested_at"`
}

// InvestmentsResponse wraps the server-valued holdings list.
type InvestmentsResponse struct {
	Investments []InvestmentRow `json:"investments"`
}

// SummaryResponse is the server-computed portfolio summary.
type SummaryResponse struct {
	TotalInvested        decimal.Decimal `json:"total_invested"`
	TotalCurrentValue    decimal.Decimal `json:"total_current_value"`
	TotalGainLoss        decimal.Decimal `json:"total_gain_loss"`
	TotalGainLossPercent decimal.Decimal `json:"total_gain_loss_percent"`
	HoldingsCount        int             `json:"holdings_count"`
}

// HealthResponse is the service health check.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// timestampLayouts covers the formats the backend emits: RFC3339 and
// naive ISO timestamps without a zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses a server timestamp, returning the zero time when
// no layout matches.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

package api

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/sixex/sixex/internal/catalog"
)

// Stocks fetches the full price feed. No authentication required.
func (c *Client) Stocks(ctx context.Context) (*StocksResponse, error) {
	resp, err := c.Get(ctx, "/api/stocks")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stocks: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var stocksResp StocksResponse
	if err := DecodeJSON(resp, &stocksResp); err != nil {
		return nil, err
	}
	return &stocksResp, nil
}

// Stock fetches a single catalog entry by symbol.
func (c *Client) Stock(ctx context.Context, symbol string) (*StockResponse, error) {
	resp, err := c.Get(ctx, "/api/stocks/"+url.PathEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var stockResp StockResponse
	if err := DecodeJSON(resp, &stockResp); err != nil {
		return nil, err
	}
	return &stockResp, nil
}

// Instruments converts the feed into catalog instruments in stable
// symbol order. Metadata absent from the feed (logo, description) is
// carried over from the current catalog when the symbol is known.
func (r *StocksResponse) Instruments(current *catalog.Catalog) []catalog.Instrument {
	symbols := make([]string, 0, len(r.Stocks))
	for sym := range r.Stocks {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	out := make([]catalog.Instrument, 0, len(symbols))
	for _, sym := range symbols {
		s := r.Stocks[sym]
		inst := catalog.Instrument{
			Symbol:        sym,
			Name:          s.Name,
			Price:         s.Price,
			Change:        s.Change,
			ChangePercent: s.ChangePercent,
		}
		if current != nil {
			if prev, ok := current.Get(sym); ok {
				inst.Logo = prev.Logo
				inst.Description = prev.Description
			}
		}
		out = append(out, inst)
	}
	return out
}

// Health fetches the service health check.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.Get(ctx, "/api/health")
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := DecodeJSON(resp, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

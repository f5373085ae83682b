package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Buy submits a fractional buy of amount dollars of symbol. The server
// executes at its current price and returns the complete updated
// portfolio, which is authoritative.
func (c *Client) Buy(ctx context.Context, symbol string, amount decimal.Decimal) (*BuyResponse, error) {
	req := BuyRequest{
		StockSymbol: symbol,
		Amount:      amount,
		OrderID:     uuid.New().String(),
	}

	resp, err := c.Post(ctx, "/api/investments/buy", req)
	if err != nil {
		return nil, fmt.Errorf("buy request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var buyResp BuyResponse
	if err := DecodeJSON(resp, &buyResp); err != nil {
		return nil, err
	}
	return &buyResp, nil
}

// Investments fetches the server-valued holdings list.
func (c *Client) Investments(ctx context.Context) (*InvestmentsResponse, error) {
	resp, err := c.Get(ctx, "/api/investments")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch investments: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var invResp InvestmentsResponse
	if err := DecodeJSON(resp, &invResp); err != nil {
		return nil, err
	}
	return &invResp, nil
}

// Summary fetches the server-computed portfolio totals.
func (c *Client) Summary(ctx context.Context) (*SummaryResponse, error) {
	resp, err := c.Get(ctx, "/api/portfolio/summary")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summary: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var sumResp SummaryResponse
	if err := DecodeJSON(resp, &sumResp); err != nil {
		return nil, err
	}
	return &sumResp, nil
}

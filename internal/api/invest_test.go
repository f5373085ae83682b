package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuy_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/investments/buy", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		var req BuyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "TSLA", req.StockSymbol)
		assert.True(t, req.Amount.Equal(decimal.NewFromInt(100)))

		// Each submit carries a fresh client-generated order id.
		_, err := uuid.Parse(req.OrderID)
		assert.NoError(t, err)

		resp := map[string]any{
			"message":          "Successfully invested $100.00 in TSLA",
			"shares_purchased": "0.4",
			"portfolio": []map[string]any{
				{
					"stock_symbol":    "TSLA",
					"shares":          "0.4",
					"invested_amount": "100",
					"invested_at":     "2025-03-01T12:00:00",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-abc")
	resp, err := client.Buy(context.Background(), "TSLA", decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, resp.SharesPurchased.Equal(decimal.RequireFromString("0.4")))
	require.Len(t, resp.Portfolio, 1)

	holdings := Holdings(resp.Portfolio)
	require.Len(t, holdings, 1)
	assert.Equal(t, "TSLA", holdings[0].Symbol)
	assert.True(t, holdings[0].Invested.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 2025, holdings[0].AcquiredAt.Year())
}

func TestBuy_BelowMinimumRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Minimum investment is $1.00"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-abc")
	_, err := client.Buy(context.Background(), "TSLA", decimal.RequireFromString("0.50"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Minimum investment is $1.00")
}

func TestBuy_ExpiredSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "stale")
	_, err := client.Buy(context.Background(), "TSLA", decimal.NewFromInt(100))
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
}

func TestInvestments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/investments", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"investments": [
				{
					"id": "inv-1",
					"stock_symbol": "TSLA",
					"stock_name": "Tesla Inc.",
					"shares": "0.4",
					"invested_amount": "100",
					"current_price": "260",
					"current_value": "104",
					"gain_loss": "4",
					"gain_loss_percent": "4",
					"invested_at": "2025-03-01T12:00:00"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-abc")
	resp, err := client.Investments(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Investments, 1)

	row := resp.Investments[0]
	assert.Equal(t, "TSLA", row.StockSymbol)
	assert.True(t, row.CurrentValue.Equal(decimal.NewFromInt(104)))
	assert.True(t, row.GainLoss.Equal(decimal.NewFromInt(4)))
}

func TestSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolio/summary", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_invested": "150",
			"total_current_value": "130",
			"total_gain_loss": "-20",
			"total_gain_loss_percent": "-13.33",
			"holdings_count": 1
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-abc")
	summary, err := client.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.HoldingsCount)
	assert.True(t, summary.TotalGainLoss.IsNegative())
}

func TestParseTimestamp(t *testing.T) {
	// FastAPI emits naive ISO timestamps; RFC3339 must also parse.
	ts := ParseTimestamp("2025-03-01T12:00:00.123456")
	assert.Equal(t, 2025, ts.Year())

	ts = ParseTimestamp("2025-03-01T12:00:00Z")
	assert.Equal(t, 12, ts.Hour())

	assert.True(t, ParseTimestamp("not a timestamp").IsZero())
	assert.True(t, ParseTimestamp("").IsZero())
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixex/sixex/internal/catalog"
)

func TestStocks_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stocks", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"stocks": {
				"TSLA": {"name": "Tesla Inc.", "price": 251.10, "change": 2.15, "changePercent": 0.86},
				"AAPL": {"name": "Apple Inc.", "price": 175.50, "change": -0.25, "changePercent": -0.14}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	resp, err := client.Stocks(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Stocks, 2)
	assert.True(t, resp.Stocks["TSLA"].Price.Equal(decimal.RequireFromString("251.10")))
}

func TestStocks_InstrumentsCarryOverMetadata(t *testing.T) {
	resp := &StocksResponse{Stocks: map[string]Stock{
		"TSLA": {Name: "Tesla Inc.", Price: decimal.RequireFromString("251.10")},
		"AAPL": {Name: "Apple Inc.", Price: decimal.RequireFromString("175.50")},
	}}

	current := catalog.New([]catalog.Instrument{
		{Symbol: "TSLA", Logo: "⚡", Description: "Electric vehicles."},
	})

	instruments := resp.Instruments(current)
	require.Len(t, instruments, 2)
	// Sorted by symbol for a stable catalog order.
	assert.Equal(t, "AAPL", instruments[0].Symbol)
	assert.Equal(t, "TSLA", instruments[1].Symbol)
	assert.Equal(t, "⚡", instruments[1].Logo)
	assert.Equal(t, "Electric vehicles.", instruments[1].Description)
	assert.Empty(t, instruments[0].Logo)
}

func TestStocks_InstrumentsNilCatalog(t *testing.T) {
	resp := &StocksResponse{Stocks: map[string]Stock{
		"TSLA": {Name: "Tesla Inc.", Price: decimal.RequireFromString("251.10")},
	}}
	instruments := resp.Instruments(nil)
	require.Len(t, instruments, 1)
	assert.Equal(t, "TSLA", instruments[0].Symbol)
}

func TestStock_EscapesSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stocks/BRK.B", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol": "BRK.B", "name": "Berkshire Hathaway Inc.", "price": 459.23, "change": 2.45, "changePercent": 0.54}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	stock, err := client.Stock(context.Background(), "BRK.B")
	require.NoError(t, err)
	assert.Equal(t, "Berkshire Hathaway Inc.", stock.Name)
}

func TestStock_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Stock not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Stock(context.Background(), "NOPE")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "healthy", "database": "connected", "timestamp": "2025-03-01T12:00:00"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "connected", health.Database)
}

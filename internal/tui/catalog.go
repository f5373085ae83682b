package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/catalog"
	"github.com/sixex/sixex/internal/config"
	"github.com/sixex/sixex/internal/money"
)

// CatalogModel is the browsable stock list.
type CatalogModel struct {
	Table       table.Model
	Err         error
	LastUpdated time.Time
}

// NewCatalogModel creates the catalog view populated from the given
// catalog snapshot.
func NewCatalogModel(c *catalog.Catalog) *CatalogModel {
	cols := []table.Column{
		{Title: "", Width: 3},
		{Title: "Symbol", Width: 8},
		{Title: "Name", Width: 26},
		{Title: "Price", Width: 12},
		{Title: "Change", Width: 10},
		{Title: "Change %", Width: 10},
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(TableStyles())

	m := &CatalogModel{Table: t}
	m.Refresh(c)
	return m
}

// SetHeight sets the table height.
func (m *CatalogModel) SetHeight(height int) {
	m.Table.SetHeight(height)
}

// Refresh rebuilds the table rows from the catalog.
func (m *CatalogModel) Refresh(c *catalog.Catalog) {
	instruments := c.All()
	rows := make([]table.Row, 0, len(instruments))
	for _, inst := range instruments {
		rows = append(rows, table.Row{
			inst.Logo,
			inst.Symbol,
			inst.Name,
			money.USD(inst.Price),
			money.SignedUSD(inst.Change),
			money.SignedPercent(inst.ChangePercent),
		})
	}
	m.Table.SetRows(rows)
}

// SelectedSymbol returns the symbol of the highlighted row, or "".
func (m *CatalogModel) SelectedSymbol() string {
	row := m.Table.SelectedRow()
	if len(row) < 2 {
		return ""
	}
	return row[1]
}

// Update passes navigation keys to the table.
func (m *CatalogModel) Update(msg tea.Msg) (*CatalogModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// View renders the catalog view.
func (m *CatalogModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Markets"))
	b.WriteString("\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString(WarningStyle.Render("Price refresh failed; showing last known prices"))
		b.WriteString("\n")
	}
	if !m.LastUpdated.IsZero() {
		b.WriteString(LabelStyle.Render("Updated: " + m.LastUpdated.Format("3:04:05 PM")))
	}

	return b.String()
}

// FetchStocks returns a command that refreshes the price feed. The
// current catalog supplies display metadata the feed does not carry.
func FetchStocks(cfg *config.Config, current *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client := api.NewClient(cfg.APIBaseURL, "")
		resp, err := client.Stocks(ctx)
		if err != nil {
			return StocksErrorMsg{Err: err}
		}
		return StocksLoadedMsg{Instruments: resp.Instruments(current)}
	}
}

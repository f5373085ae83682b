package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sixex/sixex/internal/ledger"
	"github.com/sixex/sixex/internal/money"
)

// PortfolioModel shows the user's holdings valued against the catalog.
type PortfolioModel struct {
	Table   table.Model
	Summary ledger.Summary
}

// NewPortfolioModel creates an empty portfolio view.
func NewPortfolioModel() *PortfolioModel {
	cols := []table.Column{
		{Title: "Symbol", Width: 8},
		{Title: "Shares", Width: 12},
		{Title: "Invested", Width: 12},
		{Title: "Price", Width: 12},
		{Title: "Value", Width: 12},
		{Title: "Gain", Width: 12},
		{Title: "Gain %", Width: 9},
		{Title: "Since", Width: 10},
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(TableStyles())

	return &PortfolioModel{Table: t}
}

// SetHeight sets the table height.
func (m *PortfolioModel) SetHeight(height int) {
	m.Table.SetHeight(height)
}

// Refresh rebuilds the view from a valuation. Stale holdings stay in
// the list with dashes for the unavailable price columns.
func (m *PortfolioModel) Refresh(s ledger.Summary) {
	m.Summary = s
	rows := make([]table.Row, 0, len(s.Lines))
	for _, line := range s.Lines {
		since := ""
		if !line.AcquiredAt.IsZero() {
			since = line.AcquiredAt.Format("2006-01-02")
		}
		if line.Stale {
			rows = append(rows, table.Row{
				line.Symbol,
				money.Shares(line.Shares),
				money.USD(line.Invested),
				"-", "-", "-", "stale",
				since,
			})
			continue
		}
		rows = append(rows, table.Row{
			line.Symbol,
			money.Shares(line.Shares),
			money.USD(line.Invested),
			money.USD(line.CurrentPrice),
			money.USD(line.CurrentValue),
			money.SignedUSD(line.Gain),
			money.SignedPercent(line.GainPercent),
			since,
		})
	}
	m.Table.SetRows(rows)
}

// Update passes navigation keys to the table.
func (m *PortfolioModel) Update(msg tea.Msg) (*PortfolioModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// View renders the holdings table with totals underneath.
func (m *PortfolioModel) View() string {
	var b strings.Builder
	s := m.Summary

	b.WriteString(TitleStyle.Render("Portfolio"))
	b.WriteString(LabelStyle.Render(fmt.Sprintf(" (%d holdings)", len(s.Lines))))
	b.WriteString("\n")

	if len(s.Lines) == 0 {
		b.WriteString(LabelStyle.Render("No holdings yet. Pick a stock and invest from $1."))
		return b.String()
	}

	b.WriteString(m.Table.View())
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Invested: "))
	b.WriteString(ValueStyle.Render(money.USD(s.TotalInvested)))
	b.WriteString("  ")
	b.WriteString(LabelStyle.Render("Value: "))
	b.WriteString(ValueStyle.Render(money.USD(s.TotalValue)))
	b.WriteString("  ")
	b.WriteString(LabelStyle.Render("Gain: "))
	style := gainStyle(s.TotalGain.IsNegative())
	b.WriteString(style.Render(money.SignedUSD(s.TotalGain) + " (" + money.SignedPercent(s.TotalGainPercent) + ")"))
	b.WriteString("\n")

	if s.StaleCount > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("%d holding(s) not priceable in the current catalog and excluded from totals", s.StaleCount)))
		b.WriteString("\n")
	}

	return b.String()
}

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/catalog"
	"github.com/sixex/sixex/internal/config"
	"github.com/sixex/sixex/internal/ledger"
	"github.com/sixex/sixex/internal/money"
)

// ErrNoInstrument is returned when the detail view is entered without a
// catalog-resolved instrument. That is a caller bug, not a render case.
var ErrNoInstrument = errors.New("no instrument selected")

// DetailModel shows one instrument and the invest form.
type DetailModel struct {
	Instrument  catalog.Instrument
	AmountInput textinput.Model
	Err         error
	Submitting  bool
}

// NewDetailModel creates an empty detail view; SetInstrument must be
// called before it is shown.
func NewDetailModel() *DetailModel {
	ti := textinput.New()
	ti.Placeholder = "Amount in USD (min $1.00)"
	ti.CharLimit = 12
	ti.Width = 28
	return &DetailModel{AmountInput: ti}
}

// SetInstrument points the view at an instrument and resets the form.
func (m *DetailModel) SetInstrument(inst catalog.Instrument) {
	m.Instrument = inst
	m.AmountInput.SetValue("")
	m.AmountInput.Focus()
	m.Err = nil
	m.Submitting = false
}

// ParseAmount validates the entered dollar amount: a parseable positive
// decimal of at least $1.00.
func (m *DetailModel) ParseAmount() (decimal.Decimal, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(m.AmountInput.Value()), "$"))
	if raw == "" {
		return decimal.Zero, errors.New("enter an amount to invest")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.New("amount must be a number")
	}
	if amount.LessThan(ledger.MinInvestment) {
		return decimal.Zero, ledger.ErrBelowMinimum
	}
	return amount, nil
}

// Update passes editing keys to the amount input.
func (m *DetailModel) Update(msg tea.Msg) (*DetailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.AmountInput, cmd = m.AmountInput.Update(msg)
	return m, cmd
}

// View renders the instrument details and the invest form, including an
// advisory shares preview. The preview is display-only and never enters
// the ledger.
func (m *DetailModel) View() string {
	var b strings.Builder
	inst := m.Instrument

	b.WriteString(TitleStyle.Render(inst.Logo + " " + inst.Symbol + " — " + inst.Name))
	b.WriteString("\n")
	if inst.Description != "" {
		b.WriteString(LabelStyle.Render(inst.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("Price: "))
	b.WriteString(ValueStyle.Render(money.USD(inst.Price)))
	b.WriteString("  ")
	b.WriteString(LabelStyle.Render("24h: "))
	style := gainStyle(inst.Change.IsNegative())
	b.WriteString(style.Render(money.SignedUSD(inst.Change) + " (" + money.SignedPercent(inst.ChangePercent) + ")"))
	b.WriteString("\n\n")

	b.WriteString(TitleStyle.Render("Invest"))
	b.WriteString("\n")
	b.WriteString(InputStyle.Render(m.AmountInput.View()))
	b.WriteString("\n")

	if amount, err := m.ParseAmount(); err == nil {
		shares := ledger.SharesFor(amount, inst.Price)
		b.WriteString(LabelStyle.Render("You get approximately "))
		b.WriteString(ValueStyle.Render(money.Shares(shares) + " shares"))
		b.WriteString("\n")
	}

	if m.Submitting {
		b.WriteString(LabelStyle.Render("Placing order..."))
		b.WriteString("\n")
	} else if m.Err != nil {
		b.WriteString(ErrorStyle.Render(m.Err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

// PlaceBuy returns a command that submits the buy to the execution
// service. The epoch stamps the result so it is dropped if the session
// ended while the call was in flight.
func PlaceBuy(cfg *config.Config, token string, epoch int, symbol string, amount decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client := api.NewClient(cfg.APIBaseURL, token)
		resp, err := client.Buy(ctx, symbol, amount)
		if err != nil {
			return BuyErrorMsg{Epoch: epoch, Err: err}
		}
		return BuyPlacedMsg{Epoch: epoch, Resp: resp}
	}
}

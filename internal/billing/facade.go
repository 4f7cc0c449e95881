package billing

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"estructura/internal/domain"
)

// Facade is the single entry point for billing. It owns the three step
// services and runs them in a fixed order.
type Facade struct {
	out      io.Writer
	gen      *Generator
	ledger   *Ledger
	notifier *Notifier
}

// NewFacade builds a facade whose steps all report on w.
func NewFacade(w io.Writer) *Facade {
	return &Facade{
		out:      w,
		gen:      NewGenerator(w),
		ledger:   NewLedger(w),
		notifier: NewNotifier(w),
	}
}

// Process runs generation, persistence and notification for one billing
// request, unconditionally and in that order. Steps cannot fail and there is
// no rollback.
func (f *Facade) Process(user string, amount decimal.Decimal) {
	fmt.Fprintln(f.out, "[Fachada] Procesando facturación...")

	req := domain.BillingRequest{User: user, Amount: amount}
	inv := f.gen.Generate(req)
	f.ledger.Save(inv)
	f.notifier.Send(fmt.Sprintf("Factura generada para %s por $%s", user, amount))
}

// Ledger exposes the facade's ledger for inspection.
func (f *Facade) Ledger() *Ledger { return f.ledger }

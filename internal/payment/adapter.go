package payment

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"estructura/internal/domain"
)

// Adapter exposes an external gateway through the internal PaymentMethod
// contract. It owns the wrapped gateway reference and carries no other state.
type Adapter struct {
	gateway domain.ExternalGateway
	out     io.Writer
}

// NewAdapter wraps gw, reporting the adaptation on w.
func NewAdapter(gw domain.ExternalGateway, w io.Writer) *Adapter {
	return &Adapter{gateway: gw, out: w}
}

// Pay emits the adaptation notice and forwards the same amount to the
// gateway's native send operation, exactly once. Gateway failures are not
// intercepted here.
func (a *Adapter) Pay(amount decimal.Decimal) {
	fmt.Fprintln(a.out, "[Adapter] Adaptando interfaz interna a API externa...")
	a.gateway.SendPayment(amount)
}

var _ domain.PaymentMethod = (*Adapter)(nil)

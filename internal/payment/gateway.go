package payment

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"estructura/internal/domain"
)

// Gateway simulates the external payment provider. Its only effect is a
// confirmation line on the configured writer.
type Gateway struct {
	out io.Writer
}

// NewGateway returns a gateway that reports sends on w.
func NewGateway(w io.Writer) *Gateway { return &Gateway{out: w} }

// SendPayment is the provider's native operation.
func (g *Gateway) SendPayment(amount decimal.Decimal) {
	fmt.Fprintf(g.out, "[API Externa] Pago enviado por $%s\n", amount)
}

var _ domain.ExternalGateway = (*Gateway)(nil)

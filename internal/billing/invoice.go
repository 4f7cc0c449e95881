package billing

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"estructura/internal/domain"
)

// Generator mints invoices for billing requests.
type Generator struct {
	out io.Writer
}

// NewGenerator returns a generator that reports on w.
func NewGenerator(w io.Writer) *Generator { return &Generator{out: w} }

// Generate emits the invoice line and returns a freshly identified invoice
// for the request.
func (g *Generator) Generate(req domain.BillingRequest) domain.Invoice {
	fmt.Fprintf(g.out, "[Factura] Generando factura para %s por $%s\n", req.User, req.Amount)
	return domain.Invoice{
		ID:     uuid.New(),
		User:   req.User,
		Amount: req.Amount,
	}
}

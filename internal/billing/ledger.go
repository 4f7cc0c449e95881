package billing

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"estructura/internal/domain"
)

// Ledger keeps generated invoices in memory, keyed by invoice ID. It stands
// in for real persistence; nothing survives the process.
type Ledger struct {
	out     io.Writer
	records map[uuid.UUID]domain.Invoice
}

// NewLedger returns an empty ledger that reports saves on w.
func NewLedger(w io.Writer) *Ledger {
	return &Ledger{out: w, records: make(map[uuid.UUID]domain.Invoice)}
}

// Save records the invoice and emits the persistence line.
func (l *Ledger) Save(inv domain.Invoice) {
	fmt.Fprintf(l.out, "[BD] Guardando factura de %s por $%s\n", inv.User, inv.Amount)
	l.records[inv.ID] = inv
}

// Len reports how many invoices the ledger holds.
func (l *Ledger) Len() int { return len(l.records) }

package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingRequest is the ephemeral input to a billing run. It is never
// persisted as-is; the facade fans it out to the three billing steps.
type BillingRequest struct {
	User   string
	Amount decimal.Decimal
}

// Invoice is the record minted by invoice generation and kept by the ledger.
type Invoice struct {
	ID     uuid.UUID
	User   string
	Amount decimal.Decimal
}

// Role identifies the caller of a guarded store. It is fixed at proxy
// construction and never changes for the lifetime of the proxy.
type Role string

// RoleAdmin is the only role allowed to write through a store proxy.
const RoleAdmin Role = "admin"

// CanWrite reports whether the role may write through a proxy.
func (r Role) CanWrite() bool { return r == RoleAdmin }

// Access is the outcome of a guarded store operation. Denial is a normal
// outcome, not an error.
type Access int

const (
	AccessDenied Access = iota
	AccessGranted
)

func (a Access) String() string {
	if a == AccessGranted {
		return "granted"
	}
	return "denied"
}

package domain

import (
	"io"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the internal payment contract the rest of the app codes
// against.
type PaymentMethod interface {
	Pay(amount decimal.Decimal)
}

// ExternalGateway is the third-party payment surface with its own calling
// convention. An adapter converts PaymentMethod calls into it.
type ExternalGateway interface {
	SendPayment(amount decimal.Decimal)
}

// Messenger sends a text message. Decorators wrap a Messenger, transform the
// text, and delegate to the wrapped one; the plain sender is terminal.
type Messenger interface {
	Send(text string)
}

// Widget is a renderable UI node. Containers and leaves share this one
// contract so whole trees render through a single recursive call.
//
// Render writes one line per node to w, indented by depth spaces; containers
// render children at depth+2 in insertion order.
type Widget interface {
	Render(w io.Writer, depth int)
}

// Store is the real data store behind an access proxy.
type Store interface {
	Read()
	Write()
}

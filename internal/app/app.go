package app

import (
	"io"

	"github.com/rs/zerolog"

	"estructura/internal/billing"
	"estructura/internal/domain"
	"estructura/internal/message"
	"estructura/internal/payment"
	"estructura/internal/storage"
)

// App holds the wired component groups. All observable output goes to Out;
// diagnostics go to the logger.
type App struct {
	Config Config
	Out    io.Writer
	Log    zerolog.Logger

	Payments domain.PaymentMethod
	Billing  *billing.Facade
}

// New wires the component groups against out. Construction writes nothing;
// output starts with the first operation.
func New(cfg Config, out io.Writer, log zerolog.Logger) *App {
	return &App{
		Config:   cfg,
		Out:      out,
		Log:      log,
		Payments: payment.NewAdapter(payment.NewGateway(out), out),
		Billing:  billing.NewFacade(out),
	}
}

// Messenger builds a sender chain from the requested layers. Encryption
// wraps first and compression last, so with both enabled compression is the
// outermost layer, matching the demo script's chain.
func (a *App) Messenger(encrypt, compress bool) domain.Messenger {
	var m domain.Messenger = message.NewPlain(a.Out)
	if encrypt {
		m = message.WithEncryption(m)
	}
	if compress {
		m = message.WithCompression(m)
	}
	return m
}

// Form builds the configured widget tree.
func (a *App) Form() domain.Widget { return a.Config.Form.Build() }

// Store returns a proxy over a fresh store, guarded by role.
func (a *App) Store(role domain.Role) *storage.Proxy {
	return storage.NewProxy(storage.NewReal(a.Out), role, a.Out)
}

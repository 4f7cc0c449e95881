package billing

import (
	"fmt"
	"io"
)

// Notifier delivers billing notifications.
type Notifier struct {
	out io.Writer
}

// NewNotifier returns a notifier that reports on w.
func NewNotifier(w io.Writer) *Notifier { return &Notifier{out: w} }

// Send emits the notification line for msg.
func (n *Notifier) Send(msg string) {
	fmt.Fprintf(n.out, "[Mensaje] Enviado: %s\n", msg)
}

package message

import (
	"fmt"
	"io"

	"estructura/internal/domain"
)

// Plain is the terminal sender at the bottom of every chain. It emits the
// text it receives and delegates nowhere.
type Plain struct {
	out io.Writer
}

// NewPlain returns a sender that emits on w.
func NewPlain(w io.Writer) *Plain { return &Plain{out: w} }

// Send emits the text.
func (p *Plain) Send(text string) {
	fmt.Fprintf(p.out, "[Mensaje] %s\n", text)
}

var _ domain.Messenger = (*Plain)(nil)

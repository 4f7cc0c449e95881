package storage

import (
	"fmt"
	"io"

	"estructura/internal/domain"
)

// Real is the actual store behind the proxy. Its operations only report
// themselves; there is no data.
type Real struct {
	out io.Writer
}

// NewReal returns a store that reports on w.
func NewReal(w io.Writer) *Real { return &Real{out: w} }

func (r *Real) Read() {
	fmt.Fprintln(r.out, "[BD] Leyendo datos...")
}

func (r *Real) Write() {
	fmt.Fprintln(r.out, "[BD] Escribiendo datos...")
}

var _ domain.Store = (*Real)(nil)

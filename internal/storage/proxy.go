package storage

import (
	"fmt"
	"io"

	"estructura/internal/domain"
)

// Proxy guards a store with a role fixed at construction. It logs every
// access attempt before deciding whether to delegate.
type Proxy struct {
	role  domain.Role
	store domain.Store
	out   io.Writer
}

// NewProxy wraps store for the given role, reporting on w.
func NewProxy(store domain.Store, role domain.Role, w io.Writer) *Proxy {
	return &Proxy{role: role, store: store, out: w}
}

// Role returns the role the proxy was built with.
func (p *Proxy) Role() domain.Role { return p.role }

// Read logs the access and delegates. Reads are never denied.
func (p *Proxy) Read() {
	fmt.Fprintf(p.out, "[Proxy] Usuario '%s' accediendo a lectura.\n", p.role)
	p.store.Read()
}

// Write delegates only for the admin role. A denial is reported on the
// writer and returned as AccessDenied; the real store is not touched.
func (p *Proxy) Write() domain.Access {
	if !p.role.CanWrite() {
		fmt.Fprintln(p.out, "[Proxy] Acceso denegado para escritura.")
		return domain.AccessDenied
	}
	fmt.Fprintf(p.out, "[Proxy] Usuario '%s' escribiendo...\n", p.role)
	p.store.Write()
	return domain.AccessGranted
}

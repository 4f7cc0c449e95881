package storage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"estructura/internal/domain"
	"estructura/internal/storage"
)

// countingStore records how often each operation reaches the real store.
type countingStore struct {
	reads, writes int
}

func (s *countingStore) Read()  { s.reads++ }
func (s *countingStore) Write() { s.writes++ }

func TestProxy_Write(t *testing.T) {
	t.Run("guest is denied and the store is untouched", func(t *testing.T) {
		store := &countingStore{}
		var buf bytes.Buffer
		p := storage.NewProxy(store, "invitado", &buf)

		got := p.Write()

		assert.Equal(t, domain.AccessDenied, got)
		assert.Zero(t, store.writes)
		assert.Equal(t, "[Proxy] Acceso denegado para escritura.\n", buf.String())
	})

	t.Run("admin writes through", func(t *testing.T) {
		store := &countingStore{}
		var buf bytes.Buffer
		p := storage.NewProxy(store, domain.RoleAdmin, &buf)

		got := p.Write()

		assert.Equal(t, domain.AccessGranted, got)
		assert.Equal(t, 1, store.writes)
		assert.Equal(t, "[Proxy] Usuario 'admin' escribiendo...\n", buf.String())
	})
}

func TestProxy_Read_AlwaysDelegates(t *testing.T) {
	for _, role := range []domain.Role{"invitado", domain.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			store := &countingStore{}
			var buf bytes.Buffer
			p := storage.NewProxy(store, role, &buf)

			p.Read()

			assert.Equal(t, 1, store.reads)
			assert.Equal(t, "[Proxy] Usuario '"+string(role)+"' accediendo a lectura.\n", buf.String())
		})
	}
}

func TestReal_Output(t *testing.T) {
	var buf bytes.Buffer
	r := storage.NewReal(&buf)

	r.Read()
	r.Write()

	assert.Equal(t, "[BD] Leyendo datos...\n[BD] Escribiendo datos...\n", buf.String())
}

func TestProxy_ConstructionEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	storage.NewProxy(storage.NewReal(&buf), "invitado", &buf)
	assert.Empty(t, buf.String())
}

package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estructura/internal/app"
	"estructura/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := app.Default()

	assert.Equal(t, "Alice", cfg.Demo.User)
	assert.Equal(t, "100", cfg.Demo.Amount.String())
	assert.Equal(t, domain.Role("invitado"), cfg.Demo.GuestRole)
	assert.Equal(t, domain.RoleAdmin, cfg.Demo.AdminRole)
	assert.Equal(t, "panel", cfg.Form.Type)
	require.Len(t, cfg.Form.Children, 2)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
[demo]
user = "Roberto"
amount = "249.99"
guest_role = "lector"

[form]
type = "panel"

[[form.children]]
type = "button"
label = "Enviar"
`)

	cfg, err := app.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Roberto", cfg.Demo.User)
	assert.Equal(t, "249.99", cfg.Demo.Amount.String())
	assert.Equal(t, domain.Role("lector"), cfg.Demo.GuestRole)
	// Untouched keys keep their defaults.
	assert.Equal(t, "Factura lista y enviada correctamente", cfg.Demo.Message)
	assert.Equal(t, domain.RoleAdmin, cfg.Demo.AdminRole)
	require.Len(t, cfg.Form.Children, 1)
	assert.Equal(t, "Enviar", cfg.Form.Children[0].Label)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		path := writeConfig(t, "[demo]\namount = \"-5\"\n")
		_, err := app.Load(path)
		assert.ErrorContains(t, err, "non-negative")
	})

	t.Run("unparseable amount", func(t *testing.T) {
		path := writeConfig(t, "[demo]\namount = \"cien\"\n")
		_, err := app.Load(path)
		assert.ErrorContains(t, err, "parse amount")
	})

	t.Run("unknown widget type", func(t *testing.T) {
		path := writeConfig(t, "[form]\ntype = \"slider\"\n")
		_, err := app.Load(path)
		assert.ErrorContains(t, err, "unknown widget type")
	})

	t.Run("leaf with children", func(t *testing.T) {
		path := writeConfig(t, `
[form]
type = "button"
label = "OK"

[[form.children]]
type = "button"
label = "Inner"
`)
		_, err := app.Load(path)
		assert.ErrorContains(t, err, "cannot have children")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := app.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestWidgetConfig_Build(t *testing.T) {
	cfg := app.Default()
	var buf bytes.Buffer

	cfg.Form.Build().Render(&buf, 0)

	want := "[Panel]\n" +
		"  [Botón: Pagar]\n" +
		"  [Panel]\n" +
		"    [Campo de Texto: Nombre]\n" +
		"    [Campo de Texto: Correo]\n"
	assert.Equal(t, want, buf.String())
}

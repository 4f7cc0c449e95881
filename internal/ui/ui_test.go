package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"estructura/internal/ui"
)

func TestPanel_Render_PreOrderTraversal(t *testing.T) {
	root := ui.NewPanel(
		&ui.Button{Label: "Pagar"},
		ui.NewPanel(
			&ui.TextField{Name: "Nombre"},
			&ui.TextField{Name: "Correo"},
		),
	)

	var buf bytes.Buffer
	root.Render(&buf, 0)

	want := "[Panel]\n" +
		"  [Botón: Pagar]\n" +
		"  [Panel]\n" +
		"    [Campo de Texto: Nombre]\n" +
		"    [Campo de Texto: Correo]\n"
	assert.Equal(t, want, buf.String())
}

func TestLeaf_Render_IndentFollowsDepth(t *testing.T) {
	var buf bytes.Buffer
	(&ui.Button{Label: "OK"}).Render(&buf, 4)
	assert.Equal(t, "    [Botón: OK]\n", buf.String())
}

func TestPanel_Render_NonRootDepth(t *testing.T) {
	// Children always render two levels deeper than their container,
	// whatever the starting depth.
	p := ui.NewPanel(&ui.TextField{Name: "Edad"})

	var buf bytes.Buffer
	p.Render(&buf, 3)

	assert.Equal(t, "   [Panel]\n     [Campo de Texto: Edad]\n", buf.String())
}

func TestPanel_ConstructionEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPanel()
	p.Add(&ui.Button{Label: "Pagar"})
	assert.Empty(t, buf.String())
}

package ui

import (
	"fmt"
	"io"
	"strings"

	"estructura/internal/domain"
)

// indentStep is the extra indent applied per nesting level.
const indentStep = 2

func indent(depth int) string { return strings.Repeat(" ", depth) }

// Button is a leaf widget identified by its label.
type Button struct {
	Label string
}

// Render emits the button's single line at the given depth.
func (b *Button) Render(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s[Botón: %s]\n", indent(depth), b.Label)
}

// TextField is a leaf widget identified by its field name.
type TextField struct {
	Name string
}

// Render emits the field's single line at the given depth.
func (t *TextField) Render(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s[Campo de Texto: %s]\n", indent(depth), t.Name)
}

var (
	_ domain.Widget = (*Button)(nil)
	_ domain.Widget = (*TextField)(nil)
)

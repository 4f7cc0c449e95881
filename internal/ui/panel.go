package ui

import (
	"fmt"
	"io"

	"estructura/internal/domain"
)

// Panel is the container widget. It exclusively owns its children; the
// child list is append-only and per-instance.
type Panel struct {
	children []domain.Widget
}

// NewPanel returns an empty panel.
func NewPanel(children ...domain.Widget) *Panel {
	p := &Panel{}
	for _, c := range children {
		p.Add(c)
	}
	return p
}

// Add appends a child; insertion order is render order.
func (p *Panel) Add(child domain.Widget) {
	p.children = append(p.children, child)
}

// Render emits the panel's own line, then renders each child one level
// deeper in insertion order.
func (p *Panel) Render(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s[Panel]\n", indent(depth))
	for _, c := range p.children {
		c.Render(w, depth+indentStep)
	}
}

var _ domain.Widget = (*Panel)(nil)

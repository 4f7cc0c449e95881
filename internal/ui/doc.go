// Package ui renders a widget tree to text.
//
// Leaves (Button, TextField) and the Panel container share the
// domain.Widget contract, so one Render call walks a whole tree: pre-order,
// depth-first, children in insertion order, two extra spaces of indent per
// nesting level.
package ui

// Package message provides a terminal text sender plus stackable wrappers
// that transform the text before delegating inward.
//
// The encryption and compression wrappers are simulations: pure text
// transforms with no real cryptography or compression behind them. The
// outermost wrapper's transform runs first, so nesting order decides the
// final text; composition is not commutative.
package message

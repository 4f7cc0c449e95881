// Package billing composes invoice generation, the in-memory ledger and
// notification behind one facade.
//
// Facade.Process is the single entry point; callers never touch the three
// step services directly.
package billing

// Package storage provides the simulated data store and the role-guarded
// proxy in front of it.
//
// Reads always pass through; writes require the admin role. Denial is a
// reported outcome, not an error.
package storage

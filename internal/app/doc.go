// Package app wires application dependencies for the CLI.
//
// It loads the demo configuration, builds the concrete component groups
// from it, and exposes them via the App struct for commands to use. RunDemo
// replays the full fixed demonstration script.
package app

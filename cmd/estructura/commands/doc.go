// Package commands defines the estructura CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - demo      Run the full fixed demonstration script
//   - pay       Adapter: pay an amount through the external gateway
//   - bill      Facade: run the billing pipeline for a user
//   - send      Decorator: send a message through optional layers
//   - render    Composite: render the configured widget tree
//   - access    Proxy: read or write the store under a role
//
// # Implementation
//
// The root command loads the demo configuration and builds the component
// graph before any subcommand runs, so handlers share one app context.
// Demo output goes to stdout; diagnostics go to stderr via zerolog.
package commands

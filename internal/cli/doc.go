// Package cli provides the interactive CivicPay command-line client.
//
// It wires configuration, local storage, the session and ledger managers,
// and an interactive REPL for a single resident account on this device.
//
// Key features:
//   - Register / Login / Logout (local session, no server round-trip)
//   - Pay a civic charge through the simulated gateway
//   - History with time-window filters and month grouping
//   - Receipt lookup by transaction reference
//   - View and edit the resident profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

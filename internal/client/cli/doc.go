// Package cli provides the interactive Jabuspark terminal client.
//
// It wires configuration, the local session database, the API services and
// the router, then runs a read-eval-print loop. Every screen of the client
// is a route; REPL commands are shortcuts for navigations, and each
// navigation runs through the route guard before its view is shown.
//
// Key features:
//   - Login / Register (guest-only), Logout, whoami
//   - Dashboard and course list
//   - Course detail with materials, quick drills, AI tutor chat and theory
//     answer marking
//   - Admin course and question-bank consoles (role "admin")
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

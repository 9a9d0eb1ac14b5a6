// Package cli provides the interactive recipe book terminal client.
//
// It wires configuration, the local credential store, the API client, the
// session manager and the meal planner, then runs a REPL until the user
// exits. Typical flow: restore the previous session, browse or search
// recipes, sign in to manage favorites and meal plans.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

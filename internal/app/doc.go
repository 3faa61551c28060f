// Package app provides the orchestration layer for the roverwatch dashboard.
//
// Run is the composition root: it loads configuration and preferences,
// builds the proxy API client, seeds the state store with the initial
// snapshot (dark mode off unless saved on, no rovers, no selection), and
// hands everything to the UI, which owns fetching from there. Business logic
// lives in the domain packages (nasa, state, ui); this package only connects
// them.
package app

// Package ui provides the terminal dashboard for roverwatch.
//
// # Architecture
//
// The package implements the Elm-style loop Bubble Tea is built around:
//
//   - Model holds the current application snapshot (state.State) plus
//     ephemeral view concerns (cursor, viewport, spinner, theme).
//   - Update is the coordinator: every transition merges a state.Patch
//     through Model.apply, and each frame renders the snapshot that merge
//     produced. No handler touches state any other way.
//   - View is a pure function of the model; identical snapshots render
//     identical output.
//
// # Data Flow
//
// Init issues the rover-list fetch. Fetches run as tea.Cmds and come back as
// messages: roversMsg/roversErrMsg for the manifest, photosMsg/photosErrMsg
// for a selection's gallery. Photo fetch messages carry the rover name the
// fetch was issued for; Update compares it to the live selection and drops
// responses that arrive after the user has moved on, so a slow fetch for
// rover A can never overwrite rover B's gallery.
//
// # Selection Lifecycle
//
// Idle (no selection) → Loading (busy indicator on the card, gallery
// cleared, fetch in flight) → Loaded (gallery rendered). A fetch failure
// reverts the busy flag and shows an inline error instead of leaving the
// spinner stuck.
//
// # Theme
//
// Dark and light themes map directly onto the dark-mode flag in state. The
// toggle flows through the coordinator like any other transition and is
// persisted via the prefs package.
package ui

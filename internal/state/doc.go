// Package state provides the immutable application snapshot and the
// merge-and-replace operation that produces the next one.
//
// # Overview
//
// Every frame the UI draws is rendered from exactly one State value. Updates
// arrive as a Patch, a partial state describing only what changed; Apply
// merges the patch into the current snapshot and yields a brand-new State.
// The input snapshot is never mutated, so a render that began against one
// snapshot can never observe a half-applied update.
//
// # Merge Semantics
//
//	next := state.Apply(cur, patch)
//
//   - Nil patch fields preserve the corresponding field of cur unchanged.
//   - Non-nil scalar fields (UserName, DarkMode, Err) overwrite.
//   - Rovers and Gallery replace wholesale when present; the incoming slices
//     are cloned so the caller cannot later mutate a snapshot it handed over.
//   - Selected merges structurally: a SelectionPatch may update the rover,
//     the loading flag, or both, starting from the existing selection.
//   - ClearSelection and ClearGallery reset their fields to nil; with pointer
//     fields a nil cannot distinguish "unchanged" from "remove".
//
// Patches with disjoint populated fields commute: applying {a} then {b}
// equals applying {b} then {a}. There are no error conditions; an empty
// patch is a no-op that still produces a fresh snapshot.
//
// # Store
//
// Store holds the current snapshot behind a sync.RWMutex. Apply is the single
// mutation path; it installs the merged snapshot and returns a defensive copy
// for the caller to render. Snapshot returns a copy of the current state for
// readers. The zero-value pattern of the rest of the codebase does not apply
// here: construct with NewStore so the initial defaults (dark mode off, no
// rovers, no selection) are explicit at the composition root.
//
// # Design Rationale
//
// The package intentionally avoids channels, versioning, and pub/sub. One
// writer (the update loop) and cheap defensive copies are enough at this
// scale, and full snapshot replacement is much simpler to reason about than
// incremental mutation.
package state

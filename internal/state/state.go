package state

import (
	"roverwatch/internal/nasa"
)

// State is the single immutable snapshot that drives rendering. It is created
// once with defaults at startup and replaced, never mutated, on every
// state-updating event for the life of the session.
type State struct {
	UserName string
	Rovers   []nasa.Rover // nil until the rover list has loaded
	Selected *Selection   // nil when no rover is selected
	Gallery  *nasa.Gallery
	DarkMode bool
	LastErr  string // most recent fetch failure, empty when healthy
}

// Selection is the rover the user is currently viewing, with a flag marking
// an in-flight photo fetch.
type Selection struct {
	Rover   nasa.Rover
	Loading bool
}

// Patch is a partial state update. Nil fields leave the corresponding State
// field unchanged; non-nil scalar fields overwrite, and Selected merges
// structurally into any existing selection. The Clear flags express explicit
// resets, which a plain nil cannot.
type Patch struct {
	UserName *string
	Rovers   []nasa.Rover
	Selected *SelectionPatch
	Gallery  *nasa.Gallery
	DarkMode *bool
	Err      *string

	ClearSelection bool
	ClearGallery   bool
}

// SelectionPatch updates part of a Selection. Nil fields are preserved.
type SelectionPatch struct {
	Rover   *nasa.Rover
	Loading *bool
}

// Apply merges a patch into the current state and returns the next snapshot.
// The input state is never modified; slices reachable from the result are
// cloned so no two snapshots alias each other.
func Apply(cur State, p Patch) State {
	next := cur
	next.Rovers = cloneRovers(cur.Rovers)
	next.Selected = cloneSelection(cur.Selected)
	next.Gallery = cloneGallery(cur.Gallery)

	if p.UserName != nil {
		next.UserName = *p.UserName
	}
	if p.Rovers != nil {
		next.Rovers = cloneRovers(p.Rovers)
	}
	if p.ClearSelection {
		next.Selected = nil
	}
	if p.Selected != nil {
		sel := Selection{}
		if next.Selected != nil {
			sel = *next.Selected
		}
		if p.Selected.Rover != nil {
			sel.Rover = *p.Selected.Rover
		}
		if p.Selected.Loading != nil {
			sel.Loading = *p.Selected.Loading
		}
		next.Selected = &sel
	}
	if p.ClearGallery {
		next.Gallery = nil
	}
	if p.Gallery != nil {
		next.Gallery = cloneGallery(p.Gallery)
	}
	if p.DarkMode != nil {
		next.DarkMode = *p.DarkMode
	}
	if p.Err != nil {
		next.LastErr = *p.Err
	}

	return next
}

func cloneRovers(rovers []nasa.Rover) []nasa.Rover {
	if rovers == nil {
		return nil
	}
	dup := make([]nasa.Rover, len(rovers))
	copy(dup, rovers)
	return dup
}

func cloneSelection(sel *Selection) *Selection {
	if sel == nil {
		return nil
	}
	dup := *sel
	return &dup
}

func cloneGallery(g *nasa.Gallery) *nasa.Gallery {
	if g == nil {
		return nil
	}
	dup := *g
	if g.Photos != nil {
		dup.Photos = make([]nasa.Photo, len(g.Photos))
		copy(dup.Photos, g.Photos)
	}
	return &dup
}

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"roverwatch/internal/nasa"
	"roverwatch/internal/state"
)

func TestView_PureForIdenticalSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher, testRovers)

	first := m.View()
	second := m.View()
	if first != second {
		t.Fatalf("View is not pure: identical snapshots rendered differently")
	}
}

func TestView_AbsentRoversShowsPlaceholderNotCards(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher, nil)

	view := m.View()
	if !strings.Contains(view, "Fetching rover manifest") {
		t.Fatalf("View = %q, want loading placeholder", view)
	}
	if strings.Contains(view, "view images") {
		t.Fatalf("View renders rover cards before the list loaded")
	}
}

func TestView_EmptyRoverListIsNotPlaceholder(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher, nil)

	mi, _ := m.Update(roversMsg([]nasa.Rover{}))
	m = mi.(Model)

	view := m.View()
	if strings.Contains(view, "Fetching rover manifest") {
		t.Fatalf("View shows loading placeholder for a loaded empty list")
	}
	if !strings.Contains(view, "No rovers reported") {
		t.Fatalf("View = %q, want empty-list message", view)
	}
}

func TestView_RoverCardsShowMissionDetails(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher, testRovers)

	view := m.View()
	for _, want := range []string{"Curiosity", "Spirit", "2011-11-26", "active", "view images"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q", want)
		}
	}
}

func TestView_BusyIndicatorOnLoadingSelection(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher, testRovers)

	mi, _ := m.Update(keyMsg("enter"))
	m = mi.(Model)

	if !strings.Contains(m.View(), "fetching photos") {
		t.Fatalf("View does not show the busy indicator for the loading rover")
	}
}

func TestRenderPhotoCard_DefaultsMissingOptionalFields(t *testing.T) {
	styles := ThemeFor(false).Styles()

	card := renderPhotoCard(nasa.Photo{ImgSrc: "https://mars/img.jpg"}, styles)
	for _, want := range []string{unknownCamera, unknownDate, unknownRover} {
		if !strings.Contains(card, want) {
			t.Fatalf("photo card missing default %q:\n%s", want, card)
		}
	}

	card = renderPhotoCard(nasa.Photo{
		ImgSrc:    "https://mars/img.jpg",
		EarthDate: "2015-05-30",
		Camera:    nasa.Camera{FullName: "Mast Camera"},
		Rover:     nasa.PhotoRover{Name: "Curiosity"},
	}, styles)
	if strings.Contains(card, unknownCamera) || !strings.Contains(card, "Mast Camera") {
		t.Fatalf("photo card did not prefer real attribution:\n%s", card)
	}
}

func TestView_GalleryHiddenWithoutSelection(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher, testRovers)

	if strings.Contains(m.View(), "photos up to") {
		t.Fatalf("View renders a gallery with nothing selected")
	}
}

func TestView_GalleryRendersPhotosAfterLoad(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher, testRovers)

	mi, cmd := m.Update(keyMsg("enter"))
	m = mi.(Model)
	mi, _ = m.Update(cmd())
	m = mi.(Model)

	view := m.View()
	if !strings.Contains(view, "photos up to 2024-02-19") {
		t.Fatalf("View missing gallery title:\n%s", view)
	}
	if !strings.Contains(view, "https://mars/Curiosity.jpg") {
		t.Fatalf("View missing photo entry")
	}
}

func TestView_NotReadyBeforeFirstWindowSize(t *testing.T) {
	m := New(Options{Store: state.NewStore(state.State{})})
	if m.View() != "Loading..." {
		t.Fatalf("View = %q before sizing, want Loading...", m.View())
	}

	mi, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = mi.(Model)
	if m.View() == "Loading..." {
		t.Fatalf("View still Loading... after first WindowSizeMsg")
	}
}

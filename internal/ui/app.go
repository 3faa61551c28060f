package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roverwatch/internal/nasa"
	"roverwatch/internal/prefs"
	"roverwatch/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    nasa.RoverFetcher
	Store     *state.Store
	PrefsPath string
}

// Model is the root application state for Bubble Tea. Its Update method is
// the coordinator every state transition flows through, and View renders the
// snapshot the last transition produced.
type Model struct {
	// Configuration
	ctx       context.Context
	client    nasa.RoverFetcher
	store     *state.Store
	prefsPath string

	// Current snapshot, replaced via apply on every transition
	st state.State

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	cursor int

	spin    spinner.Model
	gallery viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	st := state.State{}
	if opts.Store != nil {
		st = opts.Store.Snapshot()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		prefsPath: prefsPath,
		st:        st,
		theme:     ThemeFor(st.DarkMode),
		spin:      sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spin.Tick,
	}
	// Kick off the initial rover-list fetch
	if m.client != nil {
		cmds = append(cmds, fetchRoversCmd(m.ctx, m.client))
	}
	return tea.Batch(cmds...)
}

// apply merges a patch into the store and adopts the resulting snapshot.
// This is the single choke point for state transitions; no handler renders
// against anything but the snapshot it returns.
func (m *Model) apply(p state.Patch) {
	if m.store == nil {
		m.st = state.Apply(m.st, p)
		return
	}
	m.st = m.store.Apply(p)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initGalleryViewport()
		}
		m.ready = true
		m.updateGalleryViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case roversMsg:
		m.apply(state.Patch{Rovers: msg, Err: strPtr("")})
		if last := len(m.st.Rovers) - 1; m.cursor > last && last >= 0 {
			m.cursor = last
		}
		return m, nil

	case roversErrMsg:
		// Keep the loading placeholder; surface the failure inline.
		m.apply(state.Patch{Err: strPtr(msg.err.Error())})
		return m, nil

	case photosMsg:
		if m.staleFor(msg.rover) {
			return m, nil
		}
		gallery := msg.gallery
		m.apply(state.Patch{
			Gallery:  &gallery,
			Selected: &state.SelectionPatch{Loading: boolPtr(false)},
			Err:      strPtr(""),
		})
		m.updateGalleryViewport()
		m.gallery.GotoTop()
		return m, nil

	case photosErrMsg:
		if m.staleFor(msg.rover) {
			return m, nil
		}
		// Revert the busy flag so the card never shows a stuck spinner.
		m.apply(state.Patch{
			Selected: &state.SelectionPatch{Loading: boolPtr(false)},
			Err:      strPtr(msg.err.Error()),
		})
		return m, nil
	}

	return m, nil
}

// staleFor reports whether a photo fetch response belongs to a selection
// that has since been superseded. Late responses for old selections are
// discarded so they can never overwrite a newer rover's state.
func (m Model) staleFor(rover string) bool {
	return m.st.Selected == nil || !strings.EqualFold(m.st.Selected.Rover.Name, rover)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "t":
		return m.toggleDarkMode()

	case "j", "down":
		if m.cursor < len(m.st.Rovers)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "enter", " ":
		return m.selectRover()

	case "g", "home":
		// Scroll the gallery back to the top
		m.gallery.GotoTop()
		return m, nil
	}

	// Remaining keys scroll the gallery viewport (pgup/pgdown etc).
	var cmd tea.Cmd
	m.gallery, cmd = m.gallery.Update(msg)
	return m, cmd
}

// toggleDarkMode flips the theme against the current snapshot and persists
// the choice.
func (m Model) toggleDarkMode() (tea.Model, tea.Cmd) {
	dark := !m.st.DarkMode
	m.apply(state.Patch{DarkMode: &dark})
	m.theme = ThemeFor(m.st.DarkMode)
	m.updateGalleryViewport()
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, prefs.Prefs{DarkMode: m.st.DarkMode})
	}
	return m, nil
}

// selectRover starts the Loading transition for the rover under the cursor
// and issues its photo fetch. Any previous gallery is cleared first so a
// render never pairs one rover's header with another's photos.
func (m Model) selectRover() (tea.Model, tea.Cmd) {
	rovers := m.st.Rovers
	if len(rovers) == 0 || m.cursor < 0 || m.cursor >= len(rovers) {
		return m, nil
	}
	rover := rovers[m.cursor]

	m.apply(state.Patch{
		ClearGallery: true,
		Err:          strPtr(""),
		Selected: &state.SelectionPatch{
			Rover:   &rover,
			Loading: boolPtr(true),
		},
	})
	m.updateGalleryViewport()

	if m.client == nil {
		return m, nil
	}
	return m, fetchPhotosCmd(m.ctx, m.client, rover)
}

func (m *Model) initGalleryViewport() {
	m.gallery = viewport.New(m.width, galleryHeight(m.height))
	m.gallery.Style = lipgloss.NewStyle()
}

func (m *Model) updateGalleryViewport() {
	if m.gallery.Width == 0 {
		m.initGalleryViewport()
	}
	m.gallery.Width = m.width
	m.gallery.Height = galleryHeight(m.height)
	m.gallery.SetContent(m.renderGalleryContent())
}

func galleryHeight(total int) int {
	// Header, rover strip, error line and footer share the column.
	h := total / 2
	if h < 6 {
		h = 6
	}
	return h
}

// Messages

type roversMsg []nasa.Rover

type roversErrMsg struct{ err error }

// photosMsg carries the selection tag its fetch was issued for, so stale
// responses can be matched against the live selection and dropped.
type photosMsg struct {
	rover   string
	gallery nasa.Gallery
}

type photosErrMsg struct {
	rover string
	err   error
}

// Commands

func fetchRoversCmd(ctx context.Context, client nasa.RoverFetcher) tea.Cmd {
	return func() tea.Msg {
		rovers, err := client.FetchRovers(ctx)
		if err != nil {
			return roversErrMsg{err: err}
		}
		return roversMsg(rovers)
	}
}

func fetchPhotosCmd(ctx context.Context, client nasa.RoverFetcher, rover nasa.Rover) tea.Cmd {
	return func() tea.Msg {
		gallery, err := client.FetchPhotos(ctx, rover.Name, rover.MaxDate)
		if err != nil {
			return photosErrMsg{rover: rover.Name, err: err}
		}
		return photosMsg{rover: rover.Name, gallery: gallery}
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roverwatch/internal/nasa"
)

// Fallbacks for optional photo fields. Rendered literally so a record with
// missing attribution never produces empty text in the gallery.
const (
	unknownCamera = "Unknown Camera"
	unknownDate   = "Unknown Date"
	unknownRover  = "Unknown Rover"
)

// View implements tea.Model. Everything below renders from the single
// snapshot in m.st; identical snapshots produce identical markup.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sections := []string{
		m.renderHeader(),
		m.renderRovers(),
	}
	if line := m.renderErrorLine(); line != "" {
		sections = append(sections, line)
	}
	if gallery := m.renderGallery(); gallery != "" {
		sections = append(sections, gallery)
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader shows the logo, the greeting, and the theme toggle hint.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("roverwatch"),
		styles.Text.Render("Hello, " + m.st.UserName),
		styles.MutedText.Render(fmt.Sprintf("[t] %s mode", m.theme.Name)),
	}
	return styles.Header.Width(max(m.width, 0)).Render(strings.Join(parts, "  "))
}

// renderRovers renders one card per rover, or the loading placeholder while
// the list has not arrived yet.
func (m Model) renderRovers() string {
	styles := m.theme.Styles()

	if m.st.Rovers == nil {
		return styles.MutedText.Render(m.spin.View() + " Fetching rover manifest...")
	}
	if len(m.st.Rovers) == 0 {
		return styles.MutedText.Render("No rovers reported.")
	}

	cards := make([]string, 0, len(m.st.Rovers))
	for i, rover := range m.st.Rovers {
		cards = append(cards, m.renderRoverCard(rover, i == m.cursor, styles))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderRoverCard(rover nasa.Rover, cursorHere bool, styles Styles) string {
	var b strings.Builder

	name := styles.AccentText.Bold(true).Render(rover.Name)
	if cursorHere {
		name = styles.Selected.Render(" " + rover.Name + " ")
	}
	b.WriteString(name)
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Launched ") + styles.Text.Render(rover.LaunchDate))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Landed   ") + styles.Text.Render(rover.LandingDate))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Status   ") + styles.StatusStyle(rover.Status).Render(rover.Status))
	b.WriteString("\n")
	b.WriteString(m.renderViewImagesControl(rover, styles))

	card := styles.Card
	if cursorHere {
		card = styles.CardSelected
	}
	return card.Render(b.String())
}

// renderViewImagesControl shows the per-rover action, swapping in a busy
// indicator while that rover's photo fetch is in flight.
func (m Model) renderViewImagesControl(rover nasa.Rover, styles Styles) string {
	sel := m.st.Selected
	if sel != nil && sel.Loading && strings.EqualFold(sel.Rover.Name, rover.Name) {
		return styles.WarningText.Render(m.spin.View() + " fetching photos...")
	}
	return styles.FaintText.Render("[enter] view images")
}

// renderGallery renders the photo cards for the selected rover, or nothing
// when no gallery is loaded.
func (m Model) renderGallery() string {
	if m.st.Gallery == nil || m.st.Selected == nil {
		return ""
	}
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render(
		fmt.Sprintf("%s — %d photos up to %s",
			m.st.Selected.Rover.Name, len(m.st.Gallery.Photos), m.st.Selected.Rover.MaxDate))

	return lipgloss.JoinVertical(lipgloss.Left, title, m.gallery.View())
}

// renderGalleryContent builds the scrollable body the gallery viewport shows.
func (m Model) renderGalleryContent() string {
	if m.st.Gallery == nil {
		return ""
	}
	styles := m.theme.Styles()

	if len(m.st.Gallery.Photos) == 0 {
		return styles.MutedText.Render("No photos for this date.")
	}

	var b strings.Builder
	for _, photo := range m.st.Gallery.Photos {
		b.WriteString(renderPhotoCard(photo, styles))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPhotoCard(photo nasa.Photo, styles Styles) string {
	camera := photo.Camera.FullName
	if strings.TrimSpace(camera) == "" {
		camera = unknownCamera
	}
	date := photo.EarthDate
	if strings.TrimSpace(date) == "" {
		date = unknownDate
	}
	rover := photo.Rover.Name
	if strings.TrimSpace(rover) == "" {
		rover = unknownRover
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(camera))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(rover + " · " + date))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(photo.ImgSrc))
	return styles.Card.Render(b.String())
}

// renderErrorLine surfaces the most recent fetch failure inline.
func (m Model) renderErrorLine() string {
	if m.st.LastErr == "" {
		return ""
	}
	styles := m.theme.Styles()
	return styles.DangerText.Render("! " + m.st.LastErr)
}

// renderFooter shows key hints and the active theme, styled consistently
// with the main content.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	hints := []string{
		"[j/k] move",
		"[enter] view images",
		"[g] top",
		"[t] toggle theme",
		"[q] quit",
		m.theme.Name + " mode",
	}
	return styles.Footer.Width(max(m.width, 0)).Render(strings.Join(hints, "  "))
}

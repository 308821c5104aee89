package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/gallery/internal/tui/styles"
)

// CountModal is the popover that captures how many leading records to select
type CountModal struct {
	visible bool
	title   string
	input   textinput.Model
}

// NewCountModal creates a new count modal
func NewCountModal() CountModal {
	ti := textinput.New()
	ti.Placeholder = "Select rows..."
	ti.CharLimit = 9
	ti.Width = 20
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return CountModal{
		title: "Select first N records",
		input: ti,
	}
}

// Show displays the modal with an empty input
func (m *CountModal) Show() {
	m.visible = true
	m.input.SetValue("")
	m.input.Focus()
}

// Hide dismisses the modal
func (m *CountModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m CountModal) IsVisible() bool {
	return m.visible
}

// Value returns the raw, unvalidated input
func (m CountModal) Value() string {
	return m.input.Value()
}

// Update handles input events, returns (modal, cmd, submitted).
// Submitting hides the modal; the caller reads Value afterwards.
func (m CountModal) Update(msg tea.Msg) (CountModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.Hide()
			return m, nil, true
		case "esc":
			m.Hide()
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

// View renders the count modal
func (m CountModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 30

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	inputStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	hintStyle := styles.DimStyle.
		Width(modalWidth).
		Background(styles.SlateDark)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		inputStyle.Render(""),
		inputStyle.Render(m.input.View()),
		inputStyle.Render(""),
		hintStyle.Render("enter submit · esc cancel"),
	)

	return styles.ModalStyle.Render(content)
}

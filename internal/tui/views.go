package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/gallery/internal/pager"
	"github.com/mmcdole/gallery/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	view := m.Coord.View()

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(view),
		m.renderBody(view),
		m.renderPager(view),
		m.renderFooter(view),
	)

	// Overlay count modal if visible
	if m.CountModal.IsVisible() {
		content = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.CountModal.View())
	}

	return content
}

// renderHeader renders the title bar with the selection badge
func (m Model) renderHeader(view pager.View) string {
	title := styles.HeaderStyle.Render("Artworks")
	badge := RenderSelectionBadge(view)

	gap := m.Width - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + badge
}

// renderBody renders the table, or the loading/error line when there are no rows
func (m Model) renderBody(view pager.View) string {
	if view.Page.IsZero() {
		switch {
		case m.Err != nil:
			return styles.ErrorStyle.Render("Error: " + m.Err.Error())
		default:
			return styles.DimStyle.Render("Loading...")
		}
	}
	return m.Table.View()
}

// renderPager renders the page position line
func (m Model) renderPager(view pager.View) string {
	if view.Page.IsZero() {
		return ""
	}
	left := m.Paginator.View() + styles.DimStyle.Render(fmt.Sprintf(" · %d records", view.Page.Total))
	if m.Err != nil {
		left += "  " + styles.ErrorStyle.Render("Error: "+m.Err.Error())
	}
	return styles.StatusBarStyle.Render(left)
}

// renderFooter renders spinner/status on the left and the help hint on the right
func (m Model) renderFooter(view pager.View) string {
	var left string
	if m.Loading {
		left = m.Spinner.View() + " " + styles.DimStyle.Render("Loading...")
	} else if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	right := m.Help.View(Keys)

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderSelectionBadge renders "K selected · M pending"
func RenderSelectionBadge(view pager.View) string {
	n := len(view.Selection.Records)
	if n == 0 && !view.Selection.HasPending {
		return styles.DimBadgeStyle.Render("none selected")
	}

	text := fmt.Sprintf("%d selected", n)
	if view.Selection.HasPending {
		text += " · " + styles.PendingStyle.Render(fmt.Sprintf("%d pending", view.Selection.Pending))
	}
	return styles.BadgeStyle.Render(text)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Keys"),
		m.Help.View(Keys),
		"",
		styles.DimStyle.Render("Press esc or ? to return"),
	)

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(body))
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// statusLifetime is how long transient status messages stay visible.
const statusLifetime = 3 * time.Second

// View renders the browser.
func (m BrowserModel) View() string {
	if !m.ready {
		return "Loading catalog…"
	}

	if m.showDetail {
		return m.renderDetail()
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Content.Render(m.input.View()))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

// renderHeader shows the app title, the active category, and match counts.
func (m BrowserModel) renderHeader() string {
	title := m.styles.Header.Render("URL Scheme Collection")

	category := "All"
	if id := m.selectedCategory(); id != "" {
		if cat, ok := m.cat.Category(id); ok {
			category = cat.Name
		}
	}
	badge := m.styles.Badge.Render(category)

	counts := m.styles.Count.Render(
		fmt.Sprintf(" %d / %d schemes", len(m.result.Flat), len(m.cat.Schemes)))

	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge, counts)
}

// renderListing renders the grouped results into the viewport content.
func (m BrowserModel) renderListing() string {
	if m.result.Empty() {
		return m.styles.Muted.Render("\n  No schemes match the current filters.\n" +
			"  Press esc to clear the search.")
	}

	var sb strings.Builder
	idx := 0
	for _, g := range m.result.Groups {
		sb.WriteString(m.styles.GroupHeader.Render(
			fmt.Sprintf("▸ %s", g.Category.Name)))
		sb.WriteString(m.styles.Count.Render(fmt.Sprintf("  %d", len(g.Schemes))))
		sb.WriteString("\n")

		for _, s := range g.Schemes {
			line := fmt.Sprintf("  %-24s %s", s.Name, m.styles.URL.Render(s.URL))
			if idx == m.selected {
				line = m.styles.Selected.Render(fmt.Sprintf("› %-24s %s", s.Name, s.URL))
			}
			sb.WriteString(line)
			sb.WriteString("\n")
			idx++
		}
	}

	// Matches whose category id is unknown are in the flat result but in no
	// group; surface the count instead of losing them silently.
	if hidden := len(m.result.Flat) - len(m.visible); hidden > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(
			fmt.Sprintf("  %d matching scheme(s) have an unknown category", hidden)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m BrowserModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusOK {
		return m.styles.Success.Render(" " + m.status)
	}
	return m.styles.Error.Render(" " + m.status)
}

func (m BrowserModel) renderFooter() string {
	help := "type: search │ tab: category │ ↑/↓: select │ enter: details │ esc: clear/quit"
	if m.showDetail {
		help = "c/y: copy URL │ esc: back"
	}
	return m.styles.Footer.Render(help)
}

// renderDetail renders the full-record overlay for the selected scheme.
func (m BrowserModel) renderDetail() string {
	s := m.detail

	categoryName := string(s.Category)
	if cat, ok := m.cat.Category(s.Category); ok {
		categoryName = cat.Name
	}

	header := m.styles.Title.Render(s.Name)
	meta := m.styles.Muted.Render(
		fmt.Sprintf("id: %s │ category: %s", s.ID, categoryName))
	url := m.styles.URL.Render(s.URL)

	body := m.styles.Muted.Render("No description.")
	if s.Description != "" {
		body = strings.TrimRight(m.safeRenderMarkdown(s.Description), "\n")
	}

	card := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		meta,
		"",
		url,
		"",
		body,
	)

	overlay := m.styles.Overlay.Width(min(m.width-4, 80)).Render(card)

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")
	sb.WriteString(overlay)
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery. If glamour
// panics or errors, the plain text is returned instead.
func (m BrowserModel) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

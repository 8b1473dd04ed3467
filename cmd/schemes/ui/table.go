package ui

import (
	"fmt"
	"strings"

	"github.com/toFrankie/url-scheme-collection/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

// CatalogTable renders a grouped filter result as a plain-text table, one
// section per category. Used by the non-interactive list/search commands.
type CatalogTable struct {
	Headers []string
	Result  *catalog.Result

	// ShowDescription adds the description column (truncated).
	ShowDescription bool
}

// NewCatalogTable creates a table over a filter result.
func NewCatalogTable(result *catalog.Result, showDescription bool) *CatalogTable {
	headers := []string{"ID", "NAME", "URL"}
	if showDescription {
		headers = append(headers, "DESCRIPTION")
	}
	return &CatalogTable{
		Headers:         headers,
		Result:          result,
		ShowDescription: showDescription,
	}
}

const descriptionColumnMax = 48

// row converts a scheme into table cells.
func (t *CatalogTable) row(s catalog.Scheme) []string {
	cells := []string{s.ID, s.Name, s.URL}
	if t.ShowDescription {
		cells = append(cells, truncate(firstLine(s.Description), descriptionColumnMax))
	}
	return cells
}

// View renders the table using the provided styles.
func (t *CatalogTable) View(styles Styles) string {
	if t.Result == nil || t.Result.Empty() {
		return styles.Muted.Render("No matching schemes.") + "\n"
	}

	// Column widths span all sections so the sections line up.
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, g := range t.Result.Groups {
		for _, s := range g.Schemes {
			for i, cell := range t.row(s) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	totalWidth := 0
	for _, w := range colWidths {
		totalWidth += w
	}
	totalWidth += len(t.Headers) - 1

	var sb strings.Builder
	for _, g := range t.Result.Groups {
		sb.WriteString(styles.GroupHeader.Render(
			fmt.Sprintf("%s (%d)", g.Category.Name, len(g.Schemes))))
		sb.WriteString("\n")

		for i, h := range t.Headers {
			sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
			if i < len(t.Headers)-1 {
				sb.WriteString(sepStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
		sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

		for _, s := range g.Schemes {
			for i, cell := range t.row(s) {
				sb.WriteString(rowStyle.Width(colWidths[i]).Render(cell))
				if i < len(t.Headers)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	// Schemes that match the filter but have no known category are not part
	// of any section; say so instead of dropping them silently.
	grouped := 0
	for _, g := range t.Result.Groups {
		grouped += len(g.Schemes)
	}
	if hidden := len(t.Result.Flat) - grouped; hidden > 0 {
		sb.WriteString(styles.Muted.Render(
			fmt.Sprintf("%d scheme(s) with unknown category not shown", hidden)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

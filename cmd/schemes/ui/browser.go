package ui

import (
	"fmt"
	"time"

	"github.com/toFrankie/url-scheme-collection/internal/catalog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// CatalogReloadedMsg delivers a freshly parsed user catalog overlay to the
// browser. Emitted by the file watcher bridge in the parent command.
type CatalogReloadedMsg struct {
	Overlay *catalog.Catalog
}

// statusClearMsg expires a transient status message.
type statusClearMsg struct{ id int }

// BrowserModel is the interactive catalog browser: a search input over the
// grouped scheme listing with a detail overlay. The filter is recomputed
// from scratch on every keystroke and category change.
type BrowserModel struct {
	width  int
	height int
	styles Styles

	input    textinput.Model
	viewport viewport.Model
	ready    bool

	base    *catalog.Catalog // embedded catalog, never changes
	overlay *catalog.Catalog // user catalog overlay, swapped on reload
	cat     *catalog.Catalog // base merged with overlay

	result  *catalog.Result
	visible []catalog.Scheme // grouped schemes flattened for navigation

	// categoryIdx indexes cat.Categories; -1 selects all categories.
	categoryIdx int
	selected    int

	showDetail bool
	detail     catalog.Scheme
	renderer   *glamour.TermRenderer

	status   string
	statusOK bool
	statusID int

	reloads <-chan *catalog.Catalog
}

// NewBrowserModel creates the browser over a base catalog. overlay may be
// nil; reloads may be nil when no catalog file is being watched.
func NewBrowserModel(base, overlay *catalog.Catalog, styles Styles, reloads <-chan *catalog.Catalog) BrowserModel {
	ti := textinput.New()
	ti.Placeholder = "Type to search name, description or URL…"
	ti.Prompt = "/ "
	ti.Focus()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		renderer = nil // safeRenderMarkdown falls back to plain text
	}

	m := BrowserModel{
		styles:      styles,
		input:       ti,
		base:        base,
		overlay:     overlay,
		categoryIdx: -1,
		renderer:    renderer,
		reloads:     reloads,
	}
	m.cat = base.Merge(overlay)
	m.refilter()
	return m
}

// Init starts cursor blink and the reload listener.
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForReload(m.reloads))
}

// waitForReload blocks on the watcher channel and converts deliveries into
// messages. Re-issued after each receive.
func waitForReload(ch <-chan *catalog.Catalog) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return CatalogReloadedMsg{Overlay: c}
	}
}

// selectedCategory returns the active category filter.
func (m BrowserModel) selectedCategory() catalog.CategoryID {
	if m.categoryIdx < 0 || m.categoryIdx >= len(m.cat.Categories) {
		return catalog.All
	}
	return m.cat.Categories[m.categoryIdx].ID
}

// refilter recomputes the result for the current query and category and
// clamps the selection.
func (m *BrowserModel) refilter() {
	m.result = m.cat.Filter(m.selectedCategory(), m.input.Value())

	m.visible = m.visible[:0]
	for _, g := range m.result.Groups {
		m.visible = append(m.visible, g.Schemes...)
	}

	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.ready {
		m.viewport.SetContent(m.renderListing())
	}
}

// Update handles messages.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		vpHeight := msg.Height - 6 // header, input, status, footer
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.renderListing())
		return m, nil

	case CatalogReloadedMsg:
		m.overlay = msg.Overlay
		m.cat = m.base.Merge(m.overlay)
		if m.categoryIdx >= len(m.cat.Categories) {
			m.categoryIdx = -1
		}
		m.refilter()
		cmd := m.setStatus(fmt.Sprintf("Catalog reloaded: %d schemes", len(m.cat.Schemes)), true)
		return m, tea.Batch(cmd, waitForReload(m.reloads))

	case statusClearMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.showDetail {
			return m.updateDetail(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.selected = 0
				m.refilter()
				return m, nil
			}
			return m, tea.Quit

		case "tab":
			m.cycleCategory(1)
			return m, nil

		case "shift+tab":
			m.cycleCategory(-1)
			return m, nil

		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
				m.viewport.SetContent(m.renderListing())
			}
			return m, nil

		case "down", "ctrl+n":
			if m.selected < len(m.visible)-1 {
				m.selected++
				m.viewport.SetContent(m.renderListing())
			}
			return m, nil

		case "pgup":
			m.viewport.ViewUp()
			return m, nil

		case "pgdown":
			m.viewport.ViewDown()
			return m, nil

		case "enter":
			if m.selected < len(m.visible) {
				m.detail = m.visible[m.selected]
				m.showDetail = true
			}
			return m, nil
		}

		// Everything else edits the query.
		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if m.input.Value() != before {
			m.selected = 0
			m.refilter()
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// updateDetail handles keys while the detail overlay is open.
func (m BrowserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "q", "enter":
		m.showDetail = false
		return m, nil

	case "c", "y":
		if err := clipboardWriteAll(m.detail.URL); err != nil {
			return m, m.setStatus("Failed to copy URL to clipboard", false)
		}
		return m, m.setStatus(fmt.Sprintf("Copied %s to clipboard", m.detail.URL), true)
	}
	return m, nil
}

// cycleCategory moves the category selection by delta through
// all → declared categories → all.
func (m *BrowserModel) cycleCategory(delta int) {
	n := len(m.cat.Categories)
	if n == 0 {
		return
	}
	m.categoryIdx += delta
	if m.categoryIdx >= n {
		m.categoryIdx = -1
	}
	if m.categoryIdx < -1 {
		m.categoryIdx = n - 1
	}
	m.selected = 0
	m.refilter()
}

// setStatus shows a transient status line for a few seconds.
func (m *BrowserModel) setStatus(text string, ok bool) tea.Cmd {
	m.status = text
	m.statusOK = ok
	m.statusID++
	id := m.statusID
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

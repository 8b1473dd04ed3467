package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/toFrankie/url-scheme-collection/cmd/schemes/ui"
	"github.com/toFrankie/url-scheme-collection/internal/catalog"
	"github.com/toFrankie/url-scheme-collection/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runBrowser starts the interactive catalog browser. This is the default
// command when schemes is run without arguments.
func runBrowser(cmd *cobra.Command, args []string) error {
	base, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load built-in catalog: %w", err)
	}

	// The user catalog is kept separate from the built-in data so that
	// live reloads can re-merge a fresh overlay over the same base.
	var overlay *catalog.Catalog
	if cfg.Catalog.Path != "" {
		overlay, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to load user catalog %s: %w", cfg.Catalog.Path, err)
			}
			logger.Warn("User catalog not found, watching for it to appear",
				zap.String("path", cfg.Catalog.Path))
			overlay = nil
		}
	}

	var reloads <-chan *catalog.Catalog
	if cfg.Catalog.Path != "" && cfg.Catalog.Watch {
		watcher, err := watch.NewCatalogWatcher(cfg.Catalog.Path, logger)
		if err != nil {
			return fmt.Errorf("failed to watch user catalog: %w", err)
		}
		if err := watcher.Start(context.Background()); err != nil {
			return fmt.Errorf("failed to start catalog watcher: %w", err)
		}
		defer watcher.Stop()
		reloads = watcher.Updates()
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	model := ui.NewBrowserModel(base, overlay, styles, reloads)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/toFrankie/url-scheme-collection/internal/catalog"
	"github.com/toFrankie/url-scheme-collection/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	cfgFile     string
	catalogFile string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "schemes",
	Short: "Browse a curated collection of app URL schemes",
	Long: `schemes is an offline browser for deep-link URL schemes: the custom
protocols apps register to be opened from outside (weixin://, tg://,
alipays://, ...).

It ships with a built-in catalog grouped by category. A user catalog file
can be merged over it and is reloaded live while the browser is open.

Run without arguments to start the interactive browser.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if catalogFile != "" {
			cfg.Catalog.Path = catalogFile
		}

		logger, err = cfg.BuildLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBrowser,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.config/schemes/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "User catalog YAML merged over the built-in data")

	// List / search flags
	listCmd.Flags().StringVarP(&filterCategory, "category", "c", "", "Only show schemes in this category")
	listCmd.Flags().BoolVarP(&showDescriptions, "descriptions", "d", false, "Include the description column")
	searchCmd.Flags().StringVarP(&filterCategory, "category", "c", "", "Only search within this category")
	searchCmd.Flags().BoolVarP(&showDescriptions, "descriptions", "d", false, "Include the description column")

	// Export flags
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportCategory, "category", "c", "", "Only export schemes in this category")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "Only export schemes matching this query")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")

	// Add commands to root
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadMergedCatalog loads the built-in catalog and merges the user catalog
// overlay on top when one is configured.
func loadMergedCatalog() (*catalog.Catalog, error) {
	base, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
	}

	if cfg.Catalog.Path == "" {
		return base, nil
	}

	overlay, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("User catalog not found, using built-in data only",
				zap.String("path", cfg.Catalog.Path))
			return base, nil
		}
		return nil, fmt.Errorf("failed to load user catalog %s: %w", cfg.Catalog.Path, err)
	}

	logger.Info("Merged user catalog",
		zap.String("path", cfg.Catalog.Path),
		zap.Int("schemes", len(overlay.Schemes)))
	return base.Merge(overlay), nil
}

// resolveCategory validates a --category value against the catalog.
func resolveCategory(c *catalog.Catalog, name string) (catalog.CategoryID, error) {
	if name == "" {
		return catalog.All, nil
	}
	id := catalog.CategoryID(name)
	if _, ok := c.Category(id); !ok {
		return catalog.All, fmt.Errorf("unknown category %q (run 'schemes categories' to list them)", name)
	}
	return id, nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/toFrankie/url-scheme-collection/cmd/schemes/ui"
	"github.com/toFrankie/url-scheme-collection/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	filterCategory   string
	showDescriptions bool
)

// listCmd prints the catalog grouped by category
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all URL schemes grouped by category",
	Long: `Prints the full catalog as one table section per category.

Example:
  schemes list
  schemes list --category social --descriptions`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// searchCmd filters the catalog by a free-text query
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search schemes by name, description or URL",
	Long: `Case-insensitive substring search over scheme names, descriptions and
URL templates. Multiple words are joined into a single query.

Example:
  schemes search pay
  schemes search map --category travel`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// categoriesCmd prints the declared categories with their scheme counts
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and their scheme counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

// showCmd prints the full record for one scheme
var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the full record for a scheme",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runList(cmd *cobra.Command, args []string) error {
	return printFiltered("")
}

func runSearch(cmd *cobra.Command, args []string) error {
	return printFiltered(strings.Join(args, " "))
}

// printFiltered renders the grouped table for the current category and
// query filters. Both list and search go through here.
func printFiltered(query string) error {
	cat, err := loadMergedCatalog()
	if err != nil {
		return err
	}

	selected, err := resolveCategory(cat, filterCategory)
	if err != nil {
		return err
	}

	result := cat.Filter(selected, query)
	logger.Debug("Filtered catalog",
		zap.String("query", query),
		zap.String("category", filterCategory),
		zap.Int("matches", len(result.Flat)))

	table := ui.NewCatalogTable(result, showDescriptions)
	fmt.Print(table.View(ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))))
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	cat, err := loadMergedCatalog()
	if err != nil {
		return err
	}

	counts := cat.CountByCategory()
	fmt.Printf("%-12s %-16s %s\n", "ID", "NAME", "SCHEMES")
	for _, c := range cat.Categories {
		fmt.Printf("%-12s %-16s %d\n", c.ID, c.Name, counts[c.ID])
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cat, err := loadMergedCatalog()
	if err != nil {
		return err
	}

	s, ok := cat.Scheme(args[0])
	if !ok {
		return fmt.Errorf("no scheme with id %q (run 'schemes list' to browse)", args[0])
	}

	categoryName := string(s.Category)
	if c, ok := cat.Category(s.Category); ok {
		categoryName = c.Name
	} else if s.Category != catalog.All {
		categoryName += " (unknown)"
	}

	fmt.Printf("%s\n", s.Name)
	fmt.Printf("  id:       %s\n", s.ID)
	fmt.Printf("  category: %s\n", categoryName)
	fmt.Printf("  url:      %s\n", s.URL)
	if s.Description != "" {
		fmt.Printf("\n%s\n", indent(s.Description, "  "))
	}
	return nil
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

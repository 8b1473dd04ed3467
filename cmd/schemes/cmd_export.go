package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/toFrankie/url-scheme-collection/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat   string
	exportCategory string
	exportQuery    string
	exportOutput   string
)

// exportCmd dumps the (optionally filtered) catalog as JSON or YAML
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as JSON or YAML",
	Long: `Writes the catalog in a machine-readable format. The same category and
query filters as the search command apply; only the categories referenced
by the exported schemes are included.

Example:
  schemes export --format yaml > schemes.yaml
  schemes export --query pay --format json --output pay.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// exportDocument is the wire shape, identical to the catalog file format so
// exports can be re-imported via --catalog.
type exportDocument struct {
	Categories []catalog.Category `json:"categories" yaml:"categories"`
	Schemes    []catalog.Scheme   `json:"schemes" yaml:"schemes"`
}

func runExport(cmd *cobra.Command, args []string) error {
	cat, err := loadMergedCatalog()
	if err != nil {
		return err
	}

	selected, err := resolveCategory(cat, exportCategory)
	if err != nil {
		return err
	}

	result := cat.Filter(selected, exportQuery)

	// Keep the declared category order, restricted to categories that
	// still have at least one exported scheme.
	doc := exportDocument{Schemes: result.Flat}
	for _, c := range cat.Categories {
		if _, ok := result.Group(c.ID); ok {
			doc.Categories = append(doc.Categories, c)
		}
	}

	var out []byte
	switch exportFormat {
	case "json":
		out, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case "yaml", "yml":
		out, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unknown format %q (expected json or yaml)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if exportOutput == "" {
		fmt.Print(string(out))
		return nil
	}

	if err := os.WriteFile(exportOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	logger.Info("Exported catalog",
		zap.String("path", exportOutput),
		zap.Int("schemes", len(doc.Schemes)))
	fmt.Printf("Exported %d schemes to %s\n", len(doc.Schemes), exportOutput)
	return nil
}

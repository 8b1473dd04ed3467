package ui

import (
	"strings"
	"testing"

	"github.com/toFrankie/url-scheme-collection/internal/catalog"
)

func TestCatalogTable_GroupedSections(t *testing.T) {
	cat := testCatalog()
	table := NewCatalogTable(cat.Filter(catalog.All, ""), false)

	out := table.View(NewStyles(DarkTheme()))

	// One section per category, in first-seen order.
	toolsAt := strings.Index(out, "Tools (1)")
	socialAt := strings.Index(out, "Social (2)")
	if toolsAt < 0 || socialAt < 0 {
		t.Fatalf("Missing group headers in output:\n%s", out)
	}
	if toolsAt > socialAt {
		t.Error("Expected Tools section before Social (first-seen order)")
	}

	for _, want := range []string{"gmail", "googlegmail://", "Twitter", "tg://"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in table output", want)
		}
	}
	if strings.Contains(out, "DESCRIPTION") {
		t.Error("Description column should be off by default")
	}
}

func TestCatalogTable_DescriptionColumn(t *testing.T) {
	cat := testCatalog()
	table := NewCatalogTable(cat.Filter(catalog.All, ""), true)

	out := table.View(NewStyles(DarkTheme()))

	if !strings.Contains(out, "DESCRIPTION") {
		t.Error("Expected description header")
	}
	if !strings.Contains(out, "Microblogging") {
		t.Error("Expected description cell")
	}
}

func TestCatalogTable_Empty(t *testing.T) {
	cat := testCatalog()
	table := NewCatalogTable(cat.Filter(catalog.All, "zzz_no_match"), false)

	out := table.View(NewStyles(DarkTheme()))

	if !strings.Contains(out, "No matching schemes.") {
		t.Errorf("Expected empty-state message, got:\n%s", out)
	}
}

func TestCatalogTable_UnknownCategoryCount(t *testing.T) {
	cat := catalog.New(
		[]catalog.Scheme{
			{ID: "known", Name: "Known", URL: "k://", Category: "social"},
			{ID: "orphan", Name: "Orphan", URL: "o://", Category: "ghost"},
		},
		[]catalog.Category{{ID: "social", Name: "Social"}},
	)
	table := NewCatalogTable(cat.Filter(catalog.All, ""), false)

	out := table.View(NewStyles(DarkTheme()))

	if !strings.Contains(out, "1 scheme(s) with unknown category not shown") {
		t.Errorf("Expected unknown-category count, got:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this one is too long", 10, "this one …"},
		{"中文字符也要按符文截断测试", 8, "中文字符也要按…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); got != "one" {
		t.Errorf("firstLine = %q", got)
	}
	if got := firstLine("single"); got != "single" {
		t.Errorf("firstLine = %q", got)
	}
}

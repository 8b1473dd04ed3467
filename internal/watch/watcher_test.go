package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/toFrankie/url-scheme-collection/internal/catalog"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

const validBody = `
schemes:
  - id: vscode
    name: VS Code
    url: vscode://
    category: dev
`

func writeCatalog(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func waitForUpdate(t *testing.T, ch <-chan *catalog.Catalog) *catalog.Catalog {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for catalog update")
		return nil
	}
}

func TestCatalogWatcher_ReloadOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "user.yaml")
	writeCatalog(t, path, validBody)

	w, err := NewCatalogWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeCatalog(t, path, validBody)

	c := waitForUpdate(t, w.Updates())
	if len(c.Schemes) != 1 || c.Schemes[0].ID != "vscode" {
		t.Errorf("Unexpected catalog: %+v", c.Schemes)
	}

	stats := w.GetStats()
	if stats.Reloads == 0 {
		t.Error("Expected at least one reload")
	}
}

func TestCatalogWatcher_ParseFailureKeepsPrevious(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "user.yaml")
	writeCatalog(t, path, validBody)

	w, err := NewCatalogWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeCatalog(t, path, "schemes: [")

	// No update must be delivered for the broken file.
	select {
	case c := <-w.Updates():
		t.Fatalf("Unexpected update for invalid catalog: %+v", c)
	case <-time.After(2 * time.Second):
	}

	if w.GetStats().ParseFailures == 0 {
		t.Error("Expected a recorded parse failure")
	}
}

func TestCatalogWatcher_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "user.yaml")
	writeCatalog(t, path, validBody)

	w, err := NewCatalogWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeCatalog(t, filepath.Join(dir, "other.yaml"), validBody)

	select {
	case c := <-w.Updates():
		t.Fatalf("Unexpected update for sibling file: %+v", c)
	case <-time.After(1 * time.Second):
	}
}

func TestCatalogWatcher_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "user.yaml")
	writeCatalog(t, path, validBody)

	w, err := NewCatalogWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	if w.IsWatching() {
		t.Error("Watcher must not run before Start")
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !w.IsWatching() {
		t.Error("Expected watcher to be running")
	}
	// Second Start is a no-op.
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	w.Stop()
	if w.IsWatching() {
		t.Error("Expected watcher stopped")
	}
	// Second Stop is a no-op.
	w.Stop()
}

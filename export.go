package heimdall

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExportStatic renders the landing page once and writes it to
// dir/index.html, creating dir as needed. The exported file is the same
// document the HTTP handler serves in production mode.
func (a *App) ExportStatic(dir string) (string, error) {
	if a.loadErr != nil {
		return "", a.loadErr
	}

	page := a.page
	if page == nil {
		var err error
		page, err = a.renderPage()
		if err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	out := filepath.Join(dir, "index.html")
	if err := os.WriteFile(out, page, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}

	return out, nil
}

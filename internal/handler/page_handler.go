package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the dashboard app shell for page navigations. The shell
// is a single HTML file; client-side routing takes over from there, so every
// page path returns the same document.
type PageHandler struct {
	webRoot string
}

// NewPageHandler creates a page handler rooted at the given directory.
func NewPageHandler(webRoot string) *PageHandler {
	return &PageHandler{webRoot: webRoot}
}

// ServeApp returns the app shell. When no built shell is present (API-only
// deployments) it answers with a plain placeholder instead of a 404 so the
// request gate's redirects still land somewhere sensible.
func (h *PageHandler) ServeApp(c echo.Context) error {
	shell := filepath.Join(h.webRoot, "index.html")
	if _, err := os.Stat(shell); err == nil {
		return c.File(shell)
	}
	return c.HTML(http.StatusOK, "<!doctype html><title>shopadmin</title><p>shopadmin</p>")
}

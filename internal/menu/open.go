package menu

import (
	"net/url"
	"path/filepath"
)

// Open validates the captured file location before deferring to the
// platform-specific launcher. Both absolute paths and URIs are
// accepted.
func Open(raw string) {
	if raw == "" {
		return
	}
	if !filepath.IsAbs(raw) {
		if _, err := url.ParseRequestURI(raw); err != nil {
			return
		}
	}

	launchTarget(raw)
}

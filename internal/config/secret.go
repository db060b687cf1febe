package config

import (
	"os"
	"strings"
)

// CompiledSecret holds the passphrase embedded at build time via
// -ldflags. When empty, the application falls back to reading the
// SCREENACCESS_SECRET environment variable for local development.
var CompiledSecret string

// ResolvePassphrase returns the passphrase guarding the configuration
// file: the build-time secret first, then the environment.
func ResolvePassphrase() string {
	if compiled := strings.TrimSpace(CompiledSecret); compiled != "" {
		return compiled
	}
	return strings.TrimSpace(os.Getenv("SCREENACCESS_SECRET"))
}

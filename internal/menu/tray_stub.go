//go:build !cgo && !windows
// +build !cgo,!windows

package menu

import (
	"context"
	"errors"
)

// runTray reports that tray functionality is unavailable without cgo.
func runTray(_ context.Context, _ *Runner) error {
	return errors.New("system tray is unavailable without cgo support")
}

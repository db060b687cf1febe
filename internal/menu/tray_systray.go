//go:build cgo || windows
// +build cgo windows

package menu

import (
	"context"

	"github.com/getlantern/systray"
)

func runTray(ctx context.Context, r *Runner) error {
	systray.Run(func() {
		systray.SetTitle("Screen Access")
		systray.SetTooltip("Portal screenshots and color picking")

		shot := systray.AddMenuItem("Take Screenshot", "Capture the screen via the desktop portal")
		interactive := systray.AddMenuItem("Interactive Screenshot", "Choose area and delay before capturing")
		pick := systray.AddMenuItem("Pick Color", "Pick a pixel color from the screen")
		systray.AddSeparator()
		quit := systray.AddMenuItem("Quit", "Exit the application")

		go func() {
			for {
				select {
				case <-ctx.Done():
					systray.Quit()
					return
				case <-shot.ClickedCh:
					go r.handleScreenshot(ctx, r.cfg.Interactive)
				case <-interactive.ClickedCh:
					go r.handleScreenshot(ctx, true)
				case <-pick.ClickedCh:
					go r.handlePickColor(ctx)
				case <-quit.ClickedCh:
					systray.Quit()
					return
				}
			}
		}()
	}, nil)
	return nil
}

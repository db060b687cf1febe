package menu

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/example/screenaccess/internal/config"
	"github.com/example/screenaccess/internal/logging"
	"github.com/example/screenaccess/internal/portal"
)

// Capturer is the portal surface the tray needs. The live client
// satisfies it; tests substitute a fake.
type Capturer interface {
	Screenshot(ctx context.Context, identifier portal.WindowIdentifier, opts portal.ScreenshotOptions) (portal.ScreenshotResult, error)
	PickColor(ctx context.Context, identifier portal.WindowIdentifier, opts portal.ColorOptions) (portal.ColorResult, error)
}

// Runner drives portal captures from tray interactions and applies the
// configured post-capture actions.
type Runner struct {
	cfg     *config.Config
	capture Capturer
}

// NewRunner constructs a Runner over the given configuration and
// capture backend.
func NewRunner(cfg *config.Config, capture Capturer) *Runner {
	return &Runner{cfg: cfg, capture: capture}
}

// Start runs the tray loop until the context is cancelled or the user
// quits.
func (r *Runner) Start(ctx context.Context) error {
	return runTray(ctx, r)
}

// TakeScreenshot captures a screenshot, copies it into the configured
// save directory and runs the configured actions against the result.
// It returns the final file location.
func (r *Runner) TakeScreenshot(ctx context.Context, opts portal.ScreenshotOptions) (string, error) {
	result, err := r.capture.Screenshot(ctx, portal.WindowNone, opts)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	target, err := result.Path()
	if err != nil {
		// Non-file URIs stay where they are; actions receive the URI.
		logging.Debugf("screenshot is not on the local filesystem: %v", err)
		target = result.URI
	} else if r.cfg.SaveDir != "" {
		copied, err := copyInto(target, r.cfg.SaveDir)
		if err != nil {
			log.Printf("keeping screenshot at %s: %v", target, err)
		} else {
			target = copied
		}
	}

	r.runActions(ctx, target)
	return target, nil
}

// PickColor lets the user pick a single pixel's color.
func (r *Runner) PickColor(ctx context.Context) (portal.RGB, error) {
	result, err := r.capture.PickColor(ctx, portal.WindowNone, portal.ColorOptions{})
	if err != nil {
		return portal.RGB{}, fmt.Errorf("pick color: %w", err)
	}
	return result.RGB(), nil
}

func (r *Runner) runActions(ctx context.Context, target string) {
	for _, action := range r.cfg.Actions {
		runAction(ctx, action, target)
	}
}

func (r *Runner) handleScreenshot(ctx context.Context, interactive bool) {
	target, err := r.TakeScreenshot(ctx, portal.ScreenshotOptions{Interactive: interactive})
	if err != nil {
		log.Printf("screenshot failed: %v", err)
		return
	}
	log.Printf("screenshot saved to %s", target)
	Open(target)
}

func (r *Runner) handlePickColor(ctx context.Context) {
	rgb, err := r.PickColor(ctx)
	if err != nil {
		log.Printf("color pick failed: %v", err)
		return
	}
	log.Printf("picked color %s", FormatRGB(rgb))
}

// FormatRGB renders a picked color as both channel values and an sRGB
// hex triplet.
func FormatRGB(rgb portal.RGB) string {
	return fmt.Sprintf("%.4f %.4f %.4f (#%02x%02x%02x)",
		rgb.Red, rgb.Green, rgb.Blue,
		channelByte(rgb.Red), channelByte(rgb.Green), channelByte(rgb.Blue))
}

func channelByte(channel float64) uint8 {
	if channel <= 0 {
		return 0
	}
	if channel >= 1 {
		return 255
	}
	return uint8(channel*255 + 0.5)
}

// copyInto copies src into dir keeping the base name and returns the
// new path.
func copyInto(src, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure save directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open screenshot: %w", err)
	}
	defer in.Close()

	dst := filepath.Join(dir, filepath.Base(src))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create copy: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("copy screenshot: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("finish copy: %w", err)
	}

	return dst, nil
}

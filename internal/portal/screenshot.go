package portal

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/godbus/dbus/v5"

	"github.com/example/screenaccess/internal/protocol"
)

// ScreenshotOptions configures a screenshot request.
type ScreenshotOptions struct {
	// Modal makes the screenshot dialog modal relative to the parent
	// window.
	Modal bool
	// Interactive lets the user choose area, window and delay before
	// the capture instead of taking it immediately.
	Interactive bool
}

func (o ScreenshotOptions) vardict() protocol.Vardict {
	return protocol.Vardict{
		"modal":       dbus.MakeVariant(o.Modal),
		"interactive": dbus.MakeVariant(o.Interactive),
	}
}

// ScreenshotResult carries the location of a captured screenshot.
type ScreenshotResult struct {
	// URI locates the screenshot file, usually a file:// URI.
	URI string
}

// DecodeVardict reads the uri key of a screenshot response.
func (r *ScreenshotResult) DecodeVardict(results protocol.Vardict) error {
	variant, ok := results["uri"]
	if !ok {
		return errors.New("screenshot response has no uri")
	}

	var raw string
	if err := dbus.Store([]interface{}{variant.Value()}, &raw); err != nil {
		return fmt.Errorf("screenshot uri: %w", err)
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return fmt.Errorf("screenshot uri %q: %w", raw, err)
	}

	r.URI = raw
	return nil
}

// EncodeVardict is the inverse of DecodeVardict.
func (r ScreenshotResult) EncodeVardict() protocol.Vardict {
	return protocol.Vardict{"uri": dbus.MakeVariant(r.URI)}
}

// Path returns the local filesystem path of the screenshot for file
// URIs.
func (r ScreenshotResult) Path() (string, error) {
	u, err := url.Parse(r.URI)
	if err != nil {
		return "", fmt.Errorf("screenshot uri %q: %w", r.URI, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("screenshot uri %q is not a local file", r.URI)
	}
	return u.Path, nil
}

// Screenshot asks the portal to capture a screenshot and waits for the
// user to finish the interaction. Cancellation and timeouts are the
// caller's responsibility via ctx.
func (c *Client) Screenshot(ctx context.Context, identifier WindowIdentifier, opts ScreenshotOptions) (ScreenshotResult, error) {
	return roundTrip[ScreenshotResult](ctx, c, screenshotIface+".Screenshot", identifier, opts.vardict())
}

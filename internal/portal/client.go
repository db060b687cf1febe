// Package portal binds the Screenshot interface of the desktop portal
// service: the Screenshot and PickColor remote procedures, their
// request options, and their typed response payloads.
package portal

import (
	"errors"

	"github.com/godbus/dbus/v5"

	"github.com/example/screenaccess/internal/bus"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	screenshotIface = "org.freedesktop.portal.Screenshot"
	requestIface    = "org.freedesktop.portal.Request"
	responseSignal  = requestIface + ".Response"
)

// WindowIdentifier names the parent window for a portal dialog, e.g.
// "x11:0x4a" or "wayland:...". The empty identifier lets the
// compositor place the dialog freely.
type WindowIdentifier string

// WindowNone requests a free-standing portal dialog.
const WindowNone WindowIdentifier = ""

// Client talks to the desktop portal service over the session bus.
// Methods are safe for concurrent use; each request carries its own
// handle token and awaits its own reply.
type Client struct {
	conn   *dbus.Conn
	sender string
}

// NewClient connects to the default bus endpoint.
func NewClient() (*Client, error) {
	return NewClientWith(bus.DefaultEndpoint())
}

// NewClientWith connects to the given bus endpoint.
func NewClientWith(endpoint bus.Endpoint) (*Client, error) {
	conn, err := endpoint.Connect()
	if err != nil {
		return nil, err
	}

	names := conn.Names()
	if len(names) == 0 {
		conn.Close()
		return nil, errors.New("bus connection has no unique name")
	}

	return &Client{conn: conn, sender: names[0]}, nil
}

// Close releases the bus connection. In-flight requests fail once the
// connection is gone.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Package bus resolves and opens the session message bus connection
// used to reach the desktop portal service.
package bus

import (
	"fmt"
	"os"
	"strings"

	"github.com/godbus/dbus/v5"
)

// Endpoint describes how the client reaches the message bus. An empty
// address means the standard session bus.
type Endpoint struct {
	Address string
}

// DefaultEndpoint resolves the bus endpoint using environment overrides.
func DefaultEndpoint() Endpoint {
	if addr := strings.TrimSpace(os.Getenv("SCREENACCESS_BUS_ADDRESS")); addr != "" {
		return Endpoint{Address: addr}
	}
	return Endpoint{}
}

// Connect opens a private connection to the endpoint. Private
// connections are safe to close without affecting other bus users in
// the same process.
func (e Endpoint) Connect() (*dbus.Conn, error) {
	conn, err := e.dial()
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", e, err)
	}
	if err := conn.Auth(nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("authenticate with %s: %w", e, err)
	}
	if err := conn.Hello(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("register on %s: %w", e, err)
	}
	return conn, nil
}

func (e Endpoint) dial() (*dbus.Conn, error) {
	if e.Address != "" {
		return dbus.Dial(e.Address)
	}
	return dbus.SessionBusPrivate()
}

// String provides a readable representation for logs.
func (e Endpoint) String() string {
	if e.Address == "" {
		return "session-bus"
	}
	return e.Address
}

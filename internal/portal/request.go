package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/example/screenaccess/internal/handle"
	"github.com/example/screenaccess/internal/logging"
	"github.com/example/screenaccess/internal/protocol"
)

// requestPath predicts the object path of the pending request the
// portal creates for sender and token: the caller's unique name with
// the leading colon stripped and dots replaced by underscores.
func requestPath(sender string, token handle.Token) dbus.ObjectPath {
	escaped := strings.ReplaceAll(strings.TrimPrefix(sender, ":"), ".", "_")
	return dbus.ObjectPath("/org/freedesktop/portal/desktop/request/" + escaped + "/" + string(token))
}

// roundTrip performs a single portal request: one outbound call, then
// exactly one Response signal on the request object. The subscription
// is installed on the predicted path before the call so a fast reply
// cannot slip past. Additional signals for the same request are a
// protocol anomaly and are not delivered; the match is removed after
// the first one.
func roundTrip[P any, D protocol.DecoderOf[P]](ctx context.Context, c *Client, method string, identifier WindowIdentifier, options protocol.Vardict) (P, error) {
	var zero P

	token := handle.Generate(nil)
	options["handle_token"] = dbus.MakeVariant(string(token))
	expected := requestPath(c.sender, token)

	if err := c.addResponseMatch(expected); err != nil {
		return zero, fmt.Errorf("subscribe to %s: %w", expected, err)
	}
	defer c.removeResponseMatch(expected)

	signals := make(chan *dbus.Signal, 4)
	c.conn.Signal(signals)
	defer c.conn.RemoveSignal(signals)

	logging.LogBusCall(method, portalPath, options)
	var created dbus.ObjectPath
	call := c.conn.Object(portalDest, portalPath).CallWithContext(ctx, method, 0, string(identifier), options)
	if err := call.Store(&created); err != nil {
		return zero, fmt.Errorf("call %s: %w", method, err)
	}

	// Older portal versions create a request path that does not embed
	// the handle token. Match the returned path as well when it
	// differs from the prediction.
	if created != expected {
		logging.Debugf("portal created %s instead of %s", created, expected)
		if err := c.addResponseMatch(created); err != nil {
			return zero, fmt.Errorf("subscribe to %s: %w", created, err)
		}
		defer c.removeResponseMatch(created)
	}

	for {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case sig, ok := <-signals:
			if !ok {
				return zero, fmt.Errorf("bus connection closed while awaiting reply to %s", method)
			}
			if sig.Name != responseSignal || (sig.Path != expected && sig.Path != created) {
				logging.Debugf("ignoring unrelated signal %s on %s", sig.Name, sig.Path)
				continue
			}
			logging.LogSignal(sig)
			return protocol.DecodePayload[P, D](sig.Body)
		}
	}
}

func (c *Client) addResponseMatch(path dbus.ObjectPath) error {
	return c.conn.AddMatchSignal(
		dbus.WithMatchObjectPath(path),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	)
}

func (c *Client) removeResponseMatch(path dbus.ObjectPath) {
	err := c.conn.RemoveMatchSignal(
		dbus.WithMatchObjectPath(path),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	)
	if err != nil {
		logging.Debugf("remove response match for %s: %v", path, err)
	}
}

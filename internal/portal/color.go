package portal

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/example/screenaccess/internal/protocol"
)

// ColorOptions configures a color pick request. The portal defines no
// options beyond the handle token.
type ColorOptions struct{}

func (ColorOptions) vardict() protocol.Vardict {
	return protocol.Vardict{}
}

// RGB is a picked color with channels in the 0..1 range.
type RGB struct {
	Red   float64
	Green float64
	Blue  float64
}

// ColorResult carries the color triple of a pick-color response.
type ColorResult struct {
	Color [3]float64
}

// DecodeVardict reads the color key. Portal backends emit the triple
// either as a (ddd) struct or as an array of doubles.
func (r *ColorResult) DecodeVardict(results protocol.Vardict) error {
	variant, ok := results["color"]
	if !ok {
		return errors.New("color response has no color")
	}

	channels, err := colorChannels(variant.Value())
	if err != nil {
		return err
	}
	r.Color = channels
	return nil
}

func colorChannels(value interface{}) ([3]float64, error) {
	var out [3]float64

	switch v := value.(type) {
	case []float64:
		if len(v) != 3 {
			return out, fmt.Errorf("color has %d channels, want 3", len(v))
		}
		copy(out[:], v)
	case []interface{}:
		if len(v) != 3 {
			return out, fmt.Errorf("color has %d channels, want 3", len(v))
		}
		for i, item := range v {
			channel, ok := item.(float64)
			if !ok {
				return out, fmt.Errorf("color channel %d is %T, want float64", i, item)
			}
			out[i] = channel
		}
	default:
		return out, fmt.Errorf("color is %T, want a double triple", value)
	}

	return out, nil
}

// EncodeVardict is the inverse of DecodeVardict.
func (r ColorResult) EncodeVardict() protocol.Vardict {
	return protocol.Vardict{"color": dbus.MakeVariant(r.Color[:])}
}

// RGB returns the picked color by channel name.
func (r ColorResult) RGB() RGB {
	return RGB{Red: r.Color[0], Green: r.Color[1], Blue: r.Color[2]}
}

// PickColor asks the portal to let the user pick a single pixel's
// color anywhere on screen.
func (c *Client) PickColor(ctx context.Context, identifier WindowIdentifier, opts ColorOptions) (ColorResult, error) {
	return roundTrip[ColorResult](ctx, c, screenshotIface+".PickColor", identifier, opts.vardict())
}

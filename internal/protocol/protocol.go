// Package protocol implements the response envelope shared by every
// portal request. Replies arrive as a Response signal whose body is a
// two-element tuple: a status code and a vardict (a{sv}) of results.
// The results slot only carries meaning when the status is success.
package protocol

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Vardict is the string-keyed container of dynamically typed values
// used as the results slot of every portal response.
type Vardict = map[string]dbus.Variant

// Status is the first element of a response envelope.
type Status uint32

const (
	// StatusSuccess means the request was carried out.
	StatusSuccess Status = iota
	// StatusCancelled means the user dismissed the interaction.
	StatusCancelled
	// StatusOther means the interaction ended in some other way.
	StatusOther
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusCancelled:
		return "cancelled"
	case StatusOther:
		return "other"
	default:
		return fmt.Sprintf("status(%d)", uint32(s))
	}
}

var (
	// ErrMalformedHeader reports a response whose first element is not a
	// recognised status code.
	ErrMalformedHeader = errors.New("malformed response header")

	// ErrMissingPayload reports a successful status with no results
	// vardict alongside it.
	ErrMissingPayload = errors.New("successful response carries no results")

	// ErrCancelled reports a request the user dismissed.
	ErrCancelled = errors.New("request cancelled")

	// ErrOther reports a request that ended without a result for any
	// other reason.
	ErrOther = errors.New("request ended without a result")
)

// Decoder is implemented by payload types that can populate themselves
// from a results vardict.
type Decoder interface {
	DecodeVardict(results Vardict) error
}

// Encoder is implemented by payload types that can serialize
// themselves back into a results vardict.
type Encoder interface {
	EncodeVardict() Vardict
}

// DecoderOf ties a payload value type to its pointer decoder so the
// envelope decoder can allocate the payload itself.
type DecoderOf[P any] interface {
	*P
	Decoder
}

// Basic is the payload for replies that carry nothing beyond the
// status. Encoding a failed response still emits one so the results
// slot stays present on the wire.
type Basic struct{}

// DecodeVardict accepts any results vardict; no keys are required.
func (*Basic) DecodeVardict(Vardict) error {
	return nil
}

// EncodeVardict returns an empty results vardict.
func (Basic) EncodeVardict() Vardict {
	return Vardict{}
}

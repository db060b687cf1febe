package protocol

import "fmt"

// Response is the outcome of a single portal request: either a decoded
// payload or a classified failure. The payload is set iff the status
// is StatusSuccess.
type Response[P any] struct {
	status  Status
	payload *P
}

// Ok wraps a successful payload.
func Ok[P any](payload P) Response[P] {
	return Response[P]{status: StatusSuccess, payload: &payload}
}

// Failed builds a response for a request that ended without a result.
// StatusSuccess is not a failure; it is coerced to StatusOther so a
// failed response can never claim success without a payload.
func Failed[P any](status Status) Response[P] {
	if status == StatusSuccess {
		status = StatusOther
	}
	return Response[P]{status: status}
}

// Status returns the envelope status code.
func (r Response[P]) Status() Status {
	return r.status
}

// Result returns the payload of a successful response, or the failure
// classified as ErrCancelled or ErrOther.
func (r Response[P]) Result() (P, error) {
	if r.payload != nil {
		return *r.payload, nil
	}
	var zero P
	if r.status == StatusCancelled {
		return zero, ErrCancelled
	}
	return zero, ErrOther
}

// Decode reads a response envelope out of a signal body. The header is
// strict: a missing, mistyped or unknown first element fails with
// ErrMalformedHeader. A successful status requires a results slot
// (ErrMissingPayload otherwise) which is decoded by the payload type;
// payload decode errors are returned as-is. Cancelled and other
// statuses never inspect the results slot.
func Decode[P any, D DecoderOf[P]](body []interface{}) (Response[P], error) {
	var none Response[P]

	if len(body) == 0 {
		return none, fmt.Errorf("%w: empty body", ErrMalformedHeader)
	}
	raw, ok := body[0].(uint32)
	if !ok {
		return none, fmt.Errorf("%w: status is %T, want uint32", ErrMalformedHeader, body[0])
	}

	switch status := Status(raw); status {
	case StatusCancelled, StatusOther:
		return Failed[P](status), nil
	case StatusSuccess:
	default:
		return none, fmt.Errorf("%w: unknown status %d", ErrMalformedHeader, raw)
	}

	if len(body) < 2 || body[1] == nil {
		return none, ErrMissingPayload
	}
	results, ok := body[1].(Vardict)
	if !ok {
		return none, fmt.Errorf("response results are %T, want a{sv}", body[1])
	}

	payload := new(P)
	if err := D(payload).DecodeVardict(results); err != nil {
		return none, err
	}
	return Response[P]{status: StatusSuccess, payload: payload}, nil
}

// Encode is the inverse of Decode. Failed responses carry an empty
// results vardict so the body keeps its two-element shape.
func Encode[P Encoder](r Response[P]) []interface{} {
	if r.payload != nil {
		return []interface{}{uint32(StatusSuccess), (*r.payload).EncodeVardict()}
	}
	return []interface{}{uint32(r.status), Basic{}.EncodeVardict()}
}

// DecodePayload decodes a signal body and flattens the envelope,
// returning the payload or the classified failure as an error.
func DecodePayload[P any, D DecoderOf[P]](body []interface{}) (P, error) {
	response, err := Decode[P, D](body)
	if err != nil {
		var zero P
		return zero, err
	}
	return response.Result()
}

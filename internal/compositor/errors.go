package compositor

import "fmt"

// InvalidInputError reports a precondition violation detected before any
// decode or draw work begins: wrong photo count, missing grid dimensions,
// or an empty photo list. The caller can recover by fixing the request.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// DecodeError reports a source image that could not be decoded. The whole
// composite is aborted; no partial output is ever produced.
type DecodeError struct {
	Index int // position in the photo sequence, -1 for a lone input
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decoding image: %v", e.Err)
	}
	return fmt.Sprintf("decoding photo %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

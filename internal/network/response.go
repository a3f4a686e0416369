package network

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode turns the outcome of Send into a value of T. Checks run in order:
// transport error, missing response, status outside 200-299, then JSON decode.
// A JSON null body does not match any collection and fails decoding.
func Decode[T any](res *Response, err error) (T, error) {
	var zero T

	if err != nil {
		var netErr *Error
		if errors.As(err, &netErr) {
			return zero, netErr
		}
		return zero, newError(KindUnknown, err)
	}

	if res == nil {
		return zero, newError(KindInvalidResponse, errors.New("no response"))
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return zero, HTTPError(res.StatusCode)
	}

	var value *T
	if err := json.Unmarshal(res.Body, &value); err != nil {
		return zero, newError(KindDecoding, fmt.Errorf("%s: %w", res.Request, err))
	}
	if value == nil {
		return zero, newError(KindDecoding, fmt.Errorf("%s: null body", res.Request))
	}

	return *value, nil
}

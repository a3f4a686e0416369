package network

import (
	"errors"
	"fmt"
)

// Kind classifies a failure anywhere in the request/response pipeline
type Kind int

const (
	KindNone Kind = iota
	KindInvalidRequest
	KindInvalidResponse
	KindHTTP
	KindNoData // reserved
	KindDecoding
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidRequest:
		return "invalid_request"
	case KindInvalidResponse:
		return "invalid_response"
	case KindHTTP:
		return "http_error"
	case KindNoData:
		return "no_data"
	case KindDecoding:
		return "decoding_error"
	case KindUnknown:
		return "unknown_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error type produced by the transport and decoder.
// Err holds the underlying cause for logging only; callers branch on Kind.
type Error struct {
	Kind       Kind
	StatusCode int // set for KindHTTP
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindHTTP:
		return fmt.Sprintf("http error: status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind. An HTTP target with a zero StatusCode matches any status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// Sentinels for errors.Is
var (
	ErrInvalidRequest  = &Error{Kind: KindInvalidRequest}
	ErrInvalidResponse = &Error{Kind: KindInvalidResponse}
	ErrHTTP            = &Error{Kind: KindHTTP}
	ErrNoData          = &Error{Kind: KindNoData}
	ErrDecoding        = &Error{Kind: KindDecoding}
	ErrUnknown         = &Error{Kind: KindUnknown}
)

// HTTPError builds the error for a non-2xx status
func HTTPError(statusCode int) *Error {
	return &Error{Kind: KindHTTP, StatusCode: statusCode}
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// KindOf returns the Kind carried by err, KindUnknown for foreign errors
// and KindNone for nil.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

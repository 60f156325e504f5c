package vo

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a load failed.
type ErrorKind string

const (
	ErrorKindNetwork        ErrorKind = "network_error"
	ErrorKindDecode         ErrorKind = "decode_error"
	ErrorKindInvalidRequest ErrorKind = "invalid_request"
)

var ErrNetwork = errors.New("network error")
var ErrDecode = errors.New("decode error")
var ErrInvalidRequest = errors.New("invalid request")

// LoadError is the failure delivered to a consumer. It matches the sentinel
// of its kind with errors.Is and unwraps to the underlying cause.
type LoadError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func NewLoadError(kind ErrorKind, url string, err error) *LoadError {
	return &LoadError{Kind: kind, URL: url, Err: err}
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.URL)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == ErrorKindNetwork
	case ErrDecode:
		return e.Kind == ErrorKindDecode
	case ErrInvalidRequest:
		return e.Kind == ErrorKindInvalidRequest
	default:
		return false
	}
}

// KindOf returns the ErrorKind carried by err, or "" when err is not a load error.
func KindOf(err error) ErrorKind {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Kind
	}
	return ""
}

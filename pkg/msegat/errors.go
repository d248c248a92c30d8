package msegat

import "fmt"

// ConfigError indicates that a required configuration field was missing or
// empty when the client was constructed.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("msegat: configuration field %s is required", e.Field)
}

// RequestError wraps a transport failure with the operation that triggered
// it, so callers can tell which gateway call failed while keeping the
// underlying cause reachable through errors.Is and errors.As.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

package server

import "fmt"

// BindError is returned when the listening socket cannot be acquired,
// e.g. because the port is in use or privileged.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

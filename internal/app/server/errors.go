package server

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPort            = errors.New("port must be between 1 and 65535")
	ErrEmptyGreeting          = errors.New("greeting must not be empty")
	ErrInvalidShutdownTimeout = errors.New("shutdown timeout must be positive")

	ErrAlreadyListening = errors.New("server is already listening")
	ErrNotListening     = errors.New("server is not listening")
	ErrServerClosed     = errors.New("server closed")
)

// BindError is returned when the listener can not acquire its address.
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

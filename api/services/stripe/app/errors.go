package app

import (
	"errors"
	"fmt"
)

// Typed errors for the Stripe app layer. These enable gRPC/HTTP mapping without
// relying on SDK-specific error types at the transport layer.
var (
	// ErrInvalidArgument indicates a caller input was rejected before any remote call.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRemote indicates the Stripe API call itself failed.
	ErrRemote = errors.New("remote error")
	// ErrIntegrity indicates a successful Stripe payload is missing a field callers rely on.
	ErrIntegrity = errors.New("integrity error")
	// ErrNotImplemented indicates the operation is disabled in this configuration.
	ErrNotImplemented = errors.New("not implemented")
)

// RemoteError carries a Stripe API failure unchanged. Error returns the remote
// message verbatim and Unwrap exposes the original error, so callers can still
// errors.As it into a *stripe.Error.
type RemoteError struct {
	Err error
}

func (e *RemoteError) Error() string { return e.Err.Error() }

func (e *RemoteError) Unwrap() error { return e.Err }

// Is reports ErrRemote as a match so callers can branch on the error kind.
func (e *RemoteError) Is(target error) bool { return target == ErrRemote }

func remote(err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{Err: err}
}

func invalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

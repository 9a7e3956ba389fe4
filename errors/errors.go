package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// ErrNotReady is returned when an operation is attempted before the entity
	// reached the state it requires, or after it left it.
	ErrNotReady = fmt.Errorf("not ready")
	// ErrNegotiationFailed marks a failed readiness or capability handshake.
	ErrNegotiationFailed = fmt.Errorf("negotiation failed")
	// ErrBackendUnavailable means no usable connection or transport exists.
	ErrBackendUnavailable = fmt.Errorf("backend unavailable")
	// ErrInvalidAddressing is returned for illegal channel or session addressing.
	ErrInvalidAddressing = fmt.Errorf("invalid addressing")
	// ErrInvalidated means the backend tore the entity down asynchronously.
	ErrInvalidated = fmt.Errorf("invalidated")

	ErrNegotiationTimeout  = fmt.Errorf("%w: pending messages not listed in time", ErrNegotiationFailed)
	ErrUnsupportedProtocol = fmt.Errorf("%w: protocol not supported", ErrInvalidAddressing)
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials")
	ErrLoopStopped         = fmt.Errorf("event loop stopped")
)

package connectivity

import "errors"

var (
	// ErrSignalUnavailable is returned by a [Prober] that could not produce
	// an answer. The monitor treats it as online.
	ErrSignalUnavailable = errors.New("connectivity signal unavailable")

	ErrNilProber = errors.New("prober is nil")
)

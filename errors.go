package memo

import "errors"

var (
	// ErrInvalidTimeoutType is returned when a timeout is not a finite number of milliseconds.
	ErrInvalidTimeoutType = errors.New("memo: timeout must be integer or float")

	// ErrInvalidTargetFunction is returned when the memoized function is nil.
	ErrInvalidTargetFunction = errors.New("memo: target must be a function")

	// ErrInvalidResolverFunction is returned when a resolver is supplied but nil.
	ErrInvalidResolverFunction = errors.New("memo: resolver must be a function")

	// ErrTargetPanicked is handed to callers that were waiting on a load whose target panicked.
	ErrTargetPanicked = errors.New("memo: target panicked")
)

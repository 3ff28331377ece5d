// Package retry bounds the rejection-sampling loops used throughout the
// curve engines. A loop that does not converge within its cap almost always
// means the curve parameters are wrong, so it fails instead of spinning.
package retry

import (
	"errors"
	"fmt"
)

// DefaultAttempts is the cap used when a caller passes a non-positive limit.
const DefaultAttempts = 1000

// ErrExhausted is returned when a draw does not converge within its cap.
var ErrExhausted = errors.New("retry attempts exhausted")

// Draw calls fn until it reports ok, returns an error, or the attempt cap is
// reached. The attempt index passed to fn starts at zero.
func Draw[T any](attempts int, fn func(attempt int) (T, bool, error)) (T, error) {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	var zero T
	for i := 0; i < attempts; i++ {
		v, ok, err := fn(i)
		if err != nil {
			return zero, err
		}
		if ok {
			return v, nil
		}
	}
	return zero, fmt.Errorf("%w after %d attempts", ErrExhausted, attempts)
}

package combo

import "errors"

// ErrLifecycle matches any LifecycleError with errors.Is.
var ErrLifecycle = errors.New("session used before construction")

// LifecycleError reports an operation on a Session that was not built by New.
// It is always a programming error.
type LifecycleError struct {
	Op string
}

func (e *LifecycleError) Error() string {
	return "combo: " + e.Op + ": " + ErrLifecycle.Error()
}

func (e *LifecycleError) Is(target error) bool {
	return target == ErrLifecycle
}

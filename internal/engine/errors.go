package engine

import (
	"errors"
	"fmt"
)

// Impossible is returned by actions that cannot be performed. The player
// is told why, and no game turn passes.
type Impossible struct {
	Reason string
}

func (e *Impossible) Error() string {
	return e.Reason
}

// Impossiblef builds an Impossible error from a format string.
func Impossiblef(format string, args ...any) error {
	return &Impossible{Reason: fmt.Sprintf(format, args...)}
}

// IsImpossible reports whether err is (or wraps) an Impossible error,
// returning the reason text when it is.
func IsImpossible(err error) (string, bool) {
	var imp *Impossible
	if errors.As(err, &imp) {
		return imp.Reason, true
	}
	return "", false
}

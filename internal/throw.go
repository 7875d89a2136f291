package internal

import "github.com/pkg/errors"

// Threading errors through the recursive sort and the scan would add noise to
// code that cannot fail for any input except an empty set. Instead, the
// engine panics with a HullError, and the public API recovers to convert it
// to an error.

type HullError error

var (
	ErrEmptySet = errors.New("point set is empty")
	ErrNotFound = errors.New("point not found")
)

func notFound(p Point) error {
	return errors.Wrapf(ErrNotFound, "%v", p)
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError(errors.Errorf(format, args...)))
}

// Panic with an existing error, keeping it comparable with errors.Is.
func throw(err error) {
	panic(HullError(errors.WithStack(err)))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}

package advanced

import "github.com/pkg/errors"

// Threading errors through every circle recomputation inside a flip or a split
// would clutter the mesh code considerably. Instead, the deep internals panic
// with a TriangulateError, and the public entry points recover and convert it
// back into an ordinary error.

type TriangulateError struct {
	err error
}

func (e TriangulateError) Error() string { return e.err.Error() }
func (e TriangulateError) Unwrap() error { return e.err }
func (e TriangulateError) Cause() error  { return e.err }

// Panic with a TriangulateError wrapping kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(kind, format, args...)})
}

// Panic with a TriangulateError if err is non-nil.
func must(err error) {
	if err != nil {
		panic(TriangulateError{err})
	}
}

// Convert a recovered TriangulateError into an error. Any other panic value is
// re-raised, since it indicates a real bug rather than bad input.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}

package wtree

import (
	"fmt"
)

// fileError carries an error out of a sequence of file steps.
type fileError struct {
	err error
}

// fileErrors returns a check function that aborts the steps of reading or
// writing the file at path on the first error, and a handle function to defer
// that stores that error in *errp, prefixed with path and the step. Other
// panics pass through.
func fileErrors(path string, errp *error) (check func(err error, step string), handle func()) {
	check = func(err error, step string) {
		if err != nil {
			panic(&fileError{fmt.Errorf("%s: %s: %w", path, step, err)})
		}
	}
	handle = func() {
		e := recover()
		if e == nil {
			return
		}
		fe, ok := e.(*fileError)
		if !ok {
			panic(e)
		}
		*errp = fe.err
	}
	return
}

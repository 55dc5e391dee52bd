package panicerr

import (
	"errors"
	"fmt"
)

// recoverExitError reports a goroutine that ended through runtime.Goexit
// (as testing.T.FailNow does) without sending a result or panicking.
func recoverExitError(name string, errch chan<- error) {
	select {
	case errch <- exitError{name}:
	default:
	}
}

type exitError struct{ name string }

func (xe exitError) Error() string {
	if xe.name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", xe.name)
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	return errors.As(err, new(exitError))
}

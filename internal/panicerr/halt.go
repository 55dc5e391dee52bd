package panicerr

import "fmt"

// Halt stops the goroutine running under Recover, unwinding its stack; the
// surrounding Recover call then returns err.
func Halt(err error) {
	panic(haltError{err})
}

// IsHalt returns true if v is a value raised by Halt; useful for callers that
// recover on their own.
func IsHalt(v interface{}) bool {
	_, is := v.(haltError)
	return is
}

type haltError struct{ error }

func (he haltError) Error() string {
	if he.error != nil {
		return fmt.Sprintf("halted: %v", he.error)
	}
	return "halted"
}

func (he haltError) Unwrap() error { return he.error }

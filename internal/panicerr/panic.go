package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// recoverPanicError turns whatever the goroutine panicked with into its
// result: the error carried by a Halt, or a panicError holding the stack.
func recoverPanicError(name string, errch chan<- error) {
	e := recover()
	if e == nil {
		return
	}
	err := haltedWith(e)
	if err == nil && !IsHalt(e) {
		err = panicError{name: name, value: e, stack: debug.Stack()}
	}
	select {
	case errch <- err:
	default:
	}
}

func haltedWith(e interface{}) error {
	if he, ok := e.(haltError); ok {
		return he.error
	}
	return nil
}

// panicError is an unexpected panic, recovered.
type panicError struct {
	name  string
	value interface{}
	stack []byte
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

// Format adds the panic stack under the %+v verb.
func (pe panicError) Format(f fmt.State, c rune) {
	who := "goroutine"
	if pe.name != "" {
		who = pe.name
	}
	fmt.Fprintf(f, "%v paniced: %v", who, pe.value)
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value when it was itself an error.
func (pe panicError) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool {
	return errors.As(err, new(panicError))
}

// PanicStack returns the stack trace of a recovered panic, or "" if err is
// not one.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}

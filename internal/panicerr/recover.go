package panicerr

// Recover runs f in a new goroutine wrapped in defer logic that converts any
// abnormal exit or panic into a non-nil error return. A panic raised by Halt
// is not treated as abnormal: Recover returns the error given to Halt, which
// may be nil for a normal halt.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}

package main

import (
	"errors"
	"fmt"
)

var (
	errStepLimit    = errors.New("step limit exceeded")
	errDumpOverflow = errors.New("dump stack overflow")
)

// malformedError reports a marker the grammar does not allow where it was
// found within a group.
type malformedError struct {
	pos  int
	mark marker
}

func (me malformedError) Error() string {
	return fmt.Sprintf("unexpected %q marker @%v", me.mark.String(), me.pos)
}

// indexError reports an application index beyond the environment.
type indexError struct {
	index int
	size  int
}

func (ie indexError) Error() string {
	return fmt.Sprintf("index %v out of range of %v environment values", ie.index, ie.size)
}

// typeError reports a builtin that needs a character applied to something else.
type typeError struct {
	op   string
	kind string
}

func (te typeError) Error() string {
	return fmt.Sprintf("%v applied to non-character %v value", te.op, te.kind)
}

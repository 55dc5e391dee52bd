package main

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/jcorbin/gograss/internal/byteio"
	"github.com/jcorbin/gograss/internal/flushio"
)

// VMOption configures a VM.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
)

// VMOptions combines any number of options into one, applied in order;
// nil options are ignored.
func VMOptions(opts ...VMOption) VMOption {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type closerOption struct{ io.Closer }
type stepLimitOption uint
type dumpLimitOption int

func withInput(r io.Reader) inputOption        { return inputOption{r} }
func withOutput(w io.Writer) outputOption      { return outputOption{w} }
func withTee(w io.Writer) teeOption            { return teeOption{w} }
func withCloser(c io.Closer) closerOption      { return closerOption{c} }
func withStepLimit(limit uint) stepLimitOption { return stepLimitOption(limit) }
func withDumpLimit(limit int) dumpLimitOption  { return dumpLimitOption(limit) }

func (i inputOption) apply(vm *VM) {
	vm.in = byteio.NewReader(i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (c closerOption) apply(vm *VM) {
	vm.closers = append(vm.closers, c.Closer)
}

func (lim stepLimitOption) apply(vm *VM) {
	vm.stepLimit = uint(lim)
}

func (lim dumpLimitOption) apply(vm *VM) {
	vm.dumpLimit = int(lim)
}

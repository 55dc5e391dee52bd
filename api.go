package main

import (
	"context"
	"io"

	"github.com/jcorbin/gograss/internal/panicerr"
)

// New creates a VM loaded with prog: its code queued, the builtin values in
// the environment, and the sentinel frame on the dump.
func New(prog *Program, opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	vm.load(prog)
	return &vm
}

// Run runs the VM until it halts, returning nil on a normal halt. Any fatal
// condition (index out of range, a builtin applied to the wrong kind of
// value, an exceeded limit, or ctx being done) is returned as an error.
func (vm *VM) Run(ctx context.Context) error {
	return panicerr.Recover("VM", func() error {
		vm.exec(ctx)
		return nil
	})
}

// Steps returns how many transitions the VM has performed.
func (vm *VM) Steps() uint { return vm.steps }

// Halted returns true once there is no code left to run and no frame left
// to return into.
func (vm *VM) Halted() bool { return vm.halted() }

func WithInput(r io.Reader) VMOption    { return withInput(r) }
func WithOutput(w io.Writer) VMOption   { return withOutput(w) }
func WithTee(w io.Writer) VMOption      { return withTee(w) }
func WithCloser(c io.Closer) VMOption   { return withCloser(c) }
func WithStepLimit(limit uint) VMOption { return withStepLimit(limit) }
func WithDumpLimit(limit int) VMOption  { return withDumpLimit(limit) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

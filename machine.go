package main

import (
	"context"

	"github.com/jcorbin/gograss/internal/panicerr"
)

// VM is a code/environment/dump machine. The code is a queue of pending
// instructions, the environment is the value stack that applications index
// into, and the dump is a stack of suspended callers. There is no return
// instruction: when the code queue drains, the machine returns into the
// topmost dump frame, carrying the top of the environment as the result.
// The machine halts when both the code queue and the dump are empty.
type VM struct {
	ioCore
	logging

	code []instruction
	env  env
	dump []frame

	steps     uint
	stepLimit uint
	dumpLimit int
}

func (vm *VM) load(prog *Program) {
	vm.code = prog.code
	vm.env = builtinEnv()
	vm.dump = []frame{sentinelFrame()}
	vm.steps = 0
}

func (vm *VM) halted() bool {
	return len(vm.code) == 0 && len(vm.dump) == 0
}

func (vm *VM) halt(err error) {
	if vm.out != nil {
		if ferr := vm.out.Flush(); err == nil {
			err = ferr
		}
	}
	if err == nil {
		vm.logf("#", "halt after %v steps", vm.steps)
	} else {
		vm.logf("#", "halt error: %v", err)
	}
	panicerr.Halt(err)
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *VM) exec(ctx context.Context) {
	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}

	for {
		vm.step()
		vm.haltif(ctx.Err())
	}
}

// step performs one transition: evaluate the front instruction, or return
// into the top dump frame once the code queue is empty.
func (vm *VM) step() {
	if vm.halted() {
		vm.halt(nil)
	}
	if limit := vm.stepLimit; limit != 0 && vm.steps >= limit {
		vm.halt(errStepLimit)
	}
	vm.steps++

	if len(vm.code) == 0 {
		vm.ret()
		return
	}

	in := vm.code[0]
	vm.code = vm.code[1:]
	if vm.logfn != nil {
		vm.logf(">", "%v -- env:%v dump:%v", in, vm.env.len(), len(vm.dump))
	}
	switch in := in.(type) {
	case abstraction:
		vm.abstract(in)
	case application:
		vm.apply(vm.lookup(in.fun), vm.lookup(in.arg))
	}
}

// abstract closes over the current environment; an abstraction of several
// parameters takes them one at a time, leaving a smaller abstraction as the
// closure's code.
func (vm *VM) abstract(abs abstraction) {
	c := closure{code: abs.body, env: vm.env}
	if abs.arity > 1 {
		c.code = []instruction{abstraction{abs.arity - 1, abs.body}}
	}
	vm.push(c)
}

func (vm *VM) lookup(i int) value {
	v, ok := vm.env.at(i)
	if !ok {
		vm.halt(indexError{i, vm.env.len()})
	}
	return v
}

func (vm *VM) push(v value) {
	vm.env = vm.env.push(v)
}

// apply applies f to arg; every variant but closure completes immediately,
// pushing its result.
func (vm *VM) apply(f, arg value) {
	switch f := f.(type) {
	case closure:
		vm.call(f, arg)

	case charFn:
		b, ok := byteOf(arg)
		vm.push(churchBool(ok && b == f.b))

	case outFn:
		vm.writeByte(vm.byteArg("out", arg))
		vm.push(arg)

	case inFn:
		if b, ok := vm.readByte(); ok {
			vm.push(charFn{b})
		} else {
			vm.push(arg)
		}

	case succFn:
		vm.push(charFn{vm.byteArg("succ", arg) + 1})
	}
}

func (vm *VM) byteArg(op string, arg value) byte {
	b, ok := byteOf(arg)
	if !ok {
		vm.halt(typeError{op, kindOf(arg)})
	}
	return b
}

// call suspends the caller onto the dump, and continues in the closure's
// code and environment, with arg pushed onto the latter.
func (vm *VM) call(c closure, arg value) {
	if limit := vm.dumpLimit; limit != 0 && len(vm.dump) >= limit {
		vm.halt(errDumpOverflow)
	}
	vm.dump = append(vm.dump, frame{vm.code, vm.env})
	vm.code = c.code
	vm.env = c.env.push(arg)
}

// ret resumes the top dump frame, pushing the top of the current environment
// onto the restored one.
func (vm *VM) ret() {
	i := len(vm.dump) - 1
	result := vm.lookup(1)
	fr := vm.dump[i]
	vm.dump[i] = frame{}
	vm.dump = vm.dump[:i]
	vm.logf("<", "return %v -- env:%v dump:%v", result, fr.env.len(), len(vm.dump))
	vm.code, vm.env = fr.code, fr.env
	vm.push(result)
}

func (vm *VM) writeByte(b byte) {
	vm.haltif(vm.out.WriteByte(b))
}

// readByte flushes any pending output, then reads one input byte; any
// read failure, including end of stream, reports !ok rather than halting.
func (vm *VM) readByte() (byte, bool) {
	vm.haltif(vm.out.Flush())
	b, err := vm.in.ReadByte()
	if err != nil {
		vm.logf("#", "read failed: %v", err)
		return 0, false
	}
	return b, true
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Disassemble writes prog's code, one instruction per line, with abstraction
// bodies indented under their abstraction.
func (prog *Program) Disassemble(w io.Writer) error {
	bw := bufio.NewWriter(w)
	disassemble(bw, prog.code, 0)
	return bw.Flush()
}

func disassemble(w *bufio.Writer, code []instruction, depth int) {
	for _, in := range code {
		for i := 0; i < depth; i++ {
			w.WriteByte('\t')
		}
		switch in := in.(type) {
		case abstraction:
			fmt.Fprintf(w, "abs %v\n", in.arity)
			disassemble(w, in.body, depth+1)
		case application:
			fmt.Fprintf(w, "app %v %v\n", in.fun, in.arg)
		}
	}
}

type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  steps: %v\n", dump.vm.steps)
	fmt.Fprintf(dump.out, "  code: %v\n", codeString(dump.vm.code))
	dump.dumpEnv("  ", dump.vm.env)
	dump.dumpFrames()
}

func (dump vmDumper) dumpEnv(indent string, e env) {
	fmt.Fprintf(dump.out, "%venv: %v\n", indent, e.len())
	vals := e.values()
	for i := len(vals) - 1; i >= 0; i-- {
		fmt.Fprintf(dump.out, "%v  @%v %v\n", indent, len(vals)-i, vals[i])
	}
}

func (dump vmDumper) dumpFrames() {
	fmt.Fprintf(dump.out, "  dump: %v\n", len(dump.vm.dump))
	for i := len(dump.vm.dump) - 1; i >= 0; i-- {
		fr := dump.vm.dump[i]
		fmt.Fprintf(dump.out, "  #%v code: %v\n", i, codeString(fr.code))
		dump.dumpEnv("    ", fr.env)
	}
}

func (dump vmDumper) String() string {
	var sb strings.Builder
	dump.out = &sb
	dump.dump()
	return sb.String()
}

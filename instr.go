package main

import (
	"strconv"
	"strings"
)

// instruction is a closed sum over abstraction and application; every
// consumer dispatches with an exhaustive type switch. Instructions, and the
// slices holding them, are never mutated once built, so sharing a body slice
// between closures is as good as copying it.
type instruction interface {
	String() string
	isInstruction()
}

// abstraction introduces arity curried parameters over body.
type abstraction struct {
	arity int
	body  []instruction
}

// application invokes the value fun positions from the top of the
// environment with the value arg positions from the top; both are 1-based.
type application struct {
	fun, arg int
}

func (abstraction) isInstruction() {}
func (application) isInstruction() {}

func (abs abstraction) String() string {
	var sb strings.Builder
	sb.WriteString("abs ")
	sb.WriteString(strconv.Itoa(abs.arity))
	if len(abs.body) > 0 {
		sb.WriteString(" {")
		writeCode(&sb, abs.body)
		sb.WriteString("}")
	}
	return sb.String()
}

func (app application) String() string {
	return "app " + strconv.Itoa(app.fun) + " " + strconv.Itoa(app.arg)
}

func writeCode(sb *strings.Builder, code []instruction) {
	for i, in := range code {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(in.String())
	}
}

func codeString(code []instruction) string {
	var sb strings.Builder
	sb.WriteByte('[')
	writeCode(&sb, code)
	sb.WriteByte(']')
	return sb.String()
}

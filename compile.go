package main

import (
	"fmt"

	"github.com/jcorbin/gograss/internal/source"
)

// Program is a compiled unit: the initial instruction queue. Loading it into
// a VM adds the builtin environment and the sentinel dump frame; a Program
// may be loaded any number of times.
type Program struct {
	Name string
	code []instruction
}

// Len returns the number of top-level instructions.
func (prog *Program) Len() int { return len(prog.code) }

// Compile compiles source text into a Program; it has no side effects.
func Compile(src string) (*Program, error) {
	var prog Program
	for i, group := range segment(lex(src)) {
		code, err := buildTerm(group)
		if err != nil {
			return nil, fmt.Errorf("group #%v: %w", i+1, err)
		}
		prog.code = append(prog.code, code...)
	}
	return &prog, nil
}

// CompileSource compiles a named source text.
func CompileSource(txt source.Text) (*Program, error) {
	prog, err := Compile(txt.Body)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", txt.Name, err)
	}
	prog.Name = txt.Name
	return prog, nil
}

// buildTerm converts one group into instructions: a group led by an argument
// marker is a single abstraction, one led by a function marker is a chain of
// applications.
func buildTerm(group []marker) ([]instruction, error) {
	if len(group) == 0 {
		return nil, nil
	}
	switch m := group[0]; m {
	case markArg:
		abs, err := buildAbstraction(group)
		if err != nil {
			return nil, err
		}
		return []instruction{abs}, nil
	case markFun:
		return buildApplication(group)
	default:
		return nil, malformedError{0, m}
	}
}

// buildAbstraction counts the leading argument markers as arity; everything
// from the first function marker on is the body.
func buildAbstraction(group []marker) (abs abstraction, _ error) {
	for i, m := range group {
		switch m {
		case markArg:
			abs.arity++
		case markFun:
			body, err := buildApplication(group[i:])
			if me, ok := err.(malformedError); ok {
				me.pos += i
				err = me
			}
			abs.body = body
			return abs, err
		default:
			return abs, malformedError{i, m}
		}
	}
	return abs, nil
}

// buildApplication chains applications: a run of function markers followed
// by a run of argument markers makes one node; the function marker that ends
// an argument run starts the next node, whose function is then the previous
// node's result on top of the environment. A trailing function run with no
// argument run after it makes no node.
func buildApplication(group []marker) (apps []instruction, _ error) {
	fun, arg := 0, 0
	for i, m := range group {
		switch m {
		case markArg:
			arg++
		case markFun:
			if arg == 0 {
				fun++
				continue
			}
			apps = append(apps, application{fun, arg})
			fun, arg = 1, 0
		default:
			return apps, malformedError{i, m}
		}
	}
	if fun > 0 && arg > 0 {
		apps = append(apps, application{fun, arg})
	}
	return apps, nil
}

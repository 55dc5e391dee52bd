package main

import (
	"fmt"

	"github.com/jcorbin/gograss/internal/byteio"
)

// value is a closed sum over the machine's runtime values: closures and the
// four builtins. See VM.apply for what applying each one does.
type value interface {
	String() string
	isValue()
}

// closure pairs code with the environment captured when it was created.
type closure struct {
	code []instruction
	env  env
}

// charFn carries a byte; applied to another character it answers a church
// boolean for equality.
type charFn struct{ b byte }

// inFn reads a byte from the input channel.
type inFn struct{}

// outFn writes its argument's byte to the output channel.
type outFn struct{}

// succFn answers the next byte, wrapping 255 to 0.
type succFn struct{}

func (closure) isValue() {}
func (charFn) isValue()  {}
func (inFn) isValue()    {}
func (outFn) isValue()   {}
func (succFn) isValue()  {}

func (c closure) String() string { return fmt.Sprintf("closure%v/%v", codeString(c.code), c.env.len()) }
func (c charFn) String() string  { return "char " + byteio.Quote(c.b) }
func (inFn) String() string      { return "in" }
func (outFn) String() string     { return "out" }
func (succFn) String() string    { return "succ" }

// kindOf names the variant of v for error messages.
func kindOf(v value) string {
	switch v.(type) {
	case closure:
		return "closure"
	case charFn:
		return "char"
	case inFn:
		return "in"
	case outFn:
		return "out"
	case succFn:
		return "succ"
	}
	return fmt.Sprintf("%T", v)
}

// byteOf returns the byte carried by v, if any.
func byteOf(v value) (byte, bool) {
	if c, ok := v.(charFn); ok {
		return c.b, true
	}
	return 0, false
}

// builtinEnv is the initial environment, bottom to top.
func builtinEnv() env {
	return envOf(
		inFn{},
		charFn{byte(markArg)},
		succFn{},
		outFn{},
	)
}

// A frame is a suspended caller saved on the dump.
type frame struct {
	code []instruction
	env  env
}

// sentinelFrame is the bottom of every initial dump: returning into it applies
// the program's final value to itself.
func sentinelFrame() frame {
	return frame{code: []instruction{application{1, 1}}}
}

// churchBool builds the boolean answered by a charFn comparison. True is
// λx.λy.x, encoded as a one parameter abstraction whose body applies an
// identity closure (captured below x) to x; false is λx.λy.y, whose inner
// body is empty so the second argument is returned as is.
func churchBool(b bool) closure {
	if b {
		identity := closure{}
		return closure{
			code: []instruction{abstraction{1, []instruction{application{3, 2}}}},
			env:  envOf(identity),
		}
	}
	return closure{code: []instruction{abstraction{arity: 1}}}
}

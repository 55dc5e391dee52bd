/* Package main: gograss, a compiler and machine for a language of three letters

Programs are written with just three letters: "w", "W" and "v". Everything
else in a source file is ignored, and so is everything before the first
lowercase "w", which leaves room for a header of arbitrary prose (even prose
containing uppercase W or v).

Section 1: Syntax

A lowercase "v" separates top-level groups; empty groups are dropped.

A group starting with "w" is an abstraction: its leading run of "w" counts
parameters, so "www" is a function of three (curried) parameters. The rest
of the group, starting at the first "W", is its body: a chain of
applications.

A group starting with "W" is a chain of applications at top level.

An application is a run of "W" followed by a run of "w": the number of "W"
indexes the function and the number of "w" indexes its argument. Indices
count back from the top of the environment, starting at 1. So "WWwww" applies
the second most recent value to the third most recent one. A "W" ending a run
of "w" starts the next application; a trailing run of "W" with no "w" after
it is ignored.

Section 2: Values

The environment starts out holding four builtin values, from bottom to top:

	In     reads a byte from input; at end of input it returns its argument
	w      the character 'w' (119); applied to a character it answers true if
	       they are the same, false otherwise
	Succ   answers the next character, wrapping 255 around to 0
	Out    writes its argument character to output and returns it

Booleans are church encoded: true selects the first of the next two
arguments it's applied to, false selects the second.

Every other value is a closure, created by evaluating an abstraction over the
current environment.

Section 3: The machine

The machine has three registers: a queue of code, the environment, and a
dump of suspended callers. Evaluating an abstraction pushes a closure;
evaluating an application applies the indexed function to the indexed
argument, pushing its result. Applying a closure suspends the current code
and environment onto the dump, then continues with the closure's code in the
closure's environment, with the argument pushed. When the code runs out, the
top of the environment is returned into the suspended caller.

The dump starts out holding one frame, whose code applies the top of the
environment to itself; so once a program's top-level code is done, its final
value is applied to itself before the machine halts.

For example, the default program:

	wWWwwww

Is one abstraction of one parameter, whose body applies Out (index 2) to w
(index 4), printing "w".
*/
package main

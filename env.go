package main

// env is the machine's value stack, addressed 1-based from the top. It is
// persistent: push returns a new env that shares every existing entry, so a
// closure captures its environment by copying an env value, and no later
// push by anyone can change what that closure sees.
type env struct {
	top  *envNode
	size int
}

type envNode struct {
	val  value
	next *envNode
}

func (e env) len() int { return e.size }

func (e env) push(v value) env {
	return env{&envNode{v, e.top}, e.size + 1}
}

// at returns the value i positions from the top; ok is false when i is out
// of range.
func (e env) at(i int) (v value, ok bool) {
	if i < 1 || i > e.size {
		return nil, false
	}
	n := e.top
	for ; i > 1; i-- {
		n = n.next
	}
	return n.val, true
}

// values returns a bottom-to-top copy of the stack.
func (e env) values() []value {
	vals := make([]value, e.size)
	i := e.size
	for n := e.top; n != nil; n = n.next {
		i--
		vals[i] = n.val
	}
	return vals
}

func envOf(vals ...value) (e env) {
	for _, v := range vals {
		e = e.push(v)
	}
	return e
}

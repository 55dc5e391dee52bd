package main

// A marker is one of the three significant source characters; every other
// character is commentary.
type marker byte

const (
	markArg marker = 'w' // argument marker: arity and argument index runs
	markFun marker = 'W' // function marker: function index runs
	markSep marker = 'v' // separator marker: ends a top-level group
)

func (m marker) String() string { return string(rune(m)) }

// lex reduces source text to its marker sequence. Nothing is retained until
// the first argument marker is seen, so any leading prose is a comment even
// when it contains W or v.
func lex(src string) []marker {
	var marks []marker
	started := false
	for _, r := range src {
		var m marker
		switch r {
		case 'w':
			m = markArg
			started = true
		case 'W':
			m = markFun
		case 'v':
			m = markSep
		default:
			continue
		}
		if started {
			marks = append(marks, m)
		}
	}
	return marks
}

// segment splits a marker sequence on separators into non-empty groups.
// Groups share the backing array of marks.
func segment(marks []marker) (groups [][]marker) {
	start := 0
	for i, m := range marks {
		if m != markSep {
			continue
		}
		if i > start {
			groups = append(groups, marks[start:i])
		}
		start = i + 1
	}
	if start < len(marks) {
		groups = append(groups, marks[start:])
	}
	return groups
}

package logio

import (
	"bytes"
	"sync"
)

// Writer turns a printf-style logging function, like testing.T.Logf, into an
// io.Writer: every complete line written becomes one Logf call, with any
// Prefix prepended. It is safe to write from several goroutines.
type Writer struct {
	Logf   func(string, ...interface{})
	Prefix string

	mu   sync.Mutex
	line []byte
}

// Write logs every line completed by p, holding any partial line until a
// later Write completes it or Close is called. It never fails.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			lw.line = append(lw.line, p...)
			break
		}
		lw.line = append(lw.line, p[:i]...)
		lw.emit()
		p = p[i+1:]
	}
	return n, nil
}

// Close logs any held partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.line) > 0 {
		lw.emit()
	}
	return nil
}

func (lw *Writer) emit() {
	lw.Logf("%s%s", lw.Prefix, lw.line)
	lw.line = lw.line[:0]
}

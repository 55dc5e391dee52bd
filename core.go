package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/gograss/internal/byteio"
	"github.com/jcorbin/gograss/internal/flushio"
)

// ioCore implements the machine's byte channels.
type ioCore struct {
	in      byteio.Reader
	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close closes anything handed to the VM for closing, latest first.
func (ioc *ioCore) Close() (err error) {
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}

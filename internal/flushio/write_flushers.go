package flushio

import "io"

// WriteFlushers tees any number of WriteFlushers into one. Writes go to each
// in turn, stopping at the first failure; Flush flushes every one, returning
// the first error. Nested tees are flattened and nils dropped; nil is
// returned when nothing remains.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var tee teeFlusher
	tee.add(wfs...)
	switch len(tee.wfs) {
	case 0:
		return nil
	case 1:
		return tee.wfs[0]
	}
	ws := make([]io.Writer, len(tee.wfs))
	for i, wf := range tee.wfs {
		ws[i] = wf
	}
	tee.Writer = io.MultiWriter(ws...)
	return tee
}

type teeFlusher struct {
	io.Writer
	wfs []WriteFlusher
}

func (tee *teeFlusher) add(wfs ...WriteFlusher) {
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case teeFlusher:
			tee.wfs = append(tee.wfs, impl.wfs...)
		default:
			tee.wfs = append(tee.wfs, wf)
		}
	}
}

func (tee teeFlusher) WriteByte(b byte) error {
	for _, wf := range tee.wfs {
		if err := wf.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

func (tee teeFlusher) Flush() (err error) {
	for _, wf := range tee.wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

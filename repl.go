package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jcorbin/gograss/internal/logio"
)

const (
	historyFile = ".gograss_history"
	replPrompt  = "grass> "
	replBanner  = "gograss interactive session; each line runs as its own program.\n" +
		"Ctrl+D exits. Type :help for commands."
	replHelp = `Commands:
  :dump    toggle printing each program's disassembly before running it
  :trace   toggle machine trace logging
  :help    show this help
  :quit    exit the session
`
)

func (cfg config) repl(ctx context.Context, opts []VMOption, logs *logio.Logger) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	sess := replSession{
		cfg:  cfg,
		opts: opts,
		out:  os.Stdout,
		logf: logs.Leveledf("TRACE"),
	}
	fmt.Fprintln(sess.out, replBanner)
	for {
		line, err := ln.Prompt(replPrompt)
		if err == liner.ErrPromptAborted {
			continue
		} else if err == io.EOF {
			fmt.Fprintln(sess.out)
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if sess.handle(ctx, line) {
			return nil
		}
	}
}

type replSession struct {
	cfg   config
	opts  []VMOption
	out   io.Writer
	logf  func(mess string, args ...interface{})
	dump  bool
	trace bool
}

// handle runs one line of input, returning true when the session should end.
func (sess *replSession) handle(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ":") {
		return sess.command(line)
	}
	sess.eval(ctx, line)
	return false
}

func (sess *replSession) command(cmd string) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":help":
		io.WriteString(sess.out, replHelp)
	case ":dump":
		sess.dump = !sess.dump
		fmt.Fprintf(sess.out, "dump %v\n", onOff(sess.dump))
	case ":trace":
		sess.trace = !sess.trace
		fmt.Fprintf(sess.out, "trace %v\n", onOff(sess.trace))
	default:
		fmt.Fprintf(sess.out, "unknown command %q; type :help for commands\n", cmd)
	}
	return false
}

func (sess *replSession) eval(ctx context.Context, src string) {
	prog, err := Compile(src)
	if err != nil {
		fmt.Fprintf(sess.out, "compile error: %v\n", err)
		return
	}
	if sess.dump {
		prog.Disassemble(sess.out)
	}

	var out bytes.Buffer
	opts := append(sess.opts[:len(sess.opts):len(sess.opts)], WithOutput(&out))
	if sess.trace && sess.logf != nil {
		opts = append(opts, WithLogf(sess.logf))
	}
	vm := New(prog, opts...)
	err = sess.cfg.runVM(ctx, vm)

	if out.Len() > 0 {
		out.WriteByte('\n')
		out.WriteTo(sess.out)
	}
	if err != nil {
		fmt.Fprintf(sess.out, "error: %v\n", err)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/gograss/internal/byteio"
	"github.com/jcorbin/gograss/internal/logio"
	"github.com/jcorbin/gograss/internal/source"
)

type config struct {
	timeout     time.Duration
	trace       bool
	dump        bool
	interactive bool
	stepLimit   uint
	dumpLimit   int
	inline      string
	input       string
	args        []string
}

func main() {
	ctx := context.Background()

	var cfg config
	flag.DurationVar(&cfg.timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&cfg.trace, "trace", false, "enable trace logging")
	flag.BoolVar(&cfg.dump, "dump", false, "print the compiled program rather than running it")
	flag.BoolVar(&cfg.interactive, "i", false, "run an interactive session")
	flag.UintVar(&cfg.stepLimit, "step-limit", 0, "enable a machine step limit")
	flag.IntVar(&cfg.dumpLimit, "dump-limit", 0, "enable a call dump depth limit")
	flag.StringVar(&cfg.inline, "e", "", "run the given program text")
	flag.StringVar(&cfg.input, "input", "", "read program input from a file rather than stdin")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] [FILE]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "runs FILE, or a built-in program printing %q when none is given\n", "w")
		flag.PrintDefaults()
	}
	flag.Parse()
	cfg.args = flag.Args()

	var logs logio.Logger
	logs.SetOutput(os.Stderr)
	logs.ErrorIf(cfg.run(ctx, &logs))
	os.Exit(logs.ExitCode())
}

func (cfg config) run(ctx context.Context, logs *logio.Logger) (rerr error) {
	opts, closeInput, err := cfg.vmOptions(logs)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeInput(); rerr == nil {
			rerr = cerr
		}
	}()

	if cfg.interactive {
		return cfg.repl(ctx, opts, logs)
	}

	txt, err := cfg.source()
	if err != nil {
		return err
	}
	prog, err := CompileSource(txt)
	if err != nil {
		return err
	}
	if cfg.dump {
		return prog.Disassemble(os.Stdout)
	}

	vm := New(prog, opts...)
	err = cfg.runVM(ctx, vm)
	if err != nil && cfg.trace {
		lw := logio.Writer{Logf: logs.Leveledf("DUMP")}
		vmDumper{vm: vm, out: &lw}.dump()
		lw.Close()
	}
	return err
}

func (cfg config) source() (source.Text, error) {
	switch {
	case cfg.inline != "":
		return source.Inline(cfg.inline), nil
	case len(cfg.args) > 0:
		return source.Load(cfg.args[0])
	default:
		return source.Default(), nil
	}
}

func (cfg config) vmOptions(logs *logio.Logger) (opts []VMOption, closeInput func() error, _ error) {
	closeInput = func() error { return nil }

	switch {
	case cfg.input != "":
		f, err := os.Open(cfg.input)
		if err != nil {
			return nil, closeInput, err
		}
		closeInput = f.Close
		// wrapped once, so that REPL runs share one input buffer
		opts = append(opts, WithInput(byteio.NewReader(f)))
	case cfg.interactive:
		// the terminal belongs to the line editor
	default:
		opts = append(opts, WithInput(os.Stdin))
	}

	opts = append(opts, WithOutput(os.Stdout))
	if cfg.trace {
		opts = append(opts, WithLogf(logs.Leveledf("TRACE")))
	}
	if cfg.stepLimit != 0 {
		opts = append(opts, WithStepLimit(cfg.stepLimit))
	}
	if cfg.dumpLimit != 0 {
		opts = append(opts, WithDumpLimit(cfg.dumpLimit))
	}
	return opts, closeInput, nil
}

// runVM runs vm until it halts, its time limit passes, or the process is
// interrupted. Only the first interrupt is caught: a VM blocked reading its
// input only notices cancellation after the read returns, so a second
// interrupt gets default handling.
func (cfg config) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()

	if cfg.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return vm.Run(ctx)
	})
	eg.Go(func() error {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt)
		defer signal.Stop(sigc)
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigc:
			return fmt.Errorf("interrupted by %v", sig)
		}
	})
	return eg.Wait()
}

package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// expectMethod matches the vmTestCase expectation builders that take
// arguments; each one gets a free function wrapper usable with
// vmTestCase.apply.
var expectMethod = regexp.MustCompile(`^func \(vmt vmTestCase\) expect(\w+)\((.+?)\) vmTestCase`)

type wrapper struct {
	what   string
	params string
	args   []string
}

func parseWrapper(line string) (w wrapper, ok bool) {
	match := expectMethod.FindStringSubmatch(line)
	if match == nil {
		return w, false
	}
	w.what, w.params = match[1], match[2]
	for _, param := range strings.Split(w.params, ",") {
		fields := strings.Fields(param)
		arg := fields[0]
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		w.args = append(w.args, arg)
	}
	return w, true
}

func (w wrapper) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "func expectVM%v(%v) func(vmTestCase) vmTestCase {\n", w.what, w.params)
	fmt.Fprintf(buf, "\treturn func(vmt vmTestCase) vmTestCase {\n")
	fmt.Fprintf(buf, "\t\treturn vmt.expect%v(%v)\n", w.what, strings.Join(w.args, ", "))
	fmt.Fprintf(buf, "\t}\n}\n\n")
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		log.Fatalf("usage: gen_vm_expects.go SOURCE_test.go OUTPUT_test.go")
	}
	srcName, outName := args[0], args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := generate(ctx, srcName, outName); err != nil {
		log.Fatalln(err)
	}
}

// generate scans srcName for expectation builders, piping wrapper code
// through gofmt into outName.
func generate(ctx context.Context, srcName, outName string) error {
	src, err := os.Open(srcName)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer out.Close()

	pr, pw := io.Pipe()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "gofmt")
		gofmt.Stdin = pr
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr
		if err := gofmt.Run(); err != nil {
			pr.CloseWithError(err)
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		defer func() { pw.CloseWithError(rerr) }()
		return scan(ctx, srcName, src, pw)
	})

	return eg.Wait()
}

func scan(ctx context.Context, srcName string, src io.Reader, w io.Writer) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package main\n\n")
	fmt.Fprintf(&buf, "// @generated from %v\n\n", srcName)
	fmt.Fprintf(&buf, "//go:generate go run scripts/gen_vm_expects.go -- %v\n\n", strings.Join(flag.Args(), " "))

	sc := bufio.NewScanner(src)
	for sc.Scan() {
		if wr, ok := parseWrapper(sc.Text()); ok {
			wr.writeTo(&buf)
		}
		if buf.Len() > 0 {
			if _, err := buf.WriteTo(w); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

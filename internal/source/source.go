package source

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/edsrzf/mmap-go"
)

// DefaultName names the built-in program text.
const DefaultName = "<default>"

// DefaultBody is the built-in program text used when no source is given:
// a one argument function that outputs the argument marker character.
const DefaultBody = "wWWwwww"

// Text is a named program text.
type Text struct {
	Name string
	Body string
}

func (txt Text) String() string { return fmt.Sprintf("%v (%v bytes)", txt.Name, len(txt.Body)) }

// Default returns the built-in program text.
func Default() Text { return Text{DefaultName, DefaultBody} }

// Inline names a program text given directly, e.g. on the command line.
func Inline(body string) Text { return Text{"<inline>", body} }

// Load reads the named file: regular files are memory mapped read-only and
// copied out, anything else (pipes, devices, empty files) is read in full.
// The name "-" reads standard input.
func Load(name string) (Text, error) {
	if name == "-" {
		return Read("<stdin>", os.Stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return Text{}, err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > 0 {
		return mapped(name, f)
	}
	return Read(name, f)
}

// Read reads all of r as a program text.
func Read(name string, r io.Reader) (Text, error) {
	body, err := ioutil.ReadAll(r)
	if err != nil {
		return Text{}, fmt.Errorf("failed to read %v: %w", name, err)
	}
	return Text{name, string(body)}, nil
}

func mapped(name string, f *os.File) (_ Text, rerr error) {
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return Text{}, fmt.Errorf("failed to map %v: %w", name, err)
	}
	defer func() {
		if uerr := m.Unmap(); rerr == nil && uerr != nil {
			rerr = fmt.Errorf("failed to unmap %v: %w", name, uerr)
		}
	}()
	return Text{name, string(m)}, nil
}

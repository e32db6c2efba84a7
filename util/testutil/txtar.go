package testutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Layout cases from a txtar archive: every "<name>.in" file is an input
// document and the following "<name>.out" file is the expected dump.
type Archive struct {
	Filename string // for errors
	Cases    []*Case
}

type Case struct {
	Name    string
	In, Out []byte
	Line    int // line of the ".in" header in the archive
}

func ParseArchive(src []byte, filename string) (*Archive, error) {
	tar := txtar.Parse(src)
	ar := &Archive{Filename: filename}

	line := countLines(tar.Comment) + 1
	var cur *Case
	for _, f := range tar.Files {
		switch {
		case strings.HasSuffix(f.Name, ".in"):
			if cur != nil {
				return nil, fmt.Errorf("%s:%d: missing %q", filename, cur.Line, cur.Name+".out")
			}
			cur = &Case{Name: strings.TrimSuffix(f.Name, ".in"), In: f.Data, Line: line}
		case strings.HasSuffix(f.Name, ".out"):
			if cur == nil || f.Name != cur.Name+".out" {
				return nil, fmt.Errorf("%s:%d: unexpected %q", filename, line, f.Name)
			}
			cur.Out = f.Data
			ar.Cases = append(ar.Cases, cur)
			cur = nil
		default:
			return nil, fmt.Errorf("%s:%d: bad file name %q", filename, line, f.Name)
		}
		line += 1 + countLines(f.Data)
	}
	if cur != nil {
		return nil, fmt.Errorf("%s:%d: missing %q", filename, cur.Line, cur.Name+".out")
	}
	return ar, nil
}

func ParseArchiveFile(filename string) (*Archive, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseArchive(src, filename)
}

//----------

// Runs fn with each case input, and compares the result with the expected
// output (see TrimLineSpaces). Stops on the first failed case.
func (ar *Archive) Run(t *testing.T, fn func(in []byte) (string, error)) {
	t.Helper()
	for _, c := range ar.Cases {
		ok := t.Run(c.Name, func(t2 *testing.T) {
			if err := c.check(fn); err != nil {
				t2.Fatalf("%s:%d: %v", ar.Filename, c.Line, err)
			}
		})
		if !ok {
			break
		}
	}
}

func (c *Case) check(fn func(in []byte) (string, error)) error {
	res, err := fn(c.In)
	if err != nil {
		return err
	}
	res2 := TrimLineSpaces(res)
	exp := TrimLineSpaces(string(c.Out))
	if res2 != exp {
		return fmt.Errorf("\n%s\nexpected:\n%s", res2, exp)
	}
	return nil
}

//----------

func countLines(b []byte) int {
	return bytes.Count(b, []byte("\n"))
}

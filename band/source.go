package band

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/just-hms/bandcheck/execx"
)

var errEmptyCommand = errors.New("empty command")

// Source is a named JSON document loader.
type Source struct {
	Name string
	Load func(ctx context.Context) ([]byte, error)
}

// FileSource reads the file at path; "-" reads stdin.
func FileSource(path string) Source {
	if path == "-" {
		return ReaderSource("stdin", os.Stdin)
	}
	return Source{
		Name: path,
		Load: func(context.Context) ([]byte, error) {
			return os.ReadFile(path)
		},
	}
}

// ReaderSource reads r to the end on the first Load; later loads return the
// same bytes.
func ReaderSource(name string, r io.Reader) Source {
	read := sync.OnceValues(func() ([]byte, error) {
		return io.ReadAll(r)
	})
	return Source{
		Name: name,
		Load: func(context.Context) ([]byte, error) {
			return read()
		},
	}
}

// CommandSource runs cmdline and uses its stdout as the document.
// An empty cmdline yields a Source whose Load fails.
func CommandSource(cmdline []string) Source {
	if len(cmdline) == 0 {
		return Source{
			Name: "exec",
			Load: func(context.Context) ([]byte, error) {
				return nil, errEmptyCommand
			},
		}
	}
	cmd := execx.Command(cmdline[0], cmdline[1:]...)
	return Source{
		Name: cmd.String(),
		Load: cmd.Output,
	}
}

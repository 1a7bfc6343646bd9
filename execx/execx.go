package execx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type Cmd struct {
	name string
	args []string
	dir  string
}

func Command(name string, arg ...string) *Cmd {
	return &Cmd{name: name, args: arg}
}

// Dir sets the working directory of the command.
func (c *Cmd) Dir(dir string) *Cmd {
	c.dir = dir
	return c
}

func (c *Cmd) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Output runs the command and returns its stdout.
// On failure stderr is flattened to a single line and used as the error.
func (c *Cmd) Output(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Dir = c.dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return out, fmt.Errorf("%s: %w", c, err)
		}
		return out, fmt.Errorf("%s: %s", c, strings.ReplaceAll(msg, "\n", "\\n"))
	}

	return out, nil
}

package execx_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/just-hms/bandcheck/execx"
	"github.com/stretchr/testify/require"
)

func TestOutput(t *testing.T) {
	t.Parallel()

	out, err := execx.Command("sh", "-c", `printf '{"cpu": 42}'`).Output(context.Background())
	require.NoError(t, err)
	require.Equal(t, `{"cpu": 42}`, string(out))
}

func TestOutputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, err := execx.Command("pwd").Dir(dir).Output(context.Background())
	require.NoError(t, err)
	require.Contains(t, string(out), filepath.Base(dir))
}

func TestOutputFlattensStderr(t *testing.T) {
	t.Parallel()

	_, err := execx.Command("sh", "-c", "echo first >&2; echo second >&2; exit 3").Output(context.Background())
	require.Error(t, err)
	require.Equal(t, `sh -c echo first >&2; echo second >&2; exit 3: first\nsecond`, err.Error())
}

func TestOutputWithoutStderr(t *testing.T) {
	t.Parallel()

	_, err := execx.Command("sh", "-c", "exit 4").Output(context.Background())
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 4, exitErr.ExitCode())
}

func TestOutputCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := execx.Command("sleep", "5").Output(ctx)
	require.Error(t, err)
}

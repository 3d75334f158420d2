package wrapped

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
)

// Runner executes the wrapped tool.
type Runner struct {
	// Bin is the executable name or path, e.g. "cargo".
	Bin string

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a runner for bin wired to the process streams.
func New(bin string) *Runner {
	return &Runner{Bin: bin}
}

// Run executes the tool with args and the current environment plus env, and
// returns the exit code it should be mirrored with. The error is non-nil only
// when the process could not be started or waited for.
func (r *Runner) Run(ctx context.Context, args []string, env map[string]string) (int, error) {
	cmd := exec.CommandContext(ctx, r.Bin, args...)
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	if len(env) > 0 {
		merged := os.Environ()
		for k, v := range env {
			merged = setEnv(merged, k, v)
		}
		cmd.Env = merged
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ExitCode(exitErr.ExitCode()), nil
	}
	return 1, eris.Wrapf(err, "executing %s", r.Bin)
}

// Version runs `<bin> --version` and returns its trimmed stdout.
func (r *Runner) Version(ctx context.Context) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Bin, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", eris.Errorf("%s --version exited with code %d: %s",
				r.Bin, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return "", eris.Wrapf(err, "executing %s --version", r.Bin)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ExitCode maps a child exit status to ours. A negative code means the child
// was terminated by a signal, which is reported as 1.
func ExitCode(code int) int {
	if code < 0 {
		return 1
	}
	return code
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

func orReader(r, fallback io.Reader) io.Reader {
	if r == nil {
		return fallback
	}
	return r
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

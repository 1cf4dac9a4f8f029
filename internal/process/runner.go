package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrLaunch marks errors from tools that could not be started.
var ErrLaunch = errors.New("cannot launch external tool")

// maxStderr bounds how much of a tool's stderr is kept for error messages.
const maxStderr = 4 << 10

// Command describes one external tool invocation.
type Command struct {
	// Name is the executable, looked up in PATH when it has no separator.
	Name string

	// Args are passed to the tool verbatim.
	Args []string

	// Stdout receives the tool's standard output. Nil discards it.
	Stdout io.Writer
}

// String renders the command line for log messages.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes external commands.
//
// Run blocks until the command exits. It returns an error wrapping ErrLaunch
// when the command cannot be started and an *ExitError when it exits with a
// non-zero status.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a tool that ran but exited unsuccessfully.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// IsExitError reports whether err is, or wraps, an *ExitError.
func IsExitError(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// ExecRunner runs commands as child processes using os/exec.
type ExecRunner struct{}

// NewRunner creates a Runner backed by os/exec.
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts c, copies its stdout to c.Stdout and waits for it to exit.
//
// The child is killed if ctx is cancelled; in that case the context error is
// returned.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = c.Stdout

	stderr := &tailBuffer{limit: maxStderr}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrLaunch, c.Name, err)
	}

	err := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", c.Name, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Name: c.Name, Code: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return fmt.Errorf("wait for %s: %w", c.Name, err)
	}
	return nil
}

// Output runs the named tool and returns everything it wrote to stdout.
//
// The output is returned even when the tool exits non-zero, together with
// the *ExitError.
func Output(ctx context.Context, r Runner, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	err := r.Run(ctx, Command{Name: name, Args: args, Stdout: &stdout})
	return stdout.Bytes(), err
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	buf   []byte
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}

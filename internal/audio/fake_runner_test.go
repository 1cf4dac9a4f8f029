package audio

import (
	"context"
	"fmt"

	"github.com/handiism/flac2mp3/internal/process"
)

// scriptedRunner answers every command with fixed stdout and error.
type scriptedRunner struct {
	stdout string
	err    error
	calls  []process.Command
}

func (r *scriptedRunner) Run(ctx context.Context, cmd process.Command) error {
	r.calls = append(r.calls, cmd)
	if cmd.Stdout != nil {
		fmt.Fprint(cmd.Stdout, r.stdout)
	}
	return r.err
}

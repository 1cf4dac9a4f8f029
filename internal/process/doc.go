// Package process runs the external tools flac2mp3 delegates to.
//
// The decoder, encoder and metadata tools are black boxes reached through
// the Runner interface, which executes one command, streams its standard
// output to a writer and waits for it to exit. Tests substitute a fake
// Runner; production code uses ExecRunner.
//
// # Errors
//
// Run distinguishes two failure kinds:
//
//	err := runner.Run(ctx, process.Command{Name: "lame", Args: args})
//	switch {
//	case errors.Is(err, process.ErrLaunch):
//	    // the tool could not be started at all
//	case process.IsExitError(err):
//	    // the tool ran but exited non-zero
//	}
//
// # Capturing Output
//
//	text, err := process.Output(ctx, runner, "metaflac", "--list", path)
package process

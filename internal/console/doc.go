// Package console renders transcoding progress events for a terminal.
//
// Each level gets a styled prefix; colors are dropped automatically when the
// output is not a terminal:
//
//	printer := console.NewPrinter(os.Stdout, os.Stderr, verbose)
//	manager := transcode.NewManager(settings, workers, runner, printer.Handle)
package console

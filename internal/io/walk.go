package ioutils

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
)

// WalkOptions controls directory traversal.
type WalkOptions struct {
	// FollowLinks makes symbolic links count as whatever they point to.
	// When false, links are skipped entirely, even links to regular files.
	FollowLinks bool

	// OnError is called for every directory that cannot be listed and every
	// followed link that cannot be resolved. The walk continues either way.
	OnError func(path string, err error)
}

// Walk returns the absolute paths of all regular files under root.
//
// A root that is missing or unreadable yields an empty slice, not an error.
func Walk(root string, opts WalkOptions) []string {
	return slices.AppendSeq([]string{}, Files(root, opts))
}

// Files returns a lazy sequence over the regular files under root, in the
// order Walk returns them. Each range over the sequence walks the tree again.
//
// Traversal uses an explicit stack, so tree depth is not bounded by the
// goroutine stack.
func Files(root string, opts WalkOptions) iter.Seq[string] {
	return func(yield func(string) bool) {
		abs, err := filepath.Abs(root)
		if err != nil {
			opts.reportError(root, err)
			return
		}

		// Pending paths in reverse visiting order; children of a directory
		// are pushed last-first so they pop in listing order.
		stack := opts.children(abs)
		for len(stack) > 0 {
			path := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			info, err := os.Lstat(path)
			if err != nil {
				opts.reportError(path, err)
				continue
			}

			if info.Mode()&os.ModeSymlink != 0 {
				if !opts.FollowLinks {
					continue
				}
				info, err = os.Stat(path)
				if err != nil {
					opts.reportError(path, err)
					continue
				}
			}

			switch {
			case info.IsDir():
				stack = append(stack, opts.children(path)...)
			case info.Mode().IsRegular():
				if !yield(path) {
					return
				}
			}
		}
	}
}

// children lists dir and returns its entries as absolute paths in reverse
// listing order. An unreadable directory has no children.
func (o WalkOptions) children(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		o.reportError(dir, err)
		return nil
	}

	paths := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		paths = append(paths, filepath.Join(dir, entries[i].Name()))
	}
	return paths
}

func (o WalkOptions) reportError(path string, err error) {
	if o.OnError != nil {
		o.OnError(path, err)
	}
}

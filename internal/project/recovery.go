package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/reactkit/create-react-app/internal/errs"
	"github.com/reactkit/create-react-app/internal/output"
	"github.com/spf13/afero"
)

// Recovery undoes a failed install: it removes GeneratedArtifacts from the
// target and, if that leaves the target empty, the target itself.
type Recovery struct {
	fs     afero.Fs
	out    *output.Printer
	logger *slog.Logger
	chdir  func(string) error
}

// RecoveryOption configures a Recovery.
type RecoveryOption func(*Recovery)

// WithChdir replaces os.Chdir, used to leave the target before removing it.
func WithChdir(fn func(string) error) RecoveryOption {
	return func(r *Recovery) {
		r.chdir = fn
	}
}

// NewRecovery returns a Recovery over fs.
func NewRecovery(fs afero.Fs, out *output.Printer, logger *slog.Logger, opts ...RecoveryOption) *Recovery {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Recovery{fs: fs, out: out, logger: logger, chdir: os.Chdir}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recover reports cause and cleans root. It is the last thing a failed run
// does; the caller exits with status 1 afterwards. Cleanup is best effort:
// problems are reported and do not stop the remaining steps.
func (r *Recovery) Recover(root, appName string, cause error) {
	r.out.Blank()
	r.out.Info("Aborting installation.")
	if cmd, ok := errs.CommandOf(cause); ok {
		r.out.Println("  " + output.Cyan(cmd) + " has failed.")
	} else {
		r.out.Error("Unexpected error. Please report it as a bug:")
		r.out.Println(cause)
	}
	r.Clean(root, appName)
	r.out.Info("Done.")
}

// Clean deletes the GeneratedArtifacts present in root and removes root
// when nothing else is left. It is used on its own for failures whose
// reason has already been printed.
func (r *Recovery) Clean(root, appName string) {
	entries, err := List(r.fs, root)
	if err != nil {
		r.logger.Warn("cannot list project directory", "dir", root, "error", err)
		return
	}
	for _, name := range entries {
		if !slices.Contains(GeneratedArtifacts, name) {
			continue
		}
		r.out.Println("Deleting generated file... " + output.Cyan(name))
		if err := r.fs.RemoveAll(filepath.Join(root, name)); err != nil {
			r.logger.Warn("cannot delete generated file", "file", name, "error", err)
		}
	}

	remaining, err := List(r.fs, root)
	if err == nil && len(remaining) == 0 {
		parent := filepath.Dir(root)
		r.out.Println(fmt.Sprintf("Deleting %s from %s", output.Cyan(appName+"/"), output.Cyan(parent)))
		if err := r.chdir(parent); err != nil {
			r.logger.Warn("cannot change directory", "dir", parent, "error", err)
		}
		if err := r.fs.RemoveAll(root); err != nil {
			r.logger.Warn("cannot delete project directory", "dir", root, "error", err)
		}
	}
}

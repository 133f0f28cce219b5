package project

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/reactkit/create-react-app/internal/errs"
	"github.com/reactkit/create-react-app/internal/output"
	"github.com/spf13/afero"
)

// Guard decides whether a directory is safe to scaffold into.
type Guard struct {
	fs     afero.Fs
	out    *output.Printer
	logger *slog.Logger
}

// NewGuard returns a Guard over fs that reports conflicts to out.
func NewGuard(fs afero.Fs, out *output.Printer, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Guard{fs: fs, out: out, logger: logger}
}

// Ensure creates root if it does not exist yet.
func (g *Guard) Ensure(root string) error {
	if err := g.fs.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating project directory %s: %w", root, err)
	}
	return nil
}

// Check lists root and fails with DirectoryNotSafe if it holds anything that
// is neither a safe entry nor a stale installer log. On success it deletes
// the stale logs. displayName is the directory as the user typed it.
func (g *Guard) Check(root, displayName string) error {
	entries, err := List(g.fs, root)
	if err != nil {
		return fmt.Errorf("reading %s: %w", root, err)
	}

	conflicts, staleLogs := Partition(entries)
	if len(conflicts) > 0 {
		g.out.Println("The directory " + output.Green(displayName) + " contains files that could conflict:")
		g.out.Blank()
		for _, name := range conflicts {
			g.out.Println("  " + name)
		}
		g.out.Blank()
		g.out.Println("Either try using a new directory name, or remove the files listed above.")
		return errs.New(errs.DirectoryNotSafe, displayName, conflicts...)
	}

	for _, name := range staleLogs {
		g.logger.Debug("removing stale installer log", "file", name)
		if err := g.fs.RemoveAll(filepath.Join(root, name)); err != nil {
			return fmt.Errorf("removing stale log %s: %w", name, err)
		}
	}
	return nil
}

package toolchain

import (
	"context"

	"github.com/reactkit/create-react-app/internal/errs"
)

// Installer adds the project dependencies with the chosen package manager.
type Installer struct {
	runner *Runner
}

// NewInstaller returns an Installer that spawns through runner.
func NewInstaller(runner *Runner) *Installer {
	return &Installer{runner: runner}
}

// InstallCommand returns the command line that installs deps.
func InstallCommand(kind Kind, online bool, deps []string) (string, []string) {
	if kind == Yarn {
		args := []string{"add", "--exact"}
		if !online {
			args = append(args, "--offline")
		}
		return "yarn", append(args, deps...)
	}
	args := []string{"install", "--save", "--save-exact", "--loglevel", "error"}
	return "npm", append(args, deps...)
}

// Install runs the install command for Dependencies in root and waits for
// it. Any failure, including one to start the package manager, is reported
// as InstallFailed with the full command line.
func (i *Installer) Install(ctx context.Context, root string, kind Kind, online bool) error {
	name, args := InstallCommand(kind, online, Dependencies)
	if err := i.runner.Run(ctx, root, name, args...); err != nil {
		return errs.Command(errs.InstallFailed, CommandLine(name, args...), err)
	}
	return nil
}

package toolchain

import (
	"context"
	"log/slog"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/reactkit/create-react-app/internal/errs"
	"github.com/reactkit/create-react-app/internal/output"
	"github.com/reactkit/create-react-app/internal/platform"
)

// MinNpmVersion is the oldest npm that can install a project.
const MinNpmVersion = "5.0.0"

const npmCwdPrefix = "; cwd = "

// Selector decides between npm and yarn and checks that the chosen tool can
// be used from the project root.
type Selector struct {
	runner *Runner
	out    *output.Printer
	logger *slog.Logger
	goos   string
}

// NewSelector returns a Selector that runs its probes through runner.
func NewSelector(runner *Runner, out *output.Printer, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Selector{runner: runner, out: out, logger: logger, goos: goruntime.GOOS}
}

// Select returns the package manager for this run. An explicit --use-npm
// always wins, --use-yarn forces yarn, and otherwise yarn is used when
// `yarn --version` succeeds.
func (s *Selector) Select(ctx context.Context, useNpm, useYarn bool) Kind {
	switch {
	case useNpm:
		return Npm
	case useYarn:
		return Yarn
	}
	if s.runner.Succeeds(ctx, "", "yarn", "--version") {
		s.logger.Debug("yarn is available")
		return Yarn
	}
	s.logger.Debug("yarn is not available, falling back to npm")
	return Npm
}

// CheckCwd verifies that an npm process started in root actually runs
// there. Misconfigured shells can silently move it elsewhere, which would
// make npm install into the wrong directory. The check passes when npm
// cannot be spawned or does not report its working directory.
func (s *Selector) CheckCwd(ctx context.Context, root string) error {
	out, err := s.runner.Output(ctx, root, "npm", "config", "list")
	if out == "" && err != nil {
		s.logger.Debug("skipping npm cwd check", "error", err)
		return nil
	}

	npmCwd, ok := findNpmCwd(out)
	if !ok || samePath(npmCwd, root) {
		return nil
	}

	s.out.Error("Could not start an npm process in the right directory.")
	s.out.Blank()
	s.out.Error("The current directory is: " + output.Bold(root))
	s.out.Error("However, a newly started npm process runs in: " + output.Bold(npmCwd))
	s.out.Blank()
	s.out.Error("This is probably caused by a misconfigured system terminal shell.")
	if s.goos == "windows" {
		s.printWindowsRemediation()
	}
	return errs.New(errs.CwdMismatch, npmCwd)
}

func (s *Selector) printWindowsRemediation() {
	s.out.Error("On Windows, this can usually be fixed by running:")
	s.out.Blank()
	for _, args := range platform.AutoRunRemediation() {
		s.out.Println("  " + output.Cyan("reg") + " " + args)
	}
	s.out.Blank()
	s.out.Error("Try to run the above two lines in the terminal.")
	s.out.Error("To learn more about this problem, read: " + platform.AutoRunHelpURL)
}

// CheckNpmVersion rejects npm releases older than MinNpmVersion. Output that
// cannot be read as a version passes.
func (s *Selector) CheckNpmVersion(ctx context.Context) error {
	out, err := s.runner.Output(ctx, "", "npm", "--version")
	if err != nil {
		s.logger.Debug("skipping npm version check", "error", err)
		return nil
	}

	raw := strings.TrimSpace(out)
	version, err := semver.NewVersion(raw)
	if err != nil {
		s.logger.Debug("unreadable npm version", "output", raw)
		return nil
	}

	if version.LessThan(semver.MustParse(MinNpmVersion)) {
		s.out.Error("You are using npm " + raw + ". Please update to npm 5 or higher for a better, fully supported experience.")
		return errs.New(errs.ToolchainTooOld, raw)
	}
	return nil
}

func findNpmCwd(out string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, npmCwdPrefix) {
			return strings.TrimRight(line[len(npmCwdPrefix):], "\r"), true
		}
	}
	return "", false
}

func samePath(a, b string) bool {
	if a == b {
		return true
	}
	ra, errA := filepath.EvalSymlinks(a)
	rb, errB := filepath.EvalSymlinks(b)
	return errA == nil && errB == nil && ra == rb
}

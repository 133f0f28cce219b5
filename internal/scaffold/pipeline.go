package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/reactkit/create-react-app/internal/errs"
	"github.com/reactkit/create-react-app/internal/manifest"
	"github.com/reactkit/create-react-app/internal/naming"
	"github.com/reactkit/create-react-app/internal/output"
	"github.com/reactkit/create-react-app/internal/project"
	"github.com/reactkit/create-react-app/internal/runtime"
	"github.com/reactkit/create-react-app/internal/telemetry"
	"github.com/reactkit/create-react-app/internal/toolchain"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Request is what the user asked for on the command line.
type Request struct {
	// Name is the project directory as typed. Its base name becomes the
	// package name.
	Name    string
	UseNpm  bool
	UseYarn bool
}

// Result describes a successful run.
type Result struct {
	Root      string
	AppName   string
	Toolchain toolchain.Kind
	Online    bool
	// LockSeeded is true when the cached yarn.lock was copied in.
	LockSeeded bool
}

// Selector picks and checks the package manager.
type Selector interface {
	Select(ctx context.Context, useNpm, useYarn bool) toolchain.Kind
	CheckCwd(ctx context.Context, root string) error
	CheckNpmVersion(ctx context.Context) error
}

// Prober decides whether the install can go online.
type Prober interface {
	Online(ctx context.Context, kind toolchain.Kind) bool
}

// Installer adds the dependencies to root.
type Installer interface {
	Install(ctx context.Context, root string, kind toolchain.Kind, online bool) error
}

// LockSeeder copies a cached lock file into root for yarn runs.
type LockSeeder func(ctx context.Context, root string) (bool, error)

// Components wires the steps of a Pipeline. Every field except Logger and
// Getwd is required.
type Components struct {
	Fs        afero.Fs
	Out       *output.Printer
	Logger    *slog.Logger
	Selector  Selector
	Probe     Prober
	Installer Installer
	SeedLock  LockSeeder
	Delegator runtime.Delegator
	// Chdir is used by recovery to leave the target before removing it.
	Chdir func(string) error
	Getwd func() (string, error)
}

// Pipeline runs one scaffolding request.
type Pipeline struct {
	fs        afero.Fs
	out       *output.Printer
	logger    *slog.Logger
	guard     *project.Guard
	recovery  *project.Recovery
	patcher   *manifest.Patcher
	selector  Selector
	probe     Prober
	installer Installer
	seedLock  LockSeeder
	delegator runtime.Delegator
	getwd     func() (string, error)
	tracer    trace.Tracer
}

// New assembles a Pipeline from c.
func New(c Components) *Pipeline {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	getwd := c.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	var recoveryOpts []project.RecoveryOption
	if c.Chdir != nil {
		recoveryOpts = append(recoveryOpts, project.WithChdir(c.Chdir))
	}
	return &Pipeline{
		fs:        c.Fs,
		out:       c.Out,
		logger:    logger,
		guard:     project.NewGuard(c.Fs, c.Out, logger),
		recovery:  project.NewRecovery(c.Fs, c.Out, logger, recoveryOpts...),
		patcher:   manifest.NewPatcher(c.Fs, c.Out),
		selector:  c.Selector,
		probe:     c.Probe,
		installer: c.Installer,
		seedLock:  c.SeedLock,
		delegator: c.Delegator,
		getwd:     getwd,
		tracer:    telemetry.Tracer(),
	}
}

// Run executes req. Every error it returns has already been reported to
// the user; see Reported.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "scaffold.run", trace.WithAttributes(attribute.String("project.name", req.Name)))
	defer span.End()

	res, err := p.run(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return res, err
}

func (p *Pipeline) run(ctx context.Context, req Request) (*Result, error) {
	originalDir, err := p.getwd()
	if err != nil {
		return nil, p.unexpected(fmt.Errorf("resolving working directory: %w", err))
	}
	root := req.Name
	if !filepath.IsAbs(root) {
		root = filepath.Join(originalDir, root)
	}
	root = filepath.Clean(root)
	res := &Result{Root: root, AppName: filepath.Base(root)}
	p.logger.Debug("resolved project", "root", root, "app", res.AppName, "cwd", originalDir)

	err = p.step(ctx, "validate-name", func(context.Context) error {
		return naming.Validate(res.AppName, toolchain.Dependencies)
	})
	if err != nil {
		p.reportName(res.AppName, err)
		return nil, reported{err}
	}

	err = p.step(ctx, "guard-directory", func(context.Context) error {
		if err := p.guard.Ensure(root); err != nil {
			return err
		}
		return p.guard.Check(root, req.Name)
	})
	if err != nil {
		if errs.KindOf(err) == errs.DirectoryNotSafe {
			return nil, reported{err}
		}
		return nil, p.unexpected(err)
	}

	p.out.Blank()
	p.out.Println("Creating a new React app in " + output.Green(root) + ".")
	p.out.Blank()

	if err := p.step(ctx, "write-manifest", func(context.Context) error {
		return manifest.WriteInitial(p.fs, root, res.AppName)
	}); err != nil {
		return nil, p.unexpected(err)
	}

	res.Toolchain = p.selector.Select(ctx, req.UseNpm, req.UseYarn)
	p.logger.Debug("selected toolchain", "toolchain", res.Toolchain.String())

	if res.Toolchain == toolchain.Npm {
		err = p.step(ctx, "check-npm", func(ctx context.Context) error {
			if err := p.selector.CheckCwd(ctx, root); err != nil {
				return err
			}
			return p.selector.CheckNpmVersion(ctx)
		})
		if err != nil {
			p.recovery.Clean(root, res.AppName)
			return nil, reported{err}
		}
	} else {
		err = p.step(ctx, "seed-lockfile", func(ctx context.Context) error {
			seeded, err := p.seedLock(ctx, root)
			res.LockSeeded = seeded
			return err
		})
		if err != nil {
			err = p.unexpected(err)
			p.recovery.Clean(root, res.AppName)
			return nil, err
		}
	}

	if err := p.install(ctx, res, originalDir); err != nil {
		p.recovery.Recover(root, res.AppName, err)
		return nil, reported{err}
	}
	return res, nil
}

// install covers every step that runs under recovery.
func (p *Pipeline) install(ctx context.Context, res *Result, originalDir string) error {
	p.out.Info("Installing packages. This might take a couple of minutes.")

	_ = p.step(ctx, "probe-registry", func(ctx context.Context) error {
		res.Online = p.probe.Online(ctx, res.Toolchain)
		return nil
	})

	p.out.Println(fmt.Sprintf("Installing %s, %s, and %s...",
		output.Cyan(toolchain.Dependencies[0]), output.Cyan(toolchain.Dependencies[1]), output.Cyan(toolchain.Dependencies[2])))
	p.out.Blank()

	if err := p.step(ctx, "install", func(ctx context.Context) error {
		return p.installer.Install(ctx, res.Root, res.Toolchain, res.Online)
	}); err != nil {
		return err
	}

	if err := p.step(ctx, "patch-manifest", func(context.Context) error {
		path := filepath.Join(res.Root, manifest.FileName)
		return p.patcher.PatchRuntimeRanges(path, toolchain.DelegationTarget, toolchain.CaretPackages...)
	}); err != nil {
		return err
	}

	return p.step(ctx, "delegate", func(ctx context.Context) error {
		data := runtime.InitArgs(res.Root, res.AppName, originalDir)
		return p.delegator.Delegate(ctx, res.Root, data, runtime.InitSource(toolchain.DelegationTarget))
	})
}

// step runs fn inside a span named step.<name>.
func (p *Pipeline) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, "step."+name, trace.WithAttributes(attribute.String("step.name", name)))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("step.error_kind", errs.KindOf(err).String()))
		return err
	}
	return nil
}

func (p *Pipeline) unexpected(err error) error {
	p.out.Error(err.Error())
	return reported{err}
}

// reported marks an error whose message has already been printed.
type reported struct {
	err error
}

func (r reported) Error() string { return r.err.Error() }
func (r reported) Unwrap() error { return r.err }

// Reported reports whether err was already shown to the user by Run.
func Reported(err error) bool {
	var r reported
	return errors.As(err, &r)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/reactkit/create-react-app/internal/branding"
	"github.com/reactkit/create-react-app/internal/config"
	"github.com/reactkit/create-react-app/internal/output"
	"github.com/reactkit/create-react-app/internal/runtime"
	"github.com/reactkit/create-react-app/internal/scaffold"
	"github.com/reactkit/create-react-app/internal/telemetry"
	"github.com/reactkit/create-react-app/internal/toolchain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	useNpm    bool
	useYarn   bool
	verbose   bool
	traceFile string
)

// errMissingProjectDir is returned after the usage hint has been printed.
var errMissingProjectDir = errors.New("missing project directory")

func init() {
	rootCmd.Flags().BoolVar(&useNpm, "use-npm", false, "Install dependencies with npm")
	rootCmd.Flags().BoolVar(&useYarn, "use-yarn", false, "Install dependencies with yarn")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print diagnostic logs")
	rootCmd.PersistentFlags().StringVar(&traceFile, "trace-file", "", "Write trace spans as JSON to this file (env "+branding.EnvVar("TRACE_FILE")+")")
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-directory>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new React project in <project-directory>: it writes a
package.json, installs react, react-dom and react-scripts with yarn or npm, and
hands over to react-scripts to generate the app.

To create a project named after a subcommand (version, doctor, config),
pass it as a path: ` + branding.CLIName() + ` ./config`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			errOut := cmd.ErrOrStderr()
			fmt.Fprintln(errOut, "Please specify the project directory:")
			fmt.Fprintf(errOut, "  %s %s\n", output.Cyan(branding.CLIName()), output.Green("<project-directory>"))
			fmt.Fprintln(errOut)
			fmt.Fprintf(errOut, "Run %s to see all options.\n", output.Cyan(branding.CLIName()+" --help"))
			return errMissingProjectDir
		}
		return runCreate(cmd, args[0])
	},
}

func runCreate(cmd *cobra.Command, name string) error {
	ctx := cmd.Context()
	settings := loadSettings()
	logger := newLogger(cmd, settings.Verbose)

	shutdown := setupTracing(ctx, settings, logger)
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("flushing trace spans", "error", err)
		}
	}()

	fs := afero.NewOsFs()
	out := output.New(cmd.OutOrStdout())
	out.SetVerbose(settings.Verbose)
	runner := toolchain.NewRunner(&toolchain.RunnerOptions{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logger,
	})

	p := scaffold.New(scaffold.Components{
		Fs:        fs,
		Out:       out,
		Logger:    logger,
		Selector:  toolchain.NewSelector(runner, out, logger),
		Probe:     toolchain.NewProbe(settings.RegistryHost, logger),
		Installer: toolchain.NewInstaller(runner),
		SeedLock: func(ctx context.Context, root string) (bool, error) {
			return toolchain.SeedLockFile(ctx, runner, fs, root, settings.YarnRegistry)
		},
		Delegator: &runtime.NodeRuntime{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
	})

	res, err := p.Run(ctx, scaffold.Request{Name: name, UseNpm: useNpm, UseYarn: useYarn})
	if err != nil {
		return err
	}
	logger.Debug("project created", "root", res.Root, "toolchain", res.Toolchain.String(), "online", res.Online)
	return nil
}

// setupTracing installs the trace exporter chosen by settings. Tracing is
// optional: when it cannot be set up the run goes on with the no-op
// provider.
func setupTracing(ctx context.Context, settings config.Settings, logger *slog.Logger) func(context.Context) error {
	shutdown, err := telemetry.Init(ctx, telemetry.Options{
		ServiceName:    branding.CLIName(),
		ServiceVersion: buildVersion,
		Endpoint:       settings.OtelEndpoint,
		TraceFile:      settings.TraceFile,
	})
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		return func(context.Context) error { return nil }
	}
	return shutdown
}

// loadSettings merges the config file and environment with command-line flags.
func loadSettings() config.Settings {
	config.Load()
	s := config.Current()
	if verbose {
		s.Verbose = true
	}
	if traceFile != "" {
		s.TraceFile = traceFile
	}
	return s
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errMissingProjectDir) && !scaffold.Reported(err) {
		fmt.Fprintln(os.Stderr, output.Red("Error: "+err.Error()))
	}
	return err
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/reactkit/create-react-app/internal/branding"
	"github.com/reactkit/create-react-app/internal/manifest"
	"github.com/reactkit/create-react-app/internal/runtime"
	"github.com/reactkit/create-react-app/internal/toolchain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	checkRuntime  bool
	checkNetwork  bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify node, npm and yarn are available")
	doctorCmd.Flags().BoolVar(&checkNetwork, "check-network", false, "Verify the yarn registry resolves")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that this machine can create projects",
	Long:  `Run diagnostic checks on the Node.js toolchain and registry access used by ` + branding.CLIName() + `.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()

		// If no specific flag, run all checks.
		if !checkRuntime && !checkNetwork && checkManifest == "" {
			runRuntimeCheck(ctx, w)
			runNetworkCheck(ctx, w)
			return nil
		}

		if checkRuntime {
			runRuntimeCheck(ctx, w)
		}
		if checkNetwork {
			runNetworkCheck(ctx, w)
		}
		if checkManifest != "" {
			if err := runManifestCheck(w, afero.NewOsFs(), checkManifest); err != nil {
				return err
			}
		}
		return nil
	},
}

func runRuntimeCheck(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Runtime check:")

	if checkBinary(w, "node") {
		node := &runtime.NodeRuntime{}
		version, err := node.Version(ctx)
		switch ok, verr := runtime.Supported(version); {
		case err != nil:
			fmt.Fprintf(w, "  [WARN] cannot read node version: %v\n", err)
		case verr != nil:
			fmt.Fprintf(w, "  [WARN] %v\n", verr)
		case !ok:
			fmt.Fprintf(w, "  [FAIL] node %s is older than %s\n", version, runtime.MinNodeVersion)
		default:
			fmt.Fprintf(w, "  [ OK ] node %s\n", version)
		}
	}

	if checkBinary(w, "npm") {
		runner := toolchain.NewRunner(nil)
		out, err := runner.Output(ctx, "", "npm", "--version")
		raw := strings.TrimSpace(out)
		v, perr := semver.NewVersion(raw)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [WARN] cannot read npm version: %v\n", err)
		case perr != nil:
			fmt.Fprintf(w, "  [WARN] unreadable npm version %q\n", raw)
		case v.LessThan(semver.MustParse(toolchain.MinNpmVersion)):
			fmt.Fprintf(w, "  [FAIL] npm %s is older than %s\n", raw, toolchain.MinNpmVersion)
		default:
			fmt.Fprintf(w, "  [ OK ] npm %s\n", raw)
		}
	}

	if !checkBinary(w, "yarn") {
		fmt.Fprintln(w, "  [INFO] projects will be installed with npm")
	}
}

func checkBinary(w io.Writer, name string) bool {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
	return true
}

func runNetworkCheck(ctx context.Context, w io.Writer) {
	settings := loadSettings()
	fmt.Fprintln(w, "Network check:")

	probe := toolchain.NewProbe(settings.RegistryHost, nil)
	if probe.Online(ctx, toolchain.Yarn) {
		fmt.Fprintf(w, "  [ OK ] %s resolves\n", settings.RegistryHost)
		return
	}
	fmt.Fprintf(w, "  [WARN] %s does not resolve; yarn will install with --offline\n", settings.RegistryHost)
}

func runManifestCheck(w io.Writer, fs afero.Fs, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	// Validate against JSON Schema.
	result, err := manifest.ValidateFile(fs, path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		doc, err := manifest.Read(fs, path)
		if err != nil {
			fmt.Fprintf(w, "  [ OK ] Valid manifest\n")
			return nil
		}
		name, _ := doc.String("name")
		version, _ := doc.String("version")
		fmt.Fprintf(w, "  [ OK ] Valid package.json: %s (v%s)\n", name, version)
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}

//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/reactkit/create-react-app/internal/output"
	nodert "github.com/reactkit/create-react-app/internal/runtime"
	"github.com/reactkit/create-react-app/internal/scaffold"
	"github.com/reactkit/create-react-app/internal/toolchain"
	"github.com/spf13/afero"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	WorkDir string // where the project directory is created
	BinDir  string // fake yarn, npm and node
	LogFile string // every fake tool appends its argv here
	Out     bytes.Buffer
	Chdirs  []string
}

const fakePackageManager = `#!/bin/sh
echo "$(basename "$0") $*" >> "$FAKE_LOG"
case "$1 $2" in
  "--version "*)
    if [ "$(basename "$0")" = npm ]; then echo "${FAKE_NPM_VERSION:-9.8.1}"; else echo 1.22.19; fi
    exit 0 ;;
  "config list")
    echo "; cwd = ${FAKE_NPM_CWD:-$(pwd)}"
    exit 0 ;;
  "config get")
    echo "${FAKE_YARN_REGISTRY:-https://registry.yarnpkg.com}"
    exit 0 ;;
esac
if [ -n "$FAKE_INSTALL_FAIL" ]; then
  mkdir -p node_modules/.cache
  exit 1
fi
mkdir -p node_modules/react-scripts/scripts
cat > package.json <<JSON
{
  "name": "my-app",
  "version": "0.1.0",
  "private": true,
  "dependencies": {
    "react": "16.4.1",
    "react-dom": "16.4.1",
    "react-scripts": "1.1.4"
  }
}
JSON
`

const fakeNode = `#!/bin/sh
echo "node $*" >> "$FAKE_LOG"
exit "${FAKE_NODE_EXIT:-0}"
`

// setupTestEnv creates a sandbox with fake tools on PATH. withYarn controls
// whether a yarn executable exists.
func setupTestEnv(t *testing.T, withYarn bool) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	env := &testEnv{
		WorkDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}
	env.LogFile = filepath.Join(t.TempDir(), "calls.log")

	tools := map[string]string{"npm": fakePackageManager, "node": fakeNode}
	if withYarn {
		tools["yarn"] = fakePackageManager
	}
	for name, script := range tools {
		if err := os.WriteFile(filepath.Join(env.BinDir, name), []byte(script), 0755); err != nil {
			t.Fatalf("writing fake %s: %v", name, err)
		}
	}

	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+"/usr/bin"+string(os.PathListSeparator)+"/bin")
	t.Setenv("FAKE_LOG", env.LogFile)
	return env
}

type offlineResolver struct{ online bool }

func (r offlineResolver) LookupHost(context.Context, string) ([]string, error) {
	if r.online {
		return []string{"127.0.0.1"}, nil
	}
	return nil, &os.PathError{Op: "lookup", Path: "registry", Err: os.ErrNotExist}
}

// pipeline wires the real components the way the CLI does, with the DNS
// lookup and directory changes stubbed.
func (env *testEnv) pipeline(online bool) *scaffold.Pipeline {
	fs := afero.NewOsFs()
	out := output.New(&env.Out)
	runner := toolchain.NewRunner(&toolchain.RunnerOptions{Stdout: &env.Out, Stderr: &env.Out, Stdin: strings.NewReader("")})

	return scaffold.New(scaffold.Components{
		Fs:        fs,
		Out:       out,
		Selector:  toolchain.NewSelector(runner, out, nil),
		Probe:     toolchain.NewProbe("", nil, toolchain.WithResolver(offlineResolver{online}), toolchain.WithSpinner(nil)),
		Installer: toolchain.NewInstaller(runner),
		SeedLock: func(ctx context.Context, root string) (bool, error) {
			return toolchain.SeedLockFile(ctx, runner, fs, root, toolchain.DefaultYarnRegistry)
		},
		Delegator: &nodert.NodeRuntime{Stdout: &env.Out, Stderr: &env.Out},
		Chdir: func(dir string) error {
			env.Chdirs = append(env.Chdirs, dir)
			return nil
		},
		Getwd: func() (string, error) { return env.WorkDir, nil },
	})
}

// calls returns the logged invocations of the fake tools.
func (env *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(env.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, stat err = %v", path, err)
	}
}

func assertCalled(t *testing.T, calls []string, want string) {
	t.Helper()
	for _, c := range calls {
		if strings.HasPrefix(c, want) {
			return
		}
	}
	t.Errorf("expected a call starting with %q, got %v", want, calls)
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	versionShort, versionJSON = false, false
	useNpm, useYarn, verbose, traceFile = false, false, false, ""
	checkRuntime, checkNetwork, checkManifest = false, false, ""

	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestMissingProjectDirectory(t *testing.T) {
	_, stderr, err := execute(t)
	require.ErrorIs(t, err, errMissingProjectDir)
	assert.Contains(t, stderr, "Please specify the project directory:")
	assert.Contains(t, stderr, "create-react-app <project-directory>")
}

func TestTooManyArguments(t *testing.T) {
	_, _, err := execute(t, "one", "two")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"

	stdout, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", stdout)

	stdout, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, "abc123", info["commit"])

	stdout, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "create-react-app version 1.2.3 (commit: abc123, built: 2026-01-01)\n", stdout)
}

func TestVersionFlag(t *testing.T) {
	rootCmd.Version = "4.5.6"
	t.Cleanup(func() { rootCmd.Version = "" })

	stdout, _, err := execute(t, "-v")
	require.NoError(t, err)
	assert.Equal(t, "4.5.6\n", stdout)
}

func TestDoctorCheckManifest(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"name":"my-app","version":"0.1.0","private":true}`), 0644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"name":"my-app","private":"yes"}`), 0644))

	stdout, _, err := execute(t, "doctor", "--check-manifest", good)
	require.NoError(t, err)
	assert.Contains(t, stdout, "[ OK ] Valid package.json: my-app (v0.1.0)")

	stdout, _, err = execute(t, "doctor", "--check-manifest", bad)
	require.Error(t, err)
	assert.Contains(t, stdout, "validation issue(s):")
	assert.Contains(t, stdout, "/private")
}

func TestRunManifestCheckMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runManifestCheck(&buf, afero.NewMemMapFs(), "/nope/package.json")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "Manifest validation: /nope/package.json\n"))
}

func TestConfigSetGet(t *testing.T) {
	home := t.TempDir()

	run := func(args ...string) string {
		t.Helper()
		t.Setenv("HOME", home)
		viper.Reset()
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetArgs(args)
		require.NoError(t, rootCmd.ExecuteContext(context.Background()))
		return stdout.String()
	}
	t.Cleanup(func() {
		viper.Reset()
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	assert.Equal(t, "Set registry_host = registry.example.com\n", run("config", "set", "registry_host", "registry.example.com"))
	assert.Equal(t, "registry.example.com\n", run("config", "get", "registry_host"))
	assert.Contains(t, run("config", "list"), "yarn_registry = https://registry.yarnpkg.com")
}

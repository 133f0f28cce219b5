// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	IssueTracker string `yaml:"issue_tracker"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:      "create-react-app",
			DisplayName:  "Create React App",
			Description:  "Create React apps with no build configuration",
			HomeDir:      ".create-react-app",
			EnvPrefix:    "CREATE_REACT_APP",
			GoModule:     "github.com/reactkit/create-react-app",
			IssueTracker: "https://github.com/reactkit/create-react-app/issues",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-react-app").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-react-app").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_REACT_APP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// IssueTracker returns the URL users are pointed at for unexpected errors.
func IssueTracker() string { load(); return defaults.IssueTracker }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("verbose") → "CREATE_REACT_APP_VERBOSE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

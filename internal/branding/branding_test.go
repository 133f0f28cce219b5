package branding

import "testing"

func TestDefaultsLoaded(t *testing.T) {
	if got := CLIName(); got != "create-react-app" {
		t.Errorf("CLIName() = %q, want %q", got, "create-react-app")
	}
	if got := HomeDir(); got != ".create-react-app" {
		t.Errorf("HomeDir() = %q, want %q", got, ".create-react-app")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("registry_host"); got != "CREATE_REACT_APP_REGISTRY_HOST" {
		t.Errorf("EnvVar() = %q, want %q", got, "CREATE_REACT_APP_REGISTRY_HOST")
	}
}

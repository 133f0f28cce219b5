package runtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/reactkit/create-react-app/internal/errs"
)

// MinNodeVersion is the oldest Node.js the init script supports.
const MinNodeVersion = "8.10.0"

// NodeRuntime runs scripts with the Node.js binary on PATH.
type NodeRuntime struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Binary overrides the executable name. Defaults to "node".
	Binary string
}

func (n *NodeRuntime) binary() string {
	if n.Binary != "" {
		return n.Binary
	}
	return "node"
}

// Delegate spawns `node -e <source> -- <json(data)>` in dir with inherited
// stdio and blocks until it exits. A non-zero exit or a failure to start
// node is reported as DelegationFailed.
func (n *NodeRuntime) Delegate(ctx context.Context, dir string, data []string, source string) error {
	command := n.binary()

	payload, err := json.Marshal(data)
	if err != nil {
		return errs.Command(errs.DelegationFailed, command, fmt.Errorf("serializing script arguments: %w", err))
	}

	cmd := exec.CommandContext(ctx, command, "-e", source, "--", string(payload))
	cmd.Dir = dir
	cmd.Stdin = n.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = n.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = n.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return errs.Command(errs.DelegationFailed, command, err)
	}
	return nil
}

// Version returns the installed Node.js version without the leading "v".
func (n *NodeRuntime) Version(ctx context.Context) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, n.binary(), "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s --version: %w", n.binary(), err)
	}
	return strings.TrimPrefix(strings.TrimSpace(out.String()), "v"), nil
}

// Supported reports whether version satisfies MinNodeVersion.
func Supported(version string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	return !v.LessThan(semver.MustParse(MinNodeVersion)), nil
}

package toolchain

import (
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// LockFileName is the lock file yarn reads and writes.
const LockFileName = "yarn.lock"

//go:embed yarn.lock.cached
var cachedLockFile []byte

// SeedLockFile copies the pre-fetched lock file into root when yarn is
// configured for defaultRegistry, so an offline install can still resolve
// the dependencies. A failing `yarn config get registry` counts as the
// default registry. It reports whether the file was written.
func SeedLockFile(ctx context.Context, runner *Runner, fs afero.Fs, root, defaultRegistry string) (bool, error) {
	usesDefault := true
	if out, err := runner.Output(ctx, root, "yarn", "config", "get", "registry"); err == nil {
		usesDefault = strings.TrimSpace(out) == defaultRegistry
	}
	if !usesDefault {
		runner.logger.Debug("yarn uses a custom registry, not seeding lock file")
		return false, nil
	}

	path := filepath.Join(root, LockFileName)
	if err := afero.WriteFile(fs, path, cachedLockFile, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

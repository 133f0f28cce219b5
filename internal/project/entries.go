package project

import (
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// GeneratedArtifacts are the entries the scaffolder itself creates. Recovery
// deletes these and nothing else.
var GeneratedArtifacts = []string{"package.json", "yarn.lock", "node_modules"}

// StaleLogs are installer error logs left behind by a previous failed run.
var StaleLogs = []string{"npm-debug.log", "yarn-error.log", "yarn-debug.log"}

// SafeEntries may already exist in the target without conflicting.
var SafeEntries = []string{
	".DS_Store",
	"Thumbs.db",
	".git",
	".gitignore",
	".idea",
	"README.md",
	"LICENSE",
	".hg",
	".hgignore",
	".hgcheck",
	".npmignore",
	"mkdocs.yml",
	"docs",
	".travis.yml",
	".gitlab-ci.yml",
	".gitattributes",
}

// ideSuffix matches IntelliJ module files.
const ideSuffix = ".iml"

// Partition splits directory entries into conflicts and stale installer logs.
// Safe entries are in neither result.
func Partition(entries []string) (conflicts, staleLogs []string) {
	for _, name := range entries {
		switch {
		case slices.Contains(SafeEntries, name), strings.HasSuffix(name, ideSuffix):
		case slices.Contains(StaleLogs, name):
			staleLogs = append(staleLogs, name)
		default:
			conflicts = append(conflicts, name)
		}
	}
	return conflicts, staleLogs
}

// List returns the names of the immediate entries of dir, sorted.
func List(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

// Package project owns the target directory: the pre-flight check that it is
// safe to scaffold into, and the cleanup that runs when installation fails.
//
// Both operate on an afero.Fs so they can be exercised against an in-memory
// filesystem. They only ever touch the closed sets of names declared here:
// SafeEntries and StaleLogs for the check, GeneratedArtifacts for cleanup.
package project

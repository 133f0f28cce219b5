// Package manifest reads, validates, and rewrites the project's package.json.
//
// Documents are kept as ordered JSON objects so a rewrite preserves the key
// order written by the package manager. Output always uses two-space
// indentation and a trailing newline.
package manifest

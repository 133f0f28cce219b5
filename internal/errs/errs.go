// Package errs defines the closed set of failures a scaffolding run can end
// with. Every component returns *Error (possibly wrapped) so the CLI can pick
// the message, decide whether recovery runs, and exit with status 1.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a failure category.
type Kind int

const (
	Unexpected Kind = iota
	InvalidName
	ReservedName
	DirectoryNotSafe
	CwdMismatch
	ToolchainTooOld
	InstallFailed
	ManifestMissingField
	DelegationFailed
)

var kindNames = map[Kind]string{
	Unexpected:           "unexpected error",
	InvalidName:          "invalid name",
	ReservedName:         "reserved name",
	DirectoryNotSafe:     "directory not safe",
	CwdMismatch:          "working directory mismatch",
	ToolchainTooOld:      "toolchain too old",
	InstallFailed:        "install failed",
	ManifestMissingField: "manifest missing field",
	DelegationFailed:     "delegation failed",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the tagged failure value.
type Error struct {
	Kind Kind
	// Subject is what the failure is about: a project name, a directory,
	// a manifest field, a tool version.
	Subject string
	// Command is the failing command line for InstallFailed and
	// DelegationFailed.
	Command string
	// Details lists individual problems (validation messages, conflicting
	// entries, reserved names).
	Details []string
	Cause   error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case InvalidName:
		msg = fmt.Sprintf("cannot create a project named %q because of npm naming restrictions", e.Subject)
	case ReservedName:
		msg = fmt.Sprintf("cannot create a project named %q because a dependency with the same name exists", e.Subject)
	case DirectoryNotSafe:
		msg = fmt.Sprintf("directory %s contains files that could conflict", e.Subject)
	case CwdMismatch:
		msg = fmt.Sprintf("npm process started in %s instead of the current directory", e.Subject)
	case ToolchainTooOld:
		msg = fmt.Sprintf("npm %s is too old", e.Subject)
	case InstallFailed, DelegationFailed:
		msg = fmt.Sprintf("%s has failed", e.Command)
	case ManifestMissingField:
		msg = fmt.Sprintf("missing %s in package.json", e.Subject)
	default:
		msg = "unexpected error"
	}
	if len(e.Details) > 0 {
		msg += ": " + strings.Join(e.Details, "; ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind. This lets callers
// write errors.Is(err, &errs.Error{Kind: errs.InstallFailed}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New returns an *Error of the given kind about subject.
func New(kind Kind, subject string, details ...string) *Error {
	return &Error{Kind: kind, Subject: subject, Details: details}
}

// Command returns an *Error for a failed subprocess invocation.
func Command(kind Kind, command string, cause error) *Error {
	return &Error{Kind: kind, Command: command, Cause: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

// CommandOf returns the failing command line carried by err, if any.
func CommandOf(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Command != "" {
		return e.Command, true
	}
	return "", false
}

// IsValidation reports whether err belongs to the categories that abort
// before any generated file is written.
func IsValidation(err error) bool {
	switch KindOf(err) {
	case InvalidName, ReservedName, DirectoryNotSafe:
		return true
	}
	return false
}

package naming

import (
	"regexp"
	"slices"
	"strings"

	"github.com/reactkit/create-react-app/internal/errs"
)

// MaxLength is the longest name npm accepts for new packages.
const MaxLength = 214

var (
	blacklist = []string{"node_modules", "favicon.ico"}

	// builtins are Node.js core module names. Publishing under one of them is
	// allowed for old packages only.
	builtins = []string{
		"assert", "async_hooks", "buffer", "child_process", "cluster", "console",
		"constants", "crypto", "dgram", "dns", "domain", "events", "freelist", "fs",
		"http", "http2", "https", "inspector", "module", "net", "os", "path",
		"perf_hooks", "process", "punycode", "querystring", "readline", "repl",
		"stream", "string_decoder", "sys", "timers", "tls", "trace_events", "tty",
		"url", "util", "v8", "vm", "worker_threads", "zlib",
	}

	scopedPackage = regexp.MustCompile(`^(?:@([^/]+?)[/])?([^/]+?)$`)
	specialChars  = regexp.MustCompile(`[~'!()*]`)
)

// Result holds every problem found with a name.
type Result struct {
	ValidForNewPackages bool
	ValidForOldPackages bool
	Errors              []string
	Warnings            []string
}

// Check applies the npm package-name rules to name.
func Check(name string) Result {
	var errors, warnings []string

	if name == "" {
		errors = append(errors, "name length must be greater than zero")
	}
	if strings.HasPrefix(name, ".") {
		errors = append(errors, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		errors = append(errors, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		errors = append(errors, "name cannot contain leading or trailing spaces")
	}

	lower := strings.ToLower(name)
	for _, b := range blacklist {
		if lower == b {
			errors = append(errors, b+" is a blacklisted name")
		}
	}
	for _, b := range builtins {
		if lower == b {
			warnings = append(warnings, b+" is a core module name")
		}
	}

	if len(name) > MaxLength {
		warnings = append(warnings, "name can no longer contain more than 214 characters")
	}
	if lower != name {
		warnings = append(warnings, "name can no longer contain capital letters")
	}

	segments := strings.Split(name, "/")
	if specialChars.MatchString(segments[len(segments)-1]) {
		warnings = append(warnings, `name can no longer contain special characters ("~'!()*")`)
	}

	if !uriComponentSafe(name) && !scopedNameSafe(name) {
		errors = append(errors, "name can only contain URL-friendly characters")
	}

	return Result{
		ValidForNewPackages: len(errors) == 0 && len(warnings) == 0,
		ValidForOldPackages: len(errors) == 0,
		Errors:              errors,
		Warnings:            warnings,
	}
}

// Validate fails with InvalidName when name is not valid for a new package,
// and with ReservedName when it equals one of reserved.
func Validate(name string, reserved []string) error {
	res := Check(name)
	if !res.ValidForNewPackages {
		details := append(append([]string{}, res.Errors...), res.Warnings...)
		return errs.New(errs.InvalidName, name, details...)
	}
	if slices.Contains(reserved, name) {
		return errs.New(errs.ReservedName, name, reserved...)
	}
	return nil
}

// scopedNameSafe accepts "@scope/name" when both parts survive URI encoding.
func scopedNameSafe(name string) bool {
	m := scopedPackage.FindStringSubmatch(name)
	if m == nil || m[1] == "" {
		return false
	}
	return uriComponentSafe(m[1]) && uriComponentSafe(m[2])
}

// uriComponentSafe reports whether s contains only characters that
// encodeURIComponent leaves untouched.
func uriComponentSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("-_.!~*'()", c) >= 0:
		default:
			return false
		}
	}
	return true
}

package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/reactkit/create-react-app/internal/errs"
	"github.com/reactkit/create-react-app/internal/output"
	"github.com/spf13/afero"
)

// Patcher rewrites dependency versions after installation.
type Patcher struct {
	fs  afero.Fs
	out *output.Printer
}

// NewPatcher returns a Patcher over fs that reports problems to out.
func NewPatcher(fs afero.Fs, out *output.Printer) *Patcher {
	return &Patcher{fs: fs, out: out}
}

// CaretRange prefixes version with "^". If the result is not a valid range
// the original version is returned with ok == false.
func CaretRange(version string) (string, bool) {
	patched := "^" + version
	if _, err := semver.NewConstraint(patched); err != nil {
		return version, false
	}
	return patched, true
}

// PatchRuntimeRanges loosens the exact pins of the caret packages in the
// manifest at path to caret ranges. The manifest must have a dependencies
// table containing required and every caret package.
func (p *Patcher) PatchRuntimeRanges(path, required string, caret ...string) error {
	doc, err := Read(p.fs, path)
	if err != nil {
		return err
	}

	deps, ok, err := doc.Object("dependencies")
	if err != nil {
		return fmt.Errorf("reading dependencies: %w", err)
	}
	if !ok {
		p.out.Error("Missing dependencies in package.json")
		return errs.New(errs.ManifestMissingField, "dependencies")
	}
	if !deps.Has(required) {
		p.out.Error(fmt.Sprintf("Unable to find %s in package.json", required))
		return errs.New(errs.ManifestMissingField, required)
	}

	for _, name := range caret {
		if err := p.makeCaretRange(deps, name); err != nil {
			return err
		}
	}

	if err := doc.Set("dependencies", deps); err != nil {
		return err
	}
	return Write(p.fs, path, doc)
}

func (p *Patcher) makeCaretRange(deps *Object, name string) error {
	if !deps.Has(name) {
		p.out.Error(fmt.Sprintf("Missing %s dependency in package.json", name))
		return errs.New(errs.ManifestMissingField, name)
	}

	version, isString := deps.String(name)
	if !isString {
		raw, _ := deps.Raw(name)
		p.out.Println(fmt.Sprintf("Unable to patch %s dependency version because version %s is not a string", name, output.Red(string(raw))))
		return nil
	}

	patched, ok := CaretRange(version)
	if !ok {
		p.out.Println(fmt.Sprintf("Unable to patch %s dependency version because version %s will become invalid %s",
			name, output.Red(version), output.Red("^"+version)))
		return nil
	}
	return deps.Set(name, patched)
}

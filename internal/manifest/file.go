package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileName is the manifest file written into every project.
const FileName = "package.json"

// InitialVersion is the version a freshly scaffolded project starts at.
const InitialVersion = "0.1.0"

// Read parses the manifest at path.
func Read(fs afero.Fs, path string) (*Object, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	doc := NewObject()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Encode renders doc with two-space indentation and a trailing newline.
func Encode(doc *Object) ([]byte, error) {
	compact, err := marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting manifest: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write encodes doc and writes it to path.
func Write(fs afero.Fs, path string, doc *Object) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Initial returns the minimal manifest for a new project.
func Initial(name string) *Object {
	doc := NewObject()
	_ = doc.Set("name", name)
	_ = doc.Set("version", InitialVersion)
	_ = doc.Set("private", true)
	return doc
}

// WriteInitial writes the minimal manifest into root after checking it
// against the package.json schema.
func WriteInitial(fs afero.Fs, root, name string) error {
	data, err := Encode(Initial(name))
	if err != nil {
		return err
	}

	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("generated manifest is invalid: %s", result.Issues[0])
	}

	path := filepath.Join(root, FileName)
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

package manifest

import (
	"bytes"
	"testing"

	"github.com/reactkit/create-react-app/internal/errs"
	"github.com/reactkit/create-react-app/internal/output"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestPath = "/app/package.json"

var caretPackages = []string{"react", "react-dom"}

func writeManifest(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, manifestPath, []byte(content), 0644))
}

func readManifest(t *testing.T, fs afero.Fs) []byte {
	t.Helper()
	data, err := afero.ReadFile(fs, manifestPath)
	require.NoError(t, err)
	return data
}

func TestCaretRange(t *testing.T) {
	tests := []struct {
		version string
		want    string
		ok      bool
	}{
		{"16.4.1", "^16.4.1", true},
		{"0.0.1", "^0.0.1", true},
		{"next", "next", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, ok := CaretRange(tt.version)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestPatchRuntimeRanges(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, `{
  "name": "my-app",
  "version": "0.1.0",
  "private": true,
  "dependencies": {
    "react": "16.4.1",
    "react-dom": "16.4.1",
    "react-scripts": "1.1.4"
  },
  "engines": {
    "node": ">=8"
  }
}
`)

	p := NewPatcher(fs, output.Discard())
	require.NoError(t, p.PatchRuntimeRanges(manifestPath, "react-scripts", caretPackages...))

	g := goldie.New(t)
	g.Assert(t, "patched", readManifest(t, fs))
}

func TestPatchRuntimeRangesKeepsInvalidRange(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, `{"name":"a","dependencies":{"react":"next","react-dom":"16.4.1","react-scripts":"1.1.4"}}`)

	var buf bytes.Buffer
	p := NewPatcher(fs, output.New(&buf))
	require.NoError(t, p.PatchRuntimeRanges(manifestPath, "react-scripts", caretPackages...))

	doc, err := Read(fs, manifestPath)
	require.NoError(t, err)
	deps, ok, err := doc.Object("dependencies")
	require.NoError(t, err)
	require.True(t, ok)

	react, _ := deps.String("react")
	dom, _ := deps.String("react-dom")
	assert.Equal(t, "next", react)
	assert.Equal(t, "^16.4.1", dom)
	assert.Contains(t, buf.String(), "Unable to patch react dependency version")
}

func TestPatchRuntimeRangesMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
		message string
	}{
		{
			name:    "no dependencies",
			content: `{"name":"a"}`,
			field:   "dependencies",
			message: "Missing dependencies in package.json",
		},
		{
			name:    "null dependencies",
			content: `{"name":"a","dependencies":null}`,
			field:   "dependencies",
			message: "Missing dependencies in package.json",
		},
		{
			name:    "no react-scripts",
			content: `{"name":"a","dependencies":{"react":"1.0.0","react-dom":"1.0.0"}}`,
			field:   "react-scripts",
			message: "Unable to find react-scripts in package.json",
		},
		{
			name:    "no react-dom",
			content: `{"name":"a","dependencies":{"react":"1.0.0","react-scripts":"1.0.0"}}`,
			field:   "react-dom",
			message: "Missing react-dom dependency in package.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeManifest(t, fs, tt.content)

			var buf bytes.Buffer
			p := NewPatcher(fs, output.New(&buf))
			err := p.PatchRuntimeRanges(manifestPath, "react-scripts", caretPackages...)

			require.Error(t, err)
			assert.Equal(t, errs.ManifestMissingField, errs.KindOf(err))
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, buf.String(), tt.message)
			assert.Equal(t, tt.content, string(readManifest(t, fs)), "manifest must not be rewritten")
		})
	}
}

func TestWriteInitial(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/app", 0755))
	require.NoError(t, WriteInitial(fs, "/app", "my-app"))

	g := goldie.New(t)
	g.Assert(t, "initial", readManifest(t, fs))
}

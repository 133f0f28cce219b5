package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"invalid name", New(InvalidName, "My App", "name can no longer contain capital letters"),
			`cannot create a project named "My App" because of npm naming restrictions: name can no longer contain capital letters`},
		{"reserved", New(ReservedName, "react"),
			`cannot create a project named "react" because a dependency with the same name exists`},
		{"install", Command(InstallFailed, "yarn add --exact react", nil), "yarn add --exact react has failed"},
		{"missing field", New(ManifestMissingField, "dependencies"), "missing dependencies in package.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("installing: %w", Command(InstallFailed, "npm install", errors.New("exit status 1")))

	assert.Equal(t, InstallFailed, KindOf(err))
	assert.True(t, errors.Is(err, &Error{Kind: InstallFailed}))
	assert.False(t, errors.Is(err, &Error{Kind: DelegationFailed}))

	cmd, ok := CommandOf(err)
	assert.True(t, ok)
	assert.Equal(t, "npm install", cmd)
}

func TestKindOfPlainError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, Unexpected, KindOf(err))

	_, ok := CommandOf(err)
	assert.False(t, ok)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(New(InvalidName, "x")))
	assert.True(t, IsValidation(New(ReservedName, "react")))
	assert.True(t, IsValidation(New(DirectoryNotSafe, "my-app")))
	assert.False(t, IsValidation(New(CwdMismatch, "/tmp")))
	assert.False(t, IsValidation(Command(InstallFailed, "yarn", nil)))
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("executable file not found in $PATH")
	err := Command(InstallFailed, "yarn add --exact react", cause)
	assert.ErrorIs(t, err, cause)
}

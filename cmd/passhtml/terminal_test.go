package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interactiveTerminal(answers ...string) terminal {
	t := fakeTerminal("", nil)
	t.isTerminal = func() bool { return true }
	t.readSecret = func() ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more input")
		}
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}
	return t
}

func TestReadPassword_Environment(t *testing.T) {
	t.Setenv(passwordEnv, "from-env")

	pw, err := fakeTerminal("from-stdin\n", nil).readPassword(&bytes.Buffer{}, false)
	require.NoError(t, err)
	assert.Equal(t, "from-env", pw)
}

func TestReadPassword_Stdin(t *testing.T) {
	t.Setenv(passwordEnv, "")

	tests := []struct {
		name    string
		stdin   string
		want    string
		wantErr error
	}{
		{"line", "abc\nrest", "abc", nil},
		{"crlf", "abc\r\n", "abc", nil},
		{"no newline", "abc", "abc", nil},
		{"empty", "", "", errNoPassword},
		{"blank line", "\n", "", errNoPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := fakeTerminal(tt.stdin, nil).readPassword(&bytes.Buffer{}, false)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pw)
		})
	}
}

func TestReadPassword_Prompt(t *testing.T) {
	t.Setenv(passwordEnv, "")

	var prompts bytes.Buffer
	pw, err := interactiveTerminal("secret", "secret").readPassword(&prompts, true)
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)
	assert.Contains(t, prompts.String(), "Password: ")
	assert.Contains(t, prompts.String(), "Repeat password: ")

	_, err = interactiveTerminal("secret", "other").readPassword(&prompts, true)
	require.ErrorIs(t, err, errPasswordMismatch)

	_, err = interactiveTerminal("").readPassword(&prompts, false)
	require.ErrorIs(t, err, errNoPassword)

	_, err = interactiveTerminal().readPassword(&prompts, false)
	require.Error(t, err)
}

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-html/models"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// TestAppTypeValue_Set tests the Set method of AppTypeValue
func TestAppTypeValue_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    models.AppType
	}{
		{name: "passwords", input: "passwords", expected: models.AppPasswords},
		{name: "notes", input: "notes", expected: models.AppNotes},
		{name: "unknown", input: "wallet", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "wrong case", input: "Notes", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v AppTypeValue
			err := v.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, v.App)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.App)
			assert.Equal(t, string(tt.expected), v.String())
		})
	}
}

func TestAppTypeValue_Type(t *testing.T) {
	assert.Equal(t, "app", (&AppTypeValue{}).Type())
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newTestFlagSet(t,
		"-c", "/etc/passhtml.json",
		"-a", "notes",
		"--title", "Diary",
		"--chunk-workers", "6",
		"--log-level", "debug",
		"--log-file", "/tmp/p.log",
	)

	cfg := ParseFlags(fs)

	assert.Equal(t, "/etc/passhtml.json", cfg.JSONFilePath)
	assert.Equal(t, models.AppNotes, cfg.App.Type)
	assert.Equal(t, "Diary", cfg.App.Title)
	assert.Equal(t, 6, cfg.Codec.ChunkWorkers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/p.log", cfg.Log.File)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg := ParseFlags(newTestFlagSet(t))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_LongConfigAlias(t *testing.T) {
	cfg := ParseFlags(newTestFlagSet(t, "--config", "a.json"))
	assert.Equal(t, "a.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownAppRejected(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	err := fs.Parse([]string{"--app", "wallet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown app type")
}

func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, ParseFlags(fs))
}

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-html/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that the defaults alone form a valid
// configuration.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestBuild_EmptyBuilderIsInvalid verifies that a zero-value config fails
// validation.
func TestBuild_EmptyBuilderIsInvalid(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Type: models.AppNotes}},
		&StructuredConfig{Codec: Codec{ChunkWorkers: 9}, Log: Log{Level: "warn"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, models.AppNotes, cfg.App.Type)
	assert.Equal(t, DefaultTitle, cfg.App.Title)
	assert.Equal(t, 9, cfg.Codec.ChunkWorkers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// TestBuild_Validation verifies every validation rule.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{"unknown app", &StructuredConfig{App: App{Type: "wallet"}}, ErrInvalidAppConfigs},
		{"negative workers", &StructuredConfig{Codec: Codec{ChunkWorkers: -1}}, ErrInvalidCodecConfigs},
		{"bad level", &StructuredConfig{Log: Log{Level: "loud"}}, ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder().withDefaults()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TITLE": "from env"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from env", b.configs[0].App.Title)
}

func TestWithEnv_RecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"CODEC_CHUNK_WORKERS": "x"})

	b := newConfigBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_NilFlagSet(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// TestWithJSON_NotSpecified verifies that nothing is appended when no config
// carries a JSON path.
func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LastPathWins verifies that the JSON path from the latest
// source is used.
func TestWithJSON_LastPathWins(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Title = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/does/not/exist.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Title)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_AllSources(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Log.File = "/tmp/from-json.log"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_TYPE":            "notes",
		"CODEC_CHUNK_WORKERS": "3",
	})
	fs := newTestFlagSet(t, "--chunk-workers", "5", "--config", path)

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, models.AppNotes, cfg.App.Type)
	assert.Equal(t, DefaultTitle, cfg.App.Title)
	assert.Equal(t, 5, cfg.Codec.ChunkWorkers)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, "/tmp/from-json.log", cfg.Log.File)
}

func TestLog_ZerologLevel(t *testing.T) {
	level, err := Log{}.ZerologLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = Log{Level: "error"}.ZerologLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, level)

	_, err = Log{Level: "nope"}.ZerologLevel()
	require.ErrorIs(t, err, ErrInvalidLogConfigs)
}

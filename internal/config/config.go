// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-pass-html/models"
)

// Defaults applied before any other source.
const (
	DefaultAppType      = models.AppPasswords
	DefaultTitle        = "Encrypted document"
	DefaultChunkWorkers = 4
	DefaultLogLevel     = "info"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-html application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App selects which application the documents belong to and how they
	// are titled.
	App App `envPrefix:"APP_"`

	// Codec holds tuning knobs of the envelope codec.
	Codec Codec `envPrefix:"CODEC_"`

	// Log controls where diagnostic output goes and how verbose it is.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Type is the application documents are produced for and imported into.
	// Env: APP_TYPE
	Type models.AppType `env:"TYPE"`

	// Title is written into the <title> of rendered documents.
	// Env: APP_TITLE
	Title string `env:"TITLE"`
}

// Codec holds envelope codec settings.
type Codec struct {
	// ChunkWorkers bounds how many attachment chunks are encrypted or
	// decrypted at the same time.
	// Env: CODEC_CHUNK_WORKERS
	ChunkWorkers int `env:"CHUNK_WORKERS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error, ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File receives log entries when set; stderr is used otherwise.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags registered on fs by [RegisterFlags]
//  4. JSON file (path resolved from sources 2 and 3)
//
// fs must already be parsed. Returns a fully populated *StructuredConfig or
// an error if any source fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Type:  DefaultAppType,
			Title: DefaultTitle,
		},
		Codec: Codec{
			ChunkWorkers: DefaultChunkWorkers,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors wrapped with the offending value otherwise.
func (cfg *StructuredConfig) validate() error {
	if !cfg.App.Type.IsValid() {
		return fmt.Errorf("%w: unknown app type %q", ErrInvalidAppConfigs, cfg.App.Type)
	}

	if cfg.Codec.ChunkWorkers <= 0 {
		return fmt.Errorf("%w: chunk workers must be positive, got %d", ErrInvalidCodecConfigs, cfg.Codec.ChunkWorkers)
	}

	if _, err := cfg.Log.ZerologLevel(); err != nil {
		return err
	}

	return nil
}

// ZerologLevel parses Level. An empty level means info.
func (l Log) ZerologLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return level, nil
}
